package model

import (
	"gorm.io/gorm"

	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	"giuaschool_backend/internals/constants"
	"giuaschool_backend/internals/helpers"
)

type TipoAta string

const (
	AtaAmministrativo TipoAta = "A"
	AtaTecnico        TipoAta = "T"
	AtaCollaboratore  TipoAta = "C"
	AtaAutista        TipoAta = "U"
	AtaDSGA           TipoAta = "D"
)

// AtaModel is administrative, technical or auxiliary staff.
type AtaModel struct {
	UtenteModel

	Tipo       TipoAta              `gorm:"type:varchar(1);default:'A';column:tipo" json:"tipo" validate:"oneof=A T C U D"`
	Segreteria bool                 `gorm:"not null;default:false;column:segreteria" json:"segreteria"`
	SedeID     *uint                `gorm:"index;column:sede_id" json:"sede_id,omitempty"`
	Sede       *sedeModel.SedeModel `gorm:"foreignKey:SedeID;references:ID" json:"sede,omitempty" validate:"-"`
}

func (a *AtaModel) BeforeCreate(tx *gorm.DB) error {
	if a.Ruolo == "" {
		a.Ruolo = RuoloAta
	}
	if a.Tipo == "" {
		a.Tipo = AtaAmministrativo
	}
	return a.UtenteModel.BeforeCreate(tx)
}

func (a *AtaModel) Ruoli() []string {
	return []string{constants.RoleAta, constants.RoleUtente}
}

func (a *AtaModel) CodiceRuolo() string { return constants.CodiceAta }

func (a *AtaModel) CodiceFunzioni() []string {
	lista := funzioniBase(a.Rappresentante)
	if a.Segreteria {
		lista = append(lista, constants.FunzioneSegreteria)
	}
	return conNessuna(lista)
}

func (a *AtaModel) Validate() error {
	if a.Ruolo == "" {
		a.Ruolo = RuoloAta
	}
	if a.Tipo == "" {
		a.Tipo = AtaAmministrativo
	}
	a.SetDefaultValues()
	return helper.Validate(a)
}
