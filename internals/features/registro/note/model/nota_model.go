package model

import (
	"gorm.io/datatypes"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoNota string

const (
	NotaClasse      TipoNota = "C"
	NotaIndividuale TipoNota = "I"
)

// NotaModel is a disciplinary note, on the whole class or on listed students.
type NotaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Tipo          TipoNota        `gorm:"type:varchar(1);not null;default:'C';column:tipo" json:"tipo" validate:"oneof=C I"`
	Data          datatypes.Date  `gorm:"type:date;not null;index;column:data" json:"data"`
	Testo         string          `gorm:"type:text;not null;column:testo" json:"testo" validate:"notblank"`
	Provvedimento *string         `gorm:"type:text;column:provvedimento" json:"provvedimento,omitempty"`
	Annullata     *datatypes.Date `gorm:"type:date;column:annullata" json:"annullata,omitempty"`

	ClasseID uint                     `gorm:"not null;index;column:classe_id" json:"classe_id" validate:"required"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	DocenteID uint                      `gorm:"not null;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`

	DocenteProvvedimentoID *uint                     `gorm:"index;column:docente_provvedimento_id" json:"docente_provvedimento_id,omitempty"`
	DocenteProvvedimento   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteProvvedimentoID;references:ID" json:"docente_provvedimento,omitempty" validate:"-"`

	Alunni []*utenteModel.AlunnoModel `gorm:"many2many:gs_nota_alunno;joinForeignKey:NotaID;joinReferences:AlunnoID" json:"alunni,omitempty" validate:"-"`
}

func (NotaModel) TableName() string { return "gs_nota" }

func (n NotaModel) String() string {
	s := dbtime.FormatData(n.Data)
	if n.Classe != nil {
		s += " " + n.Classe.String()
	}
	return s + ": " + n.Testo
}

// Validate also requires at least one student on individual notes.
func (n *NotaModel) Validate() error {
	if err := helper.Validate(n); err != nil {
		return err
	}
	if n.Tipo == NotaIndividuale && len(n.Alunni) == 0 {
		return helper.ValidationErrors{"alunni": "field.notblank"}
	}
	return nil
}

// IsAnnullata reports whether the note was cancelled.
func (n NotaModel) IsAnnullata() bool { return n.Annullata != nil }
