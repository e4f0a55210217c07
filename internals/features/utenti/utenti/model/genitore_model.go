package model

import (
	"gorm.io/gorm"

	"giuaschool_backend/internals/constants"
	"giuaschool_backend/internals/helpers"
)

// GenitoreModel is a parent or guardian; each account is bound to one student.
type GenitoreModel struct {
	UtenteModel

	AlunnoID *uint        `gorm:"index;column:alunno_id" json:"alunno_id,omitempty"`
	Alunno   *AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`
}

func (g *GenitoreModel) BeforeCreate(tx *gorm.DB) error {
	if g.Ruolo == "" {
		g.Ruolo = RuoloGenitore
	}
	return g.UtenteModel.BeforeCreate(tx)
}

func (g *GenitoreModel) Ruoli() []string {
	return []string{constants.RoleGenitore, constants.RoleUtente}
}

func (g *GenitoreModel) CodiceRuolo() string { return constants.CodiceGenitore }

func (g *GenitoreModel) CodiceFunzioni() []string {
	return conNessuna(funzioniBase(g.Rappresentante))
}

func (g *GenitoreModel) Validate() error {
	if g.Ruolo == "" {
		g.Ruolo = RuoloGenitore
	}
	g.SetDefaultValues()
	return helper.Validate(g)
}
