package model

import (
	"gorm.io/gorm"

	"giuaschool_backend/internals/constants"
	"giuaschool_backend/internals/helpers"
)

// AmministratoreModel is the system administrator account.
type AmministratoreModel struct {
	UtenteModel
}

func (a *AmministratoreModel) BeforeCreate(tx *gorm.DB) error {
	if a.Ruolo == "" {
		a.Ruolo = RuoloAmministratore
	}
	return a.UtenteModel.BeforeCreate(tx)
}

func (a *AmministratoreModel) Ruoli() []string {
	return []string{constants.RoleAmministratore, constants.RoleUtente}
}

func (a *AmministratoreModel) CodiceRuolo() string { return constants.CodiceAmministratore }

func (a *AmministratoreModel) Validate() error {
	if a.Ruolo == "" {
		a.Ruolo = RuoloAmministratore
	}
	a.SetDefaultValues()
	return helper.Validate(a)
}
