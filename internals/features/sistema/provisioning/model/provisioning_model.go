package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type StatoProvisioning string

const (
	StatoAttesa   StatoProvisioning = "A"
	StatoInCorso  StatoProvisioning = "P"
	StatoCompleto StatoProvisioning = "C"
	StatoErrore   StatoProvisioning = "E"
)

// ProvisioningModel is a command for the external account systems
// (directory, e-learning) about a user. Dati holds the arguments and,
// once processed, log and errore.
type ProvisioningModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	UtenteID uint                     `gorm:"not null;index;column:utente_id" json:"utente_id" validate:"gt=0"`
	Utente   *utenteModel.UtenteModel `gorm:"foreignKey:UtenteID;references:ID" json:"utente,omitempty" validate:"-"`
	Dati     datatypes.JSONMap        `gorm:"type:jsonb;column:dati" json:"dati,omitempty"`
	Funzione string                   `gorm:"type:varchar(255);not null;column:funzione" json:"funzione" validate:"notblank,max=255"`
	Stato    StatoProvisioning        `gorm:"type:varchar(1);not null;default:'A';index;column:stato" json:"stato" validate:"oneof=A P C E"`
}

func (ProvisioningModel) TableName() string { return "gs_provisioning" }

func (p *ProvisioningModel) BeforeCreate(tx *gorm.DB) error {
	if p.Stato == "" {
		p.Stato = StatoAttesa
	}
	return p.Timestamps.BeforeCreate(tx)
}

func (p ProvisioningModel) String() string {
	return p.Funzione + ":" + string(p.Stato)
}

func (p *ProvisioningModel) Validate() error { return helper.Validate(p) }
