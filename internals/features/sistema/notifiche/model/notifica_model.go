package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	appModel "giuaschool_backend/internals/features/sistema/app/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type AzioneNotifica string

const (
	AzioneAggiunta   AzioneNotifica = "A"
	AzioneModifica   AzioneNotifica = "E"
	AzioneCancellata AzioneNotifica = "D"
)

// NotificaModel records that an entity changed and its recipients must be told.
type NotificaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	OggettoNome string         `gorm:"type:varchar(255);not null;index:idx_notifica_oggetto,priority:1;column:oggetto_nome" json:"oggetto_nome" validate:"notblank,max=255"`
	OggettoID   uint           `gorm:"not null;index:idx_notifica_oggetto,priority:2;column:oggetto_id" json:"oggetto_id" validate:"gt=0"`
	Azione      AzioneNotifica `gorm:"type:varchar(1);not null;column:azione" json:"azione" validate:"oneof=A E D"`
}

func (NotificaModel) TableName() string { return "gs_notifica" }

func (n NotificaModel) String() string {
	return n.OggettoNome + ":" + string(n.Azione)
}

func (n *NotificaModel) Validate() error { return helper.Validate(n) }

type StatoInvio string

const (
	InvioAttesa   StatoInvio = "A"
	InvioPriorita StatoInvio = "P"
	InvioSpedito  StatoInvio = "S"
	InvioErrore   StatoInvio = "E"
)

// NotificaInvioModel is a single message queued for delivery through an app.
// Dati carries the delivery details (email, oggetto) and, on failure, errore.
type NotificaInvioModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Stato     StatoInvio         `gorm:"type:varchar(1);not null;default:'A';index;column:stato" json:"stato" validate:"oneof=A P S E"`
	Messaggio string             `gorm:"type:text;not null;column:messaggio" json:"messaggio" validate:"notblank"`
	AppID     uint               `gorm:"not null;index;column:app_id" json:"app_id" validate:"gt=0"`
	App       *appModel.AppModel `gorm:"foreignKey:AppID;references:ID" json:"app,omitempty" validate:"-"`
	Dati      datatypes.JSONMap  `gorm:"type:jsonb;column:dati" json:"dati,omitempty"`
}

func (NotificaInvioModel) TableName() string { return "gs_notifica_invio" }

func (n *NotificaInvioModel) BeforeCreate(tx *gorm.DB) error {
	if n.Stato == "" {
		n.Stato = InvioAttesa
	}
	return n.Timestamps.BeforeCreate(tx)
}

// Destinatario returns the address stored in dati.
func (n NotificaInvioModel) Destinatario() string {
	return n.datoStringa("email")
}

// Oggetto returns the subject stored in dati, if any.
func (n NotificaInvioModel) Oggetto() string {
	return n.datoStringa("oggetto")
}

func (n NotificaInvioModel) datoStringa(k string) string {
	if n.Dati == nil {
		return ""
	}
	s, _ := n.Dati[k].(string)
	return s
}

func (n *NotificaInvioModel) Validate() error { return helper.Validate(n) }
