package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoNotificaApp string

const (
	NotificaNessuna  TipoNotificaApp = "N"
	NotificaEmail    TipoNotificaApp = "E"
	NotificaGoogle   TipoNotificaApp = "G"
	NotificaTelegram TipoNotificaApp = "T"
)

// Users an app can be enabled for.
const (
	AbilitatiAlunni   = "A"
	AbilitatiGenitori = "G"
	AbilitatiDocenti  = "D"
	AbilitatiAta      = "T"
	AbilitatiNessuno  = "N"
)

// AppModel is an external app (mobile client, bot) authorised through its token.
type AppModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome      string            `gorm:"type:varchar(255);not null;column:nome" json:"nome" validate:"notblank,max=255"`
	Token     string            `gorm:"type:varchar(128);not null;uniqueIndex:uq_app_token;column:token" json:"-" validate:"notblank,max=128"`
	Attiva    bool              `gorm:"not null;column:attiva" json:"attiva"`
	Css       bool              `gorm:"not null;default:false;column:css" json:"css"`
	Notifica  TipoNotificaApp   `gorm:"type:varchar(1);not null;default:'N';column:notifica" json:"notifica" validate:"oneof=N E G T"`
	Download  *string           `gorm:"type:varchar(64);column:download" json:"download,omitempty" validate:"omitempty,max=64"`
	Abilitati pq.StringArray    `gorm:"type:text[];not null;column:abilitati" json:"abilitati" validate:"min=1,dive,oneof=A G D T N"`
	Dati      datatypes.JSONMap `gorm:"type:jsonb;column:dati" json:"dati,omitempty"`
}

func (AppModel) TableName() string { return "gs_app" }

// NuovoToken returns a fresh random app token.
func NuovoToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (a *AppModel) BeforeCreate(tx *gorm.DB) error {
	if a.Token == "" {
		a.Token = NuovoToken()
	}
	if a.Notifica == "" {
		a.Notifica = NotificaNessuna
	}
	if len(a.Abilitati) == 0 {
		a.Abilitati = pq.StringArray{AbilitatiNessuno}
	}
	return a.Timestamps.BeforeCreate(tx)
}

func (a AppModel) String() string { return a.Nome }

// AbilitataPer reports whether users of the given kind (A, G, D, T) may use the app.
func (a AppModel) AbilitataPer(tipo string) bool {
	if !a.Attiva {
		return false
	}
	for _, x := range a.Abilitati {
		if x == tipo {
			return true
		}
	}
	return false
}

func (a *AppModel) Validate() error { return helper.Validate(a) }
