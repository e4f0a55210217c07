package model

import (
	"gorm.io/datatypes"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoLog string

const (
	LogAccesso   TipoLog = "A"
	LogCreazione TipoLog = "C"
	LogModifica  TipoLog = "U"
	LogCancella  TipoLog = "D"
)

// LogModel is an audit entry. Username and ruolo are copied so the entry
// survives the user; alias is the impersonating admin, if any.
type LogModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	UtenteID     *uint                    `gorm:"index;column:utente_id" json:"utente_id,omitempty"`
	Utente       *utenteModel.UtenteModel `gorm:"foreignKey:UtenteID;references:ID;constraint:OnDelete:SET NULL" json:"-" validate:"-"`
	Username     string                   `gorm:"type:varchar(255);not null;column:username" json:"username" validate:"notblank,max=255"`
	Ruolo        string                   `gorm:"type:varchar(32);not null;column:ruolo" json:"ruolo" validate:"notblank,max=32"`
	Alias        *string                  `gorm:"type:varchar(255);column:alias" json:"alias,omitempty" validate:"omitempty,max=255"`
	Ip           string                   `gorm:"type:varchar(64);not null;column:ip" json:"ip" validate:"notblank,max=64"`
	Origine      string                   `gorm:"type:varchar(255);not null;column:origine" json:"origine" validate:"notblank,max=255"`
	Tipo         TipoLog                  `gorm:"type:varchar(1);not null;column:tipo" json:"tipo" validate:"oneof=A C U D"`
	Categoria    string                   `gorm:"type:varchar(32);not null;index;column:categoria" json:"categoria" validate:"notblank,max=32"`
	Azione       string                   `gorm:"type:varchar(64);not null;column:azione" json:"azione" validate:"notblank,max=64"`
	ClasseEntita *string                  `gorm:"type:varchar(255);column:classe_entita" json:"classe_entita,omitempty" validate:"omitempty,max=255"`
	IdEntita     *string                  `gorm:"type:varchar(32);column:id_entita" json:"id_entita,omitempty" validate:"omitempty,max=32"`
	Dati         datatypes.JSONMap        `gorm:"type:jsonb;column:dati" json:"dati,omitempty"`
}

func (LogModel) TableName() string { return "gs_log" }

func (l LogModel) String() string {
	return dbtime.ToSchoolTime(l.Creato).Format(dbtime.LayoutDataOra) + " " + l.Username + " " + l.Categoria + "/" + l.Azione
}

func (l *LogModel) Validate() error { return helper.Validate(l) }
