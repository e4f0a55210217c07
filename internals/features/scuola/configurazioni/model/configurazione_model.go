package model

import (
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// Well-known parameters read by the calendar and queues.
const (
	ParamAnnoScolastico        = "anno_scolastico"
	ParamAnnoInizio            = "anno_inizio"
	ParamAnnoFine              = "anno_fine"
	ParamGiorniFestiviIstituto = "giorni_festivi_istituto"
	ParamGiorniFestiviClassi   = "giorni_festivi_classi"
)

// ConfigurazioneModel is a key/value system parameter.
// Gestito marks parameters owned by a dedicated procedure, not edited by hand.
type ConfigurazioneModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Categoria   string `gorm:"type:varchar(32);not null;column:categoria" json:"categoria" validate:"notblank,max=32"`
	Parametro   string `gorm:"type:varchar(64);not null;uniqueIndex:uq_configurazione_parametro;column:parametro" json:"parametro" validate:"notblank,max=64"`
	Descrizione string `gorm:"type:varchar(1024);not null;column:descrizione" json:"descrizione" validate:"max=1024"`
	Valore      string `gorm:"type:text;not null;column:valore" json:"valore"`
	Gestito     bool   `gorm:"not null;default:false;column:gestito" json:"gestito"`
}

func (ConfigurazioneModel) TableName() string { return "gs_configurazione" }

func (c ConfigurazioneModel) String() string { return c.Parametro + " = " + c.Valore }

func (c *ConfigurazioneModel) Validate() error { return helper.Validate(c) }
