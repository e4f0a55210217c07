package model

import (
	"strconv"

	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// AllegatoModel is a file attached to a communication.
type AllegatoModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Titolo     string `gorm:"type:varchar(255);not null;column:titolo" json:"titolo" validate:"notblank,max=255"`
	Nome       string `gorm:"type:varchar(255);not null;column:nome" json:"nome" validate:"notblank,max=255"`
	Estensione string `gorm:"type:varchar(32);not null;column:estensione" json:"estensione" validate:"notblank,max=32"`
	Dimensione int    `gorm:"not null;column:dimensione" json:"dimensione" validate:"gt=0"`
	File       string `gorm:"type:varchar(255);not null;column:file" json:"file" validate:"notblank,max=255"`

	ComunicazioneID uint `gorm:"not null;index;column:comunicazione_id" json:"comunicazione_id"`
}

func (AllegatoModel) TableName() string { return "gs_allegato" }

func (a AllegatoModel) String() string {
	return a.Titolo + " (" + a.Estensione + ", " + strconv.Itoa(a.Dimensione) + " bytes)"
}

// NomeFile is the name offered on download.
func (a AllegatoModel) NomeFile() string { return a.Nome + "." + a.Estensione }

func (a *AllegatoModel) Validate() error { return helper.Validate(a) }
