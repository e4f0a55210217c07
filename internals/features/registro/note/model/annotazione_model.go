package model

import (
	"gorm.io/datatypes"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// AnnotazioneModel is a line on the class register. AvvisoID is set when the
// annotation was generated by a notice.
type AnnotazioneModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data     datatypes.Date `gorm:"type:date;not null;index;column:data" json:"data"`
	Testo    string         `gorm:"type:text;not null;column:testo" json:"testo" validate:"notblank"`
	Visibile bool           `gorm:"not null;column:visibile" json:"visibile"`
	AvvisoID *uint          `gorm:"index;column:avviso_id" json:"avviso_id,omitempty"`

	ClasseID uint                     `gorm:"not null;index;column:classe_id" json:"classe_id" validate:"required"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	DocenteID uint                      `gorm:"not null;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`
}

func (AnnotazioneModel) TableName() string { return "gs_annotazione" }

func (a AnnotazioneModel) String() string {
	s := dbtime.FormatData(a.Data)
	if a.Classe != nil {
		s += " " + a.Classe.String()
	}
	return s + ": " + a.Testo
}

func (a *AnnotazioneModel) Validate() error { return helper.Validate(a) }
