package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	cattedraModel "giuaschool_backend/internals/features/scuola/cattedre/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoOsservazione string

const (
	OsservazioneSuClasse TipoOsservazione = "C"
	OsservazioneSuAlunno TipoOsservazione = "A"
)

// OsservazioneClasseModel is a teacher's private observation on a class. The
// per-student variant lives in the same gs_osservazione table.
type OsservazioneClasseModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Tipo  TipoOsservazione `gorm:"type:varchar(1);not null;default:'C';column:tipo" json:"tipo" validate:"oneof=C A"`
	Data  datatypes.Date   `gorm:"type:date;not null;index;column:data" json:"data"`
	Testo string           `gorm:"type:text;not null;column:testo" json:"testo" validate:"notblank"`

	CattedraID uint                         `gorm:"not null;index;column:cattedra_id" json:"cattedra_id" validate:"required"`
	Cattedra   *cattedraModel.CattedraModel `gorm:"foreignKey:CattedraID;references:ID" json:"cattedra,omitempty" validate:"-"`
}

func (OsservazioneClasseModel) TableName() string { return "gs_osservazione" }

func (o *OsservazioneClasseModel) BeforeCreate(tx *gorm.DB) error {
	if o.Tipo == "" {
		o.Tipo = OsservazioneSuClasse
	}
	return o.Timestamps.BeforeCreate(tx)
}

func (o OsservazioneClasseModel) String() string {
	return dbtime.FormatData(o.Data) + ": " + o.Testo
}

func (o *OsservazioneClasseModel) Validate() error {
	if o.Tipo == "" {
		o.Tipo = OsservazioneSuClasse
	}
	return helper.Validate(o)
}

type OsservazioneAlunnoModel struct {
	OsservazioneClasseModel

	AlunnoID *uint                    `gorm:"index;column:alunno_id" json:"alunno_id,omitempty" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`
}

func (o *OsservazioneAlunnoModel) BeforeCreate(tx *gorm.DB) error {
	o.Tipo = OsservazioneSuAlunno
	return o.OsservazioneClasseModel.BeforeCreate(tx)
}

func (o OsservazioneAlunnoModel) String() string {
	s := dbtime.FormatData(o.Data)
	if o.Alunno != nil {
		s += " " + o.Alunno.String()
	}
	return s + ": " + o.Testo
}

func (o *OsservazioneAlunnoModel) Validate() error {
	o.Tipo = OsservazioneSuAlunno
	return helper.Validate(o)
}
