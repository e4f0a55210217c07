package model

import (
	"gorm.io/gorm"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoFirma string

const (
	FirmaNormale  TipoFirma = "N"
	FirmaSostegno TipoFirma = "S"
)

// FirmaModel is a teacher's signature on a lesson. Support signatures share
// gs_firma and are told apart by tipo.
type FirmaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Tipo TipoFirma `gorm:"type:varchar(1);not null;default:'N';column:tipo" json:"tipo" validate:"oneof=N S"`

	LezioneID uint          `gorm:"not null;uniqueIndex:uq_firma_lezione_docente,priority:1;column:lezione_id" json:"lezione_id" validate:"required"`
	Lezione   *LezioneModel `gorm:"foreignKey:LezioneID;references:ID" json:"lezione,omitempty" validate:"-"`

	DocenteID uint                      `gorm:"not null;uniqueIndex:uq_firma_lezione_docente,priority:2;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`
}

func (FirmaModel) TableName() string { return "gs_firma" }

func (f *FirmaModel) BeforeCreate(tx *gorm.DB) error {
	if f.Tipo == "" {
		f.Tipo = FirmaNormale
	}
	return f.Timestamps.BeforeCreate(tx)
}

// String needs Lezione and Docente preloaded.
func (f FirmaModel) String() string {
	var lezione, docente string
	if f.Lezione != nil {
		lezione = f.Lezione.String()
	}
	if f.Docente != nil {
		docente = f.Docente.String()
	}
	return lezione + " (" + docente + ")"
}

func (f *FirmaModel) Validate() error {
	if f.Tipo == "" {
		f.Tipo = FirmaNormale
	}
	return helper.Validate(f)
}

// FirmaSostegnoModel is the signature of a support teacher, with the work done
// with the followed student.
type FirmaSostegnoModel struct {
	FirmaModel

	Argomento *string `gorm:"type:text;column:argomento" json:"argomento,omitempty"`
	Attivita  *string `gorm:"type:text;column:attivita" json:"attivita,omitempty"`

	AlunnoID *uint                    `gorm:"index;column:alunno_id" json:"alunno_id,omitempty"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`
}

func (f *FirmaSostegnoModel) BeforeCreate(tx *gorm.DB) error {
	f.Tipo = FirmaSostegno
	return f.FirmaModel.BeforeCreate(tx)
}

func (f *FirmaSostegnoModel) Validate() error {
	f.Tipo = FirmaSostegno
	return helper.Validate(f)
}

// SoloSostegno restricts a query on gs_firma to support signatures.
func SoloSostegno(db *gorm.DB) *gorm.DB {
	return db.Where("tipo = ?", FirmaSostegno)
}
