package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoPresenza string

const (
	PresenzaPCTO     TipoPresenza = "P"
	PresenzaMobilita TipoPresenza = "M"
	PresenzaScuola   TipoPresenza = "S"
	PresenzaEsterna  TipoPresenza = "E"
)

// PresenzaModel is an out-of-class presence (PCTO, mobility, school activity)
// that counts as attendance. Without hours it covers the whole day.
type PresenzaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data        datatypes.Date `gorm:"type:date;not null;index;column:data" json:"data"`
	OraInizio   *dbtime.Tod    `gorm:"type:time;column:ora_inizio" json:"ora_inizio,omitempty"`
	OraFine     *dbtime.Tod    `gorm:"type:time;column:ora_fine" json:"ora_fine,omitempty"`
	Tipo        TipoPresenza   `gorm:"type:varchar(1);not null;default:'S';column:tipo" json:"tipo" validate:"oneof=P M S E"`
	Descrizione string         `gorm:"type:varchar(255);not null;column:descrizione" json:"descrizione" validate:"notblank,max=255"`

	AlunnoID uint                     `gorm:"not null;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`
}

func (PresenzaModel) TableName() string { return "gs_presenza" }

func (p *PresenzaModel) BeforeCreate(tx *gorm.DB) error {
	if p.Tipo == "" {
		p.Tipo = PresenzaScuola
	}
	return p.Timestamps.BeforeCreate(tx)
}

func (p PresenzaModel) String() string {
	return dbtime.FormatData(p.Data) + " - " + nomeAlunno(p.Alunno) + ": " + p.Descrizione
}

// GiornataIntera reports whether the presence has no time range.
func (p PresenzaModel) GiornataIntera() bool {
	return p.OraInizio == nil && p.OraFine == nil
}

func (p *PresenzaModel) Validate() error {
	if p.Tipo == "" {
		p.Tipo = PresenzaScuola
	}
	if err := helper.Validate(p); err != nil {
		return err
	}
	if p.OraInizio != nil && p.OraFine != nil && !p.OraInizio.IsBefore(*p.OraFine) {
		return helper.ValidationErrors{"ora_fine": "field.time"}
	}
	return nil
}

// DerogaAssenzaModel exempts an absence day from the attendance limit.
type DerogaAssenzaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data datatypes.Date `gorm:"type:date;not null;index;column:data" json:"data"`

	AlunnoID uint                     `gorm:"not null;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	Motivazione string `gorm:"type:text;not null;column:motivazione" json:"motivazione" validate:"notblank"`
}

func (DerogaAssenzaModel) TableName() string { return "gs_deroga_assenza" }

func (d DerogaAssenzaModel) String() string {
	return dbtime.FormatData(d.Data) + " - " + nomeAlunno(d.Alunno)
}

func (d *DerogaAssenzaModel) Validate() error { return helper.Validate(d) }
