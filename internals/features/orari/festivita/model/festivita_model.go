package model

import (
	"gorm.io/datatypes"

	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoFestivita string

const (
	Festivo   TipoFestivita = "F"
	Assemblea TipoFestivita = "A"
)

// FestivitaModel is a day without lessons. A nil Sede applies to every site.
type FestivitaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data        datatypes.Date `gorm:"type:date;not null;index;column:data" json:"data"`
	Descrizione string         `gorm:"type:varchar(128);not null;column:descrizione" json:"descrizione" validate:"notblank,max=128"`
	Tipo        TipoFestivita  `gorm:"type:varchar(1);not null;default:'F';column:tipo" json:"tipo" validate:"oneof=F A"`

	SedeID *uint                `gorm:"index;column:sede_id" json:"sede_id,omitempty"`
	Sede   *sedeModel.SedeModel `gorm:"foreignKey:SedeID;references:ID" json:"sede,omitempty" validate:"-"`
}

func (FestivitaModel) TableName() string { return "gs_festivita" }

func (f FestivitaModel) String() string {
	return dbtime.FormatData(f.Data) + " (" + f.Descrizione + ")"
}

func (f *FestivitaModel) Validate() error {
	if f.Tipo == "" {
		f.Tipo = Festivo
	}
	return helper.Validate(f)
}
