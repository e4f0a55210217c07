package model

import (
	"strconv"

	"gorm.io/datatypes"

	cattedraModel "giuaschool_backend/internals/features/scuola/cattedre/model"
	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// OrarioModel is a timetable of a site, valid from Inizio to Fine.
type OrarioModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome   string         `gorm:"type:varchar(64);not null;column:nome" json:"nome" validate:"notblank,max=64"`
	Inizio datatypes.Date `gorm:"type:date;not null;column:inizio" json:"inizio"`
	Fine   datatypes.Date `gorm:"type:date;not null;column:fine" json:"fine"`

	SedeID uint                 `gorm:"not null;index;column:sede_id" json:"sede_id" validate:"required"`
	Sede   *sedeModel.SedeModel `gorm:"foreignKey:SedeID;references:ID" json:"sede,omitempty" validate:"-"`

	Scansioni []ScansioneOrariaModel `gorm:"foreignKey:OrarioID;references:ID" json:"scansioni,omitempty" validate:"-"`
}

func (OrarioModel) TableName() string { return "gs_orario" }

func (o OrarioModel) String() string { return o.Nome }

func (o *OrarioModel) Validate() error { return helper.Validate(o) }

// ScansioneOrariaModel is one hour slot of a weekday (0 = Sunday).
type ScansioneOrariaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Giorno int16      `gorm:"type:smallint;not null;column:giorno" json:"giorno" validate:"min=0,max=6"`
	Ora    int16      `gorm:"type:smallint;not null;column:ora" json:"ora" validate:"gt=0"`
	Inizio dbtime.Tod `gorm:"type:time;not null;column:inizio" json:"inizio"`
	Fine   dbtime.Tod `gorm:"type:time;not null;column:fine" json:"fine"`
	Durata float32    `gorm:"type:real;not null;default:1;column:durata" json:"durata" validate:"gt=0"`

	OrarioID uint         `gorm:"not null;index;column:orario_id" json:"orario_id" validate:"required"`
	Orario   *OrarioModel `gorm:"foreignKey:OrarioID;references:ID" json:"orario,omitempty" validate:"-"`
}

func (ScansioneOrariaModel) TableName() string { return "gs_scansione_oraria" }

func (s ScansioneOrariaModel) String() string {
	return strconv.Itoa(int(s.Giorno)) + ":" + strconv.Itoa(int(s.Ora))
}

func (s *ScansioneOrariaModel) Validate() error {
	if err := helper.Validate(s); err != nil {
		return err
	}
	if !s.Inizio.IsBefore(s.Fine) {
		return helper.ValidationErrors{"fine": "field.time"}
	}
	return nil
}

// OrarioDocenteModel places a teaching assignment on a slot of a timetable.
type OrarioDocenteModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	OrarioID uint         `gorm:"not null;index;column:orario_id" json:"orario_id" validate:"required"`
	Orario   *OrarioModel `gorm:"foreignKey:OrarioID;references:ID" json:"orario,omitempty" validate:"-"`

	Giorno int16 `gorm:"type:smallint;not null;column:giorno" json:"giorno" validate:"min=0,max=6"`
	Ora    int16 `gorm:"type:smallint;not null;column:ora" json:"ora" validate:"gt=0"`

	CattedraID uint                         `gorm:"not null;index;column:cattedra_id" json:"cattedra_id" validate:"required"`
	Cattedra   *cattedraModel.CattedraModel `gorm:"foreignKey:CattedraID;references:ID" json:"cattedra,omitempty" validate:"-"`
}

func (OrarioDocenteModel) TableName() string { return "gs_orario_docente" }

func (o OrarioDocenteModel) String() string {
	s := strconv.Itoa(int(o.Giorno)) + ":" + strconv.Itoa(int(o.Ora))
	if o.Cattedra != nil {
		s += " " + o.Cattedra.String()
	}
	return s
}

func (o *OrarioDocenteModel) Validate() error { return helper.Validate(o) }
