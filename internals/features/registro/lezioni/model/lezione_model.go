package model

import (
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	materiaModel "giuaschool_backend/internals/features/scuola/materie/model"
	moduloModel "giuaschool_backend/internals/features/scuola/moduli_formativi/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoGruppo string

const (
	GruppoNessuno   TipoGruppo = "N"
	GruppoCurricolo TipoGruppo = "C"
	GruppoReligione TipoGruppo = "R"
)

// LezioneModel is one teaching hour of a class (or of a group of it) on a day.
type LezioneModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data       datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_lezione_data_ora_classe_gruppo,priority:1;column:data" json:"data"`
	Ora        int16          `gorm:"type:smallint;not null;uniqueIndex:uq_lezione_data_ora_classe_gruppo,priority:2;column:ora" json:"ora" validate:"gt=0"`
	ClasseID   uint           `gorm:"not null;uniqueIndex:uq_lezione_data_ora_classe_gruppo,priority:3;index;column:classe_id" json:"classe_id" validate:"required"`
	Gruppo     *string        `gorm:"type:varchar(64);uniqueIndex:uq_lezione_data_ora_classe_gruppo,priority:4;column:gruppo" json:"gruppo,omitempty" validate:"omitempty,max=64"`
	TipoGruppo TipoGruppo     `gorm:"type:varchar(1);not null;default:'N';column:tipo_gruppo" json:"tipo_gruppo" validate:"oneof=N C R"`

	Classe *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	MateriaID uint                       `gorm:"not null;index;column:materia_id" json:"materia_id" validate:"required"`
	Materia   *materiaModel.MateriaModel `gorm:"foreignKey:MateriaID;references:ID" json:"materia,omitempty" validate:"-"`

	Argomento *string `gorm:"type:text;column:argomento" json:"argomento,omitempty"`
	Attivita  *string `gorm:"type:text;column:attivita" json:"attivita,omitempty"`

	ModuloFormativoID *uint                             `gorm:"index;column:modulo_formativo_id" json:"modulo_formativo_id,omitempty"`
	ModuloFormativo   *moduloModel.ModuloFormativoModel `gorm:"foreignKey:ModuloFormativoID;references:ID" json:"modulo_formativo,omitempty" validate:"-"`

	Sostituzione bool `gorm:"not null;default:false;column:sostituzione" json:"sostituzione"`
}

func (LezioneModel) TableName() string { return "gs_lezione" }

func (l *LezioneModel) BeforeCreate(tx *gorm.DB) error {
	if l.TipoGruppo == "" {
		l.TipoGruppo = GruppoNessuno
	}
	return l.Timestamps.BeforeCreate(tx)
}

// String reads "dd/mm/yyyy: N - classe materia"; classe and materia need preloading.
func (l LezioneModel) String() string {
	s := dbtime.FormatData(l.Data) + ": " + strconv.Itoa(int(l.Ora))
	if l.Classe != nil {
		s += " - " + l.Classe.String()
	}
	if l.Materia != nil {
		s += " " + l.Materia.String()
	}
	return s
}

func (l *LezioneModel) Validate() error {
	if l.TipoGruppo == "" {
		l.TipoGruppo = GruppoNessuno
	}
	return helper.Validate(l)
}
