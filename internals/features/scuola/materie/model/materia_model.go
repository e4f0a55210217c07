package model

import (
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoMateria string

const (
	MateriaNormale   TipoMateria = "N"
	MateriaReligione TipoMateria = "R"
	MateriaSostegno  TipoMateria = "S"
	MateriaCondotta  TipoMateria = "C"
	MateriaEdCivica  TipoMateria = "E"
	MateriaSupplenza TipoMateria = "U"
)

type ValutazioneMateria string

const (
	ValutazioneNumerica ValutazioneMateria = "N"
	ValutazioneGiudizio ValutazioneMateria = "G"
	ValutazioneAssente  ValutazioneMateria = "A"
)

type MateriaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome        string             `gorm:"type:varchar(128);not null;uniqueIndex:uq_materia_nome;column:nome" json:"nome" validate:"notblank,max=128"`
	NomeBreve   string             `gorm:"type:varchar(32);not null;column:nome_breve" json:"nome_breve" validate:"notblank,max=32"`
	Tipo        TipoMateria        `gorm:"type:varchar(1);not null;column:tipo" json:"tipo" validate:"oneof=N R S C E U"`
	Valutazione ValutazioneMateria `gorm:"type:varchar(1);not null;column:valutazione" json:"valutazione" validate:"oneof=N G A"`
	Media       bool               `gorm:"not null;column:media" json:"media"`
	Ordinamento int16              `gorm:"type:smallint;not null;default:0;column:ordinamento" json:"ordinamento" validate:"gte=0"`
}

func (MateriaModel) TableName() string { return "gs_materia" }

func (m MateriaModel) String() string { return m.NomeBreve }

func (m *MateriaModel) Validate() error { return helper.Validate(m) }
