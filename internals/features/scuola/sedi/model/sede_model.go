package model

import (
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// SedeModel is a physical site of the school.
type SedeModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome        string `gorm:"type:varchar(128);not null;uniqueIndex:uq_sede_nome;column:nome" json:"nome" validate:"notblank,max=128"`
	NomeBreve   string `gorm:"type:varchar(32);not null;uniqueIndex:uq_sede_nome_breve;column:nome_breve" json:"nome_breve" validate:"notblank,max=32"`
	Citta       string `gorm:"type:varchar(32);not null;column:citta" json:"citta" validate:"notblank,max=32"`
	Indirizzo1  string `gorm:"type:varchar(64);not null;column:indirizzo1" json:"indirizzo1" validate:"notblank,max=64"`
	Indirizzo2  string `gorm:"type:varchar(64);not null;column:indirizzo2" json:"indirizzo2" validate:"notblank,max=64"`
	Telefono    string `gorm:"type:varchar(32);not null;column:telefono" json:"telefono" validate:"notblank,max=32,telefono"`
	Ordinamento int16  `gorm:"type:smallint;not null;default:0;column:ordinamento" json:"ordinamento" validate:"gte=0"`
}

func (SedeModel) TableName() string { return "gs_sede" }

func (s SedeModel) String() string { return s.NomeBreve }

func (s *SedeModel) Validate() error { return helper.Validate(s) }
