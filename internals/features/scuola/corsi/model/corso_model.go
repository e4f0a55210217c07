package model

import (
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type CorsoModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome      string `gorm:"type:varchar(128);not null;uniqueIndex:uq_corso_nome;column:nome" json:"nome" validate:"notblank,max=128"`
	NomeBreve string `gorm:"type:varchar(32);not null;uniqueIndex:uq_corso_nome_breve;column:nome_breve" json:"nome_breve" validate:"notblank,max=32"`
}

func (CorsoModel) TableName() string { return "gs_corso" }

func (c CorsoModel) String() string { return c.NomeBreve }

func (c *CorsoModel) Validate() error { return helper.Validate(c) }
