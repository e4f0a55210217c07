package model

import (
	"gorm.io/datatypes"

	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoModulo string

const (
	ModuloOrientamento TipoModulo = "O"
	ModuloPCTO         TipoModulo = "P"
)

// ModuloFormativoModel is a guidance or PCTO module that lessons can be tagged with.
// Classi lists the class years (1..5) the module applies to.
type ModuloFormativoModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome      string                  `gorm:"type:varchar(255);not null;uniqueIndex:uq_modulo_formativo_nome;column:nome" json:"nome" validate:"notblank,max=255"`
	NomeBreve string                  `gorm:"type:varchar(64);not null;uniqueIndex:uq_modulo_formativo_nome_breve;column:nome_breve" json:"nome_breve" validate:"notblank,max=64"`
	Tipo      TipoModulo              `gorm:"type:varchar(1);not null;column:tipo" json:"tipo" validate:"oneof=O P"`
	Classi    datatypes.JSONSlice[int] `gorm:"type:jsonb;not null;column:classi" json:"classi" validate:"dive,min=1,max=5"`
}

func (ModuloFormativoModel) TableName() string { return "gs_modulo_formativo" }

func (m ModuloFormativoModel) String() string { return m.NomeBreve }

// PerAnno reports whether the module targets classes of the given year.
func (m ModuloFormativoModel) PerAnno(anno int) bool {
	for _, a := range m.Classi {
		if a == anno {
			return true
		}
	}
	return false
}

func (m *ModuloFormativoModel) Validate() error { return helper.Validate(m) }
