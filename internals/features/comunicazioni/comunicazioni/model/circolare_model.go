package model

import (
	"strconv"

	"gorm.io/gorm"

	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// CircolareModel is a numbered circular. Numero is unique within a school
// year (anno), see NumeroDisponibile.
type CircolareModel struct {
	ComunicazioneModel

	Numero *int `gorm:"index;column:numero" json:"numero,omitempty" validate:"required,gt=0"`
}

func NuovaCircolare() *CircolareModel {
	c := &CircolareModel{}
	c.defaults(CategoriaCircolare)
	return c
}

func (c *CircolareModel) BeforeCreate(tx *gorm.DB) error {
	return c.beforeCreate(tx, CategoriaCircolare)
}

func (c CircolareModel) String() string {
	n := ""
	if c.Numero != nil {
		n = strconv.Itoa(*c.Numero)
	}
	return "Circolare del " + dbtime.FormatData(c.Data) + " n. " + n
}

func (c *CircolareModel) Validate() error {
	c.defaults(CategoriaCircolare)
	return helper.Validate(c)
}
