package model

import (
	"gorm.io/datatypes"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// CambioClasseModel records the period a student spent in a class other than
// the current one. A nil class means the student came from another school.
type CambioClasseModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	AlunnoID uint                     `gorm:"not null;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	Inizio datatypes.Date `gorm:"type:date;not null;column:inizio" json:"inizio"`
	Fine   datatypes.Date `gorm:"type:date;not null;column:fine" json:"fine"`

	ClasseID *uint                    `gorm:"index;column:classe_id" json:"classe_id,omitempty"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	Note *string `gorm:"type:varchar(255);column:note" json:"note,omitempty" validate:"omitempty,max=255"`
}

func (CambioClasseModel) TableName() string { return "gs_cambio_classe" }

// String needs Alunno preloaded, and Classe when ClasseID is set.
func (c CambioClasseModel) String() string {
	var alunno string
	if c.Alunno != nil {
		alunno = c.Alunno.String()
	}
	classe := "ALTRA SCUOLA"
	if c.Classe != nil {
		classe = c.Classe.String()
	}
	return alunno + " -> " + classe
}

func (c *CambioClasseModel) Validate() error { return helper.Validate(c) }
