package model

import (
	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	materiaModel "giuaschool_backend/internals/features/scuola/materie/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoCattedra string

const (
	CattedraNormale     TipoCattedra = "N"
	CattedraITP         TipoCattedra = "I"
	CattedraPotenziato  TipoCattedra = "P"
	CattedraAlternativa TipoCattedra = "A"
)

// CattedraModel assigns a teacher to a subject in a class. Support teaching
// (sostegno) also names the student being followed.
type CattedraModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Attiva    bool         `gorm:"not null;column:attiva" json:"attiva"`
	Supplenza bool         `gorm:"not null;default:false;column:supplenza" json:"supplenza"`
	Tipo      TipoCattedra `gorm:"type:varchar(1);not null;column:tipo" json:"tipo" validate:"oneof=N I P A"`

	MateriaID uint                       `gorm:"not null;index;column:materia_id" json:"materia_id" validate:"required"`
	Materia   *materiaModel.MateriaModel `gorm:"foreignKey:MateriaID;references:ID" json:"materia,omitempty" validate:"-"`

	DocenteID uint                      `gorm:"not null;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`

	ClasseID uint                     `gorm:"not null;index;column:classe_id" json:"classe_id" validate:"required"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	AlunnoID *uint                    `gorm:"index;column:alunno_id" json:"alunno_id,omitempty"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	DocenteSupplenzaID *uint                     `gorm:"index;column:docente_supplenza_id" json:"docente_supplenza_id,omitempty"`
	DocenteSupplenza   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteSupplenzaID;references:ID" json:"docente_supplenza,omitempty" validate:"-"`
}

// NuovaCattedra returns an active, ordinary assignment.
func NuovaCattedra() *CattedraModel {
	return &CattedraModel{Attiva: true, Tipo: CattedraNormale}
}

func (CattedraModel) TableName() string { return "gs_cattedra" }

// String needs Docente, Materia and Classe preloaded.
func (c CattedraModel) String() string {
	var docente, materia, classe string
	if c.Docente != nil {
		docente = c.Docente.String()
	}
	if c.Materia != nil {
		materia = c.Materia.String()
	}
	if c.Classe != nil {
		classe = c.Classe.String()
	}
	return docente + " - " + materia + " - " + classe
}

func (c *CattedraModel) Validate() error { return helper.Validate(c) }
