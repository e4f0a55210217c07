package model

import (
	"gorm.io/gorm"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	materiaModel "giuaschool_backend/internals/features/scuola/materie/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
)

// Tipi di documento.
const (
	DocumentoPianoLavoro    = "L"
	DocumentoProgramma      = "P"
	DocumentoRelazione      = "R"
	DocumentoMaggio         = "M"
	DocumentoPEI            = "H"
	DocumentoPDP            = "D"
	DocumentoDiagnosiBES    = "B"
	DocumentoCertificatiBES = "C"
	DocumentoGenerico       = "G"
)

// DocumentoModel is a class or student document: work plans, reports, PEI/PDP.
type DocumentoModel struct {
	ComunicazioneModel

	MateriaID *uint                      `gorm:"index;column:materia_id" json:"materia_id,omitempty"`
	Materia   *materiaModel.MateriaModel `gorm:"foreignKey:MateriaID;references:ID" json:"materia,omitempty" validate:"-"`

	ClasseID *uint                    `gorm:"index;column:classe_id" json:"classe_id,omitempty"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	AlunnoID *uint                    `gorm:"index;column:alunno_id" json:"alunno_id,omitempty"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`
}

func NuovoDocumento() *DocumentoModel {
	d := &DocumentoModel{}
	d.defaults(CategoriaDocumento)
	return d
}

func (d *DocumentoModel) BeforeCreate(tx *gorm.DB) error {
	return d.beforeCreate(tx, CategoriaDocumento)
}

func (d DocumentoModel) String() string {
	return "Documento \"" + d.Titolo + "\""
}

// PerAlunno reports whether the document concerns a single student (PEI, PDP, BES).
func (d DocumentoModel) PerAlunno() bool {
	switch d.Tipo {
	case DocumentoPEI, DocumentoPDP, DocumentoDiagnosiBES, DocumentoCertificatiBES:
		return true
	}
	return false
}

func (d *DocumentoModel) Validate() error {
	d.defaults(CategoriaDocumento)
	return helper.Validate(d)
}
