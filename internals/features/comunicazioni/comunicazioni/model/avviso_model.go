package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	noteModel "giuaschool_backend/internals/features/registro/note/model"
	cattedraModel "giuaschool_backend/internals/features/scuola/cattedre/model"
	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	materiaModel "giuaschool_backend/internals/features/scuola/materie/model"
	"giuaschool_backend/internals/helpers"
)

// Tipi di avviso.
const (
	AvvisoUscita       = "U"
	AvvisoEntrata      = "E"
	AvvisoVerifica     = "V"
	AvvisoCompito      = "P"
	AvvisoAttivita     = "A"
	AvvisoIndividuale  = "I"
	AvvisoGenerico     = "C"
	AvvisoDocenti      = "D"
	AvvisoCoordinatori = "O"
)

// AvvisoModel is a notice. Sostituzioni maps placeholders in Testo to the
// text that replaces them for each recipient.
type AvvisoModel struct {
	ComunicazioneModel

	CattedraID *uint                        `gorm:"index;column:cattedra_id" json:"cattedra_id,omitempty"`
	Cattedra   *cattedraModel.CattedraModel `gorm:"foreignKey:CattedraID;references:ID" json:"cattedra,omitempty" validate:"-"`

	ClasseID *uint                    `gorm:"index;column:classe_id" json:"classe_id,omitempty"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`

	MateriaID *uint                      `gorm:"index;column:materia_id" json:"materia_id,omitempty"`
	Materia   *materiaModel.MateriaModel `gorm:"foreignKey:MateriaID;references:ID" json:"materia,omitempty" validate:"-"`

	Testo        string            `gorm:"type:text;column:testo" json:"testo" validate:"notblank"`
	Sostituzioni datatypes.JSONMap `gorm:"type:jsonb;column:sostituzioni" json:"sostituzioni"`

	Annotazioni []noteModel.AnnotazioneModel `gorm:"foreignKey:AvvisoID;references:ID" json:"annotazioni,omitempty" validate:"-"`
}

func NuovoAvviso() *AvvisoModel {
	a := &AvvisoModel{Sostituzioni: datatypes.JSONMap{}}
	a.defaults(CategoriaAvviso)
	a.Tipo = AvvisoGenerico
	return a
}

func (a *AvvisoModel) BeforeCreate(tx *gorm.DB) error {
	if a.Sostituzioni == nil {
		a.Sostituzioni = datatypes.JSONMap{}
	}
	return a.beforeCreate(tx, CategoriaAvviso)
}

func (a AvvisoModel) String() string {
	return "Avviso \"" + a.Titolo + "\""
}

func (a *AvvisoModel) Validate() error {
	a.defaults(CategoriaAvviso)
	return helper.Validate(a)
}
