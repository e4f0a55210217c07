package model

import (
	"strconv"

	corsoModel "giuaschool_backend/internals/features/scuola/corsi/model"
	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// ClasseModel is a class (anno + sezione), optionally split into a gruppo.
// Coordinatore and segretario are docenti, referenced by id only to keep the
// utenti package free to point back at classes.
type ClasseModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Anno           int16   `gorm:"type:smallint;not null;uniqueIndex:uq_classe_anno_sezione_gruppo,priority:1;column:anno" json:"anno" validate:"oneof=1 2 3 4 5"`
	Sezione        string  `gorm:"type:varchar(64);not null;uniqueIndex:uq_classe_anno_sezione_gruppo,priority:2;column:sezione" json:"sezione" validate:"notblank,max=64"`
	Gruppo         *string `gorm:"type:varchar(64);uniqueIndex:uq_classe_anno_sezione_gruppo,priority:3;column:gruppo" json:"gruppo,omitempty" validate:"omitempty,max=64"`
	OreSettimanali int16   `gorm:"type:smallint;not null;column:ore_settimanali" json:"ore_settimanali" validate:"gt=0"`

	SedeID uint                 `gorm:"not null;index;column:sede_id" json:"sede_id" validate:"required"`
	Sede   *sedeModel.SedeModel `gorm:"foreignKey:SedeID;references:ID" json:"sede,omitempty" validate:"-"`

	CorsoID uint                   `gorm:"not null;index;column:corso_id" json:"corso_id" validate:"required"`
	Corso   *corsoModel.CorsoModel `gorm:"foreignKey:CorsoID;references:ID" json:"corso,omitempty" validate:"-"`

	CoordinatoreID *uint `gorm:"index;column:coordinatore_id" json:"coordinatore_id,omitempty"`
	SegretarioID   *uint `gorm:"index;column:segretario_id" json:"segretario_id,omitempty"`
}

func (ClasseModel) TableName() string { return "gs_classe" }

func (c ClasseModel) String() string {
	s := strconv.Itoa(int(c.Anno)) + "ª " + c.Sezione
	if c.Gruppo != nil && *c.Gruppo != "" {
		s += "-" + *c.Gruppo
	}
	return s
}

func (c *ClasseModel) Validate() error { return helper.Validate(c) }
