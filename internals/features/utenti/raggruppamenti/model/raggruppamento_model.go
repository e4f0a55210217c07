package model

import (
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// RaggruppamentoModel is a named set of students used as a recipient list.
type RaggruppamentoModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Nome   string                     `gorm:"type:varchar(64);not null;uniqueIndex:uq_raggruppamento_nome;column:nome" json:"nome" validate:"notblank,max=64"`
	Alunni []*utenteModel.AlunnoModel `gorm:"many2many:gs_raggruppamento_alunno;joinForeignKey:RaggruppamentoID;joinReferences:AlunnoID" json:"alunni,omitempty" validate:"-"`
}

func (RaggruppamentoModel) TableName() string { return "gs_raggruppamento" }

func (r RaggruppamentoModel) String() string { return r.Nome }

func (r *RaggruppamentoModel) Validate() error { return helper.Validate(r) }

// AddAlunno appends a student unless already present.
func (r *RaggruppamentoModel) AddAlunno(a *utenteModel.AlunnoModel) {
	for _, x := range r.Alunni {
		if x == a || (a.ID != 0 && x.ID == a.ID) {
			return
		}
	}
	r.Alunni = append(r.Alunni, a)
}

// RemoveAlunno drops a student by id.
func (r *RaggruppamentoModel) RemoveAlunno(id uint) {
	out := r.Alunni[:0]
	for _, x := range r.Alunni {
		if x.ID != id {
			out = append(out, x)
		}
	}
	r.Alunni = out
}
