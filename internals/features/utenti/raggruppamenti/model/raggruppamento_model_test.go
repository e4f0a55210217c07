package model

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers/dbtest"
)

func alunno(id uint) *utenteModel.AlunnoModel {
	a := utenteModel.NuovoAlunno()
	a.ID = id
	return a
}

func TestRaggruppamentoAlunni(t *testing.T) {
	r := RaggruppamentoModel{Nome: "Laboratorio teatrale"}
	a1, a2 := alunno(1), alunno(2)
	r.AddAlunno(a1)
	r.AddAlunno(a2)
	r.AddAlunno(alunno(1))
	if len(r.Alunni) != 2 {
		t.Fatalf("duplicates added: %d", len(r.Alunni))
	}
	r.RemoveAlunno(1)
	if len(r.Alunni) != 1 || r.Alunni[0].ID != 2 {
		t.Fatalf("RemoveAlunno left %v", r.Alunni)
	}
	if r.String() != "Laboratorio teatrale" {
		t.Fatalf("String = %q", r.String())
	}
}

func TestRaggruppamentoValidate(t *testing.T) {
	r := RaggruppamentoModel{Nome: "  "}
	if err := r.Validate(); err == nil {
		t.Fatalf("blank name accepted")
	}
}

func TestRaggruppamentoJoinTable(t *testing.T) {
	db := dbtest.DryRun(t)
	sql := dbtest.SQL(db, func(tx *gorm.DB) *gorm.DB {
		var out []RaggruppamentoModel
		return tx.Joins("JOIN gs_raggruppamento_alunno ra ON ra.raggruppamento_id = gs_raggruppamento.id").
			Where("ra.alunno_id = ?", 7).Find(&out)
	})
	if !strings.Contains(sql, `FROM "gs_raggruppamento"`) || !strings.Contains(sql, "ra.alunno_id = 7") {
		t.Fatalf("unexpected sql: %s", sql)
	}
}
