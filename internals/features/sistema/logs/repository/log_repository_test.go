package repository

import (
	"context"
	"testing"

	"giuaschool_backend/internals/features/sistema/logs/model"
	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtest"
)

func TestListLog(t *testing.T) {
	db, rec := dbtest.Capture(t)
	uid := uint(12)
	p := helper.NewParams(2, 10, "categoria", "asc", helper.AdminOpts)
	rows, meta, err := ListLog(context.Background(), db, Filtro{UtenteID: &uid, Tipo: model.LogModifica}, p)
	if err != nil {
		t.Fatalf("ListLog: %v", err)
	}
	if len(rows) != 0 || meta.Page != 2 || meta.PerPage != 10 || meta.Total != 0 {
		t.Fatalf("rows=%d meta=%+v", len(rows), meta)
	}
	if rec.Find(`SELECT count(*) FROM "gs_log"`, "utente_id = 12", "tipo = 'U'") == "" {
		t.Fatalf("count missing: %v", rec.Statements())
	}
	if rec.Find(`SELECT * FROM "gs_log"`, "ORDER BY categoria ASC,id DESC", "LIMIT 10 OFFSET 10") == "" {
		t.Fatalf("page query missing: %v", rec.Statements())
	}
}

func TestListLogUnknownSortFallsBack(t *testing.T) {
	db, rec := dbtest.Capture(t)
	p := helper.NewParams(1, 0, "password", "", helper.DefaultOpts)
	if _, _, err := ListLog(context.Background(), db, Filtro{}, p); err != nil {
		t.Fatalf("ListLog: %v", err)
	}
	if rec.Find("ORDER BY creato DESC,id DESC", "LIMIT 25") == "" {
		t.Fatalf("default order missing: %v", rec.Statements())
	}
}

func TestRegistraRejectsInvalid(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if err := Registra(context.Background(), db, &model.LogModel{Tipo: model.LogAccesso}); err == nil {
		t.Fatalf("invalid entry accepted")
	}
	if len(rec.Statements()) != 0 {
		t.Fatalf("invalid entry reached the db")
	}
}
