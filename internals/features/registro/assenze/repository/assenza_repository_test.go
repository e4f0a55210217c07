package repository

import (
	"context"
	"testing"
	"time"

	"giuaschool_backend/internals/helpers/dbtest"
)

func TestGiorniAttivitaQueries(t *testing.T) {
	db, rec := dbtest.Capture(t)
	da := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	a := time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC)

	days, err := GiorniAttivita(context.Background(), db, 12, da, a)
	if err != nil {
		t.Fatalf("GiorniAttivita: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("dry run returned days: %v", days)
	}

	if rec.Find(`SELECT DISTINCT "data" FROM "gs_lezione"`, "classe_id = 12") == "" {
		t.Fatalf("lesson query missing: %v", rec.Statements())
	}
	for _, table := range []string{`"gs_assenza"`, `"gs_entrata"`, `"gs_uscita"`} {
		if rec.Find("FROM "+table, "alunno_id IN (SELECT id FROM", "classe_id = 12") == "" {
			t.Fatalf("query on %s missing: %v", table, rec.Statements())
		}
	}
}

func TestGiustificaTouchesModificato(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if err := Giustifica(context.Background(), db, 5, 9, "motivi di salute"); err != nil {
		t.Fatalf("Giustifica: %v", err)
	}
	if rec.Find(`UPDATE "gs_assenza"`, `"giustificato"=`, `"modificato"=`, `"utente_giustifica_id"=9`, `WHERE "id" = 5`) == "" {
		t.Fatalf("unexpected update: %v", rec.Statements())
	}
}

func TestAssenzeDaGiustificare(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if _, err := AssenzeDaGiustificare(context.Background(), db, 4); err != nil {
		t.Fatalf("AssenzeDaGiustificare: %v", err)
	}
	if rec.Find("alunno_id = 4 AND giustificato IS NULL", "ORDER BY data ASC") == "" {
		t.Fatalf("unexpected query: %v", rec.Statements())
	}
}
