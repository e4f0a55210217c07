package repository

import (
	"context"
	"testing"
	"time"

	"giuaschool_backend/internals/features/colloqui/colloqui/model"
	"giuaschool_backend/internals/helpers/dbtest"
	"giuaschool_backend/internals/helpers/dbtime"
)

func TestAppuntamentiLiberiSenzaRichieste(t *testing.T) {
	db, rec := dbtest.Capture(t)
	c := model.NuovoColloquio()
	c.ID = 4
	c.Inizio, c.Fine = dbtime.NewTod(15, 0), dbtime.NewTod(16, 0)

	liberi, err := AppuntamentiLiberi(context.Background(), db, c)
	if err != nil {
		t.Fatalf("AppuntamentiLiberi: %v", err)
	}
	if len(liberi) != 6 {
		t.Fatalf("free appointments = %d", len(liberi))
	}
	if rec.Find(`FROM "gs_richiesta_colloquio"`, "colloquio_id = 4 AND stato IN ('R','A')", "ORDER BY appuntamento ASC") == "" {
		t.Fatalf("unexpected query: %v", rec.Statements())
	}
}

func TestColloquiDocente(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if _, err := ColloquiDocente(context.Background(), db, 2, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("ColloquiDocente: %v", err)
	}
	if rec.Find("docente_id = 2 AND abilitato = true AND data >=", "ORDER BY data ASC, inizio ASC") == "" {
		t.Fatalf("unexpected query: %v", rec.Statements())
	}
}

func TestAnnulla(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if err := Annulla(context.Background(), db, 8, 3); err != nil {
		t.Fatalf("Annulla: %v", err)
	}
	if rec.Find(`UPDATE "gs_richiesta_colloquio"`, `"stato"='C'`, `"genitore_annulla_id"=3`) == "" {
		t.Fatalf("unexpected update: %v", rec.Statements())
	}
}
