package repository

import (
	"context"
	"testing"

	appModel "giuaschool_backend/internals/features/sistema/app/model"
	"giuaschool_backend/internals/features/sistema/notifiche/model"
	"giuaschool_backend/internals/helpers/dbtest"
)

func TestLimiteAttesa(t *testing.T) {
	cases := map[int]int{0: 25, 4: 25, 5: 10, 49: 10, 50: 5, 300: 5}
	for in, want := range cases {
		if got := LimiteAttesa(in); got != want {
			t.Fatalf("LimiteAttesa(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDaInviare(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if _, err := DaInviare(context.Background(), db, appModel.NotificaEmail); err != nil {
		t.Fatalf("DaInviare: %v", err)
	}
	if rec.Find(`FROM "gs_notifica_invio"`, "gs_notifica_invio.stato = 'P'", "ORDER BY gs_notifica_invio.modificato ASC") == "" {
		t.Fatalf("priority query missing: %v", rec.Statements())
	}
	if rec.Find(`FROM "gs_notifica_invio"`, "gs_notifica_invio.stato = 'A'", "LIMIT 25") == "" {
		t.Fatalf("waiting query missing: %v", rec.Statements())
	}
}

func TestDaInviareSoloCanaleRichiesto(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if _, err := DaInviare(context.Background(), db, appModel.NotificaEmail); err != nil {
		t.Fatalf("DaInviare: %v", err)
	}
	for _, stato := range []string{"'P'", "'A'"} {
		if rec.Find("JOIN gs_app ON gs_app.id = gs_notifica_invio.app_id AND gs_app.notifica = 'E'", "gs_notifica_invio.stato = "+stato) == "" {
			t.Fatalf("batch query for %s not restricted to email apps: %v", stato, rec.Statements())
		}
	}
}

func TestErrata(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if err := Errata(context.Background(), db, 9, "host non raggiungibile"); err != nil {
		t.Fatalf("Errata: %v", err)
	}
	if rec.Find(`UPDATE "gs_notifica_invio"`, `"stato"='E'`, "jsonb_build_object('errore', 'host non raggiungibile'::text)", `"id" = 9`) == "" {
		t.Fatalf("unexpected update: %v", rec.Statements())
	}
}

func TestInviata(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if err := Inviata(context.Background(), db, 9); err != nil {
		t.Fatalf("Inviata: %v", err)
	}
	if rec.Find(`"stato"='S'`, `"modificato"=`) == "" {
		t.Fatalf("unexpected update: %v", rec.Statements())
	}
}

func TestRegistraRejectsInvalid(t *testing.T) {
	db, rec := dbtest.Capture(t)
	if _, err := Registra(context.Background(), db, "", 1, model.AzioneAggiunta); err == nil {
		t.Fatalf("blank oggetto accepted")
	}
	if len(rec.Statements()) != 0 {
		t.Fatalf("invalid row reached the db: %v", rec.Statements())
	}
	if _, err := Registra(context.Background(), db, "Circolare", 3, model.AzioneAggiunta); err != nil {
		t.Fatalf("Registra: %v", err)
	}
	if rec.Find(`INSERT INTO "gs_notifica"`) == "" {
		t.Fatalf("insert missing: %v", rec.Statements())
	}
}
