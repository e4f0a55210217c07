package model

import (
	"errors"
	"testing"

	"github.com/lib/pq"

	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtest"
)

func TestAppBeforeCreate(t *testing.T) {
	db := dbtest.DryRun(t)
	a := &AppModel{Nome: "App registro"}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(a.Token) != 32 {
		t.Fatalf("token = %q", a.Token)
	}
	if a.Notifica != NotificaNessuna || len(a.Abilitati) != 1 || a.Abilitati[0] != AbilitatiNessuno {
		t.Fatalf("defaults = %s %v", a.Notifica, a.Abilitati)
	}
	if NuovoToken() == a.Token {
		t.Fatalf("tokens repeat")
	}
}

func TestAppAbilitataPer(t *testing.T) {
	a := AppModel{Nome: "Bot", Token: NuovoToken(), Attiva: true, Abilitati: pq.StringArray{"D", "T"}}
	if !a.AbilitataPer(AbilitatiDocenti) || a.AbilitataPer(AbilitatiGenitori) {
		t.Fatalf("AbilitataPer wrong for %v", a.Abilitati)
	}
	a.Attiva = false
	if a.AbilitataPer(AbilitatiDocenti) {
		t.Fatalf("inactive app enabled")
	}
}

func TestAppValidate(t *testing.T) {
	a := AppModel{Nome: "Bot", Token: NuovoToken(), Notifica: NotificaEmail, Abilitati: pq.StringArray{"A"}}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	a.Abilitati = nil
	var verrs helper.ValidationErrors
	if err := a.Validate(); !errors.As(err, &verrs) || !verrs.Has("abilitati", "field.greaterthanorequal") {
		t.Fatalf("empty abilitati: %v", err)
	}
	a.Abilitati = pq.StringArray{"Z"}
	if err := a.Validate(); err == nil {
		t.Fatalf("abilitati Z accepted")
	}
}
