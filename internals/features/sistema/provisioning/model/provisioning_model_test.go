package model

import (
	"errors"
	"testing"

	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtest"
)

func TestProvisioningDefaults(t *testing.T) {
	db := dbtest.DryRun(t)
	p := &ProvisioningModel{UtenteID: 5, Funzione: "AddUser"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Stato != StatoAttesa {
		t.Fatalf("stato = %s", p.Stato)
	}
	if p.String() != "AddUser:A" {
		t.Fatalf("String = %q", p.String())
	}
}

func TestProvisioningValidate(t *testing.T) {
	p := ProvisioningModel{UtenteID: 5, Funzione: " ", Stato: StatoAttesa}
	var verrs helper.ValidationErrors
	if err := p.Validate(); !errors.As(err, &verrs) || !verrs.Has("funzione", "field.notblank") {
		t.Fatalf("blank funzione: %v", err)
	}
	p.Funzione = "AddUser"
	p.Stato = "X"
	if err := p.Validate(); !errors.As(err, &verrs) || !verrs.Has("stato", "field.choice") {
		t.Fatalf("stato X: %v", err)
	}
}
