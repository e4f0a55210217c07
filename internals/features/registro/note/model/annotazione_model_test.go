package model

import (
	"testing"
	"time"

	"giuaschool_backend/internals/helpers/dbtime"
)

func TestAnnotazione(t *testing.T) {
	a := AnnotazioneModel{Data: dbtime.Data(2025, time.January, 9), Testo: "Uscita anticipata alle 12:00", ClasseID: 1, DocenteID: 1}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := a.String(); got != "09/01/2025: Uscita anticipata alle 12:00" {
		t.Fatalf("String = %q", got)
	}
	a.Testo = ""
	if err := a.Validate(); err == nil {
		t.Fatalf("empty text accepted")
	}
}
