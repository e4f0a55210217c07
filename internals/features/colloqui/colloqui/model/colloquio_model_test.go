package model

import (
	"errors"
	"testing"
	"time"

	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

func colloquio() *ColloquioModel {
	c := NuovoColloquio()
	c.DocenteID = 1
	c.Data = dbtime.Data(2024, time.November, 12)
	c.Inizio, c.Fine = dbtime.NewTod(10, 0), dbtime.NewTod(11, 0)
	return c
}

func TestColloquioValidate(t *testing.T) {
	c := colloquio()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c.Fine = dbtime.NewTod(9, 0)
	var verrs helper.ValidationErrors
	if err := c.Validate(); !errors.As(err, &verrs) || !verrs.Has("fine", "field.time") {
		t.Fatalf("reversed slot: %v", err)
	}
	c.Fine = dbtime.NewTod(11, 0)
	c.Tipo = "X"
	if err := c.Validate(); !errors.As(err, &verrs) || !verrs.Has("tipo", "field.choice") {
		t.Fatalf("tipo X: %v", err)
	}
}

func TestAppuntamenti(t *testing.T) {
	c := colloquio()
	got := c.Appuntamenti()
	if len(got) != 6 || got[0].String() != "10:00" || got[5].String() != "10:50" {
		t.Fatalf("Appuntamenti = %v", got)
	}
	c.Durata = 15
	if got := c.Appuntamenti(); len(got) != 4 {
		t.Fatalf("15-minute slots = %d", len(got))
	}
	if c.String() != "12/11/2024 10:00-11:00 (6x15')" {
		t.Fatalf("String = %q", c.String())
	}
}

func TestRichiestaColloquio(t *testing.T) {
	r := RichiestaColloquioModel{Appuntamento: dbtime.NewTod(10, 20), ColloquioID: 1, AlunnoID: 2, GenitoreID: 3}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !r.Attiva() {
		t.Fatalf("pending booking should be active")
	}
	r.Stato = RichiestaNegata
	if r.Attiva() {
		t.Fatalf("refused booking still active")
	}
	r.Colloquio = colloquio()
	if r.String() != "12/11/2024 10:20 [N]" {
		t.Fatalf("String = %q", r.String())
	}
}
