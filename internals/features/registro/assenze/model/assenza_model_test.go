package model

import (
	"errors"
	"testing"
	"time"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtest"
	"giuaschool_backend/internals/helpers/dbtime"
)

func alunno() *utenteModel.AlunnoModel {
	a := utenteModel.NuovoAlunno()
	a.Nome, a.Cognome = "Giulia", "Serra"
	nascita := dbtime.Data(2009, time.May, 21)
	a.DataNascita = &nascita
	return a
}

func TestAssenza(t *testing.T) {
	a := AssenzaModel{Data: dbtime.Data(2024, time.October, 14), AlunnoID: 1, DocenteID: 2, Alunno: alunno()}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := a.String(); got != "14/10/2024: Serra Giulia (21/05/2009)" {
		t.Fatalf("String = %q", got)
	}
	if a.Giustificata() {
		t.Fatalf("new absence already justified")
	}
	g := dbtime.Data(2024, time.October, 15)
	a.Giustificato = &g
	if !a.Giustificata() {
		t.Fatalf("justified absence not reported")
	}
}

func TestEntrataUscitaValidate(t *testing.T) {
	e := EntrataModel{Data: dbtime.Data(2024, time.October, 14), Ora: dbtime.NewTod(8, 40), AlunnoID: 1, Alunno: alunno()}
	var verrs helper.ValidationErrors
	if err := e.Validate(); !errors.As(err, &verrs) || !verrs.Has("docente_id", "field.notblank") {
		t.Fatalf("missing docente: %v", err)
	}
	e.DocenteID = 3
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := e.String(); got != "14/10/2024 08:40 - Serra Giulia (21/05/2009)" {
		t.Fatalf("String = %q", got)
	}

	u := UscitaModel{Data: dbtime.Data(2024, time.October, 14), Ora: dbtime.NewTod(12, 10), AlunnoID: 1}
	u.DocenteID = 3
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestPresenza(t *testing.T) {
	db := dbtest.DryRun(t)
	p := &PresenzaModel{Data: dbtime.Data(2025, time.March, 3), Descrizione: "Stage aziendale", AlunnoID: 1}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Tipo != PresenzaScuola {
		t.Fatalf("default tipo = %q", p.Tipo)
	}
	if !p.GiornataIntera() {
		t.Fatalf("presence without hours should cover the day")
	}

	inizio, fine := dbtime.NewTod(11, 0), dbtime.NewTod(9, 0)
	p.OraInizio, p.OraFine = &inizio, &fine
	var verrs helper.ValidationErrors
	if err := p.Validate(); !errors.As(err, &verrs) || !verrs.Has("ora_fine", "field.time") {
		t.Fatalf("reversed range: %v", err)
	}
	p.OraInizio, p.OraFine = &fine, &inizio
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	p.Tipo = "Q"
	if err := p.Validate(); err == nil {
		t.Fatalf("tipo Q accepted")
	}
}

func TestDerogaAssenza(t *testing.T) {
	d := DerogaAssenzaModel{Data: dbtime.Data(2025, time.February, 2), AlunnoID: 1}
	if err := d.Validate(); err == nil {
		t.Fatalf("missing motivazione accepted")
	}
	d.Motivazione = "Terapia programmata"
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
