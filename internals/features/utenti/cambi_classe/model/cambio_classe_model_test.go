package model

import (
	"testing"
	"time"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers/dbtime"
)

func TestCambioClasseString(t *testing.T) {
	a := utenteModel.NuovoAlunno()
	a.Nome, a.Cognome = "Luca", "Verdi"
	nascita := dbtime.Data(2008, time.March, 4)
	a.DataNascita = &nascita

	c := CambioClasseModel{
		Alunno: a,
		Inizio: dbtime.Data(2024, time.September, 12),
		Fine:   dbtime.Data(2024, time.December, 20),
	}
	if got := c.String(); got != "Verdi Luca (04/03/2008) -> ALTRA SCUOLA" {
		t.Fatalf("String = %q", got)
	}
	c.Classe = &classeModel.ClasseModel{Anno: 4, Sezione: "A"}
	if got := c.String(); got != "Verdi Luca (04/03/2008) -> 4ª A" {
		t.Fatalf("String = %q", got)
	}
}

func TestCambioClasseValidate(t *testing.T) {
	var c CambioClasseModel
	if err := c.Validate(); err == nil {
		t.Fatalf("missing alunno accepted")
	}
	c.AlunnoID = 3
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
