package model

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	helper "giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtest"
	"giuaschool_backend/internals/helpers/dbtime"
)

func TestNuovaComunicazione(t *testing.T) {
	cases := map[Categoria]string{
		CategoriaDocumento: "*model.DocumentoModel",
		CategoriaCircolare: "*model.CircolareModel",
		CategoriaAvviso:    "*model.AvvisoModel",
	}
	for cat, typ := range cases {
		c, err := NuovaComunicazione(cat)
		if err != nil {
			t.Fatalf("NuovaComunicazione(%s): %v", cat, err)
		}
		if got := typeName(c); got != typ {
			t.Fatalf("NuovaComunicazione(%s) = %s", cat, got)
		}
		if c.Base().Categoria != cat || c.Base().Stato != StatoPubblicato {
			t.Fatalf("defaults not applied: %+v", c.Base())
		}
	}
	if _, err := NuovaComunicazione("X"); !errors.Is(err, ErrCategoriaSconosciuta) {
		t.Fatalf("unknown category: %v", err)
	}
}

func typeName(c Comunicazione) string {
	switch c.(type) {
	case *DocumentoModel:
		return "*model.DocumentoModel"
	case *CircolareModel:
		return "*model.CircolareModel"
	case *AvvisoModel:
		return "*model.AvvisoModel"
	}
	return "?"
}

func TestTipoPerCategoria(t *testing.T) {
	a := NuovoAvviso()
	a.Titolo, a.Testo, a.AutoreID = "Uscita anticipata", "La classe uscirà alle {ORA}", 1
	if err := a.Validate(); err != nil {
		t.Fatalf("avviso: %v", err)
	}
	a.Tipo = "G"
	var verrs helper.ValidationErrors
	if err := a.Validate(); !errors.As(err, &verrs) || !verrs.Has("tipo", "field.choice") {
		t.Fatalf("avviso with tipo G: %v", err)
	}

	d := NuovoDocumento()
	d.Titolo, d.AutoreID, d.Tipo = "PEI", 1, DocumentoPEI
	if err := d.Validate(); err != nil {
		t.Fatalf("documento: %v", err)
	}
	if !d.PerAlunno() {
		t.Fatalf("PEI should concern a single student")
	}
	d.Tipo = AvvisoVerifica
	if err := d.Validate(); !errors.As(err, &verrs) || !verrs.Has("tipo", "field.choice") {
		t.Fatalf("documento with tipo V: %v", err)
	}

	n := 12
	c := NuovaCircolare()
	c.Titolo, c.AutoreID, c.Numero = "Sciopero", 1, &n
	if err := c.Validate(); err != nil {
		t.Fatalf("circolare: %v", err)
	}
	c.Tipo = DocumentoPEI
	if err := c.Validate(); !errors.As(err, &verrs) || !verrs.Has("tipo", "field.choice") {
		t.Fatalf("circolare with tipo H: %v", err)
	}
}

func TestFiltriDestinatari(t *testing.T) {
	c := NuovaCircolare()
	n := 1
	c.Titolo, c.AutoreID, c.Numero = "Assemblea", 1, &n
	c.Docenti = FiltroMateria
	c.FiltroDocenti = pq.Int64Array{3, 4}
	c.Speciali = pq.StringArray{"D", "S"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c.Genitori = FiltroMateria
	var verrs helper.ValidationErrors
	if err := c.Validate(); !errors.As(err, &verrs) || !verrs.Has("genitori", "field.choice") {
		t.Fatalf("genitori M: %v", err)
	}
	c.Genitori = FiltroNessuno
	c.Ata = pq.StringArray{"X"}
	if err := c.Validate(); err == nil {
		t.Fatalf("ata X accepted")
	}
}

func TestCircolareString(t *testing.T) {
	n := 157
	c := NuovaCircolare()
	c.Data, c.Numero = dbtime.Data(2025, time.February, 3), &n
	if got := c.String(); got != "Circolare del 03/02/2025 n. 157" {
		t.Fatalf("String = %q", got)
	}
}

func TestAnnoScolastico(t *testing.T) {
	if AnnoScolastico(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)) != 2024 {
		t.Fatalf("september belongs to the new year")
	}
	if AnnoScolastico(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)) != 2024 {
		t.Fatalf("june belongs to the previous year")
	}
}

func TestBeforeCreateImpostaCategoria(t *testing.T) {
	db := dbtest.DryRun(t)
	a := &AvvisoModel{}
	a.Titolo, a.Testo, a.AutoreID, a.Tipo = "Verifica", "Verifica di storia", 1, AvvisoVerifica
	a.Data = dbtime.Data(2024, time.November, 20)
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Categoria != CategoriaAvviso || a.Anno != 2024 || a.Sostituzioni == nil {
		t.Fatalf("hooks not applied: %+v", a.ComunicazioneModel)
	}
	if !a.Creato.Equal(a.Modificato) {
		t.Fatalf("creato != modificato at insert")
	}
}

func TestSedi(t *testing.T) {
	c := NuovaCircolare()
	c.AddSede(&sedeModel.SedeModel{ID: 1})
	c.AddSede(&sedeModel.SedeModel{ID: 2})
	c.AddSede(&sedeModel.SedeModel{ID: 1})
	if len(c.Sedi) != 2 {
		t.Fatalf("sedi = %d", len(c.Sedi))
	}
	c.RemoveSede(1)
	if len(c.Sedi) != 1 || c.Sedi[0].ID != 2 {
		t.Fatalf("RemoveSede left %v", c.Sedi)
	}
}
