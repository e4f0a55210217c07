package model

import "testing"

func TestModuloFormativo(t *testing.T) {
	m := ModuloFormativoModel{Nome: "Orientamento classi terze", NomeBreve: "ORIENT3", Tipo: ModuloOrientamento, Classi: []int{3, 4}}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid module rejected: %v", err)
	}
	if !m.PerAnno(3) || m.PerAnno(1) {
		t.Fatalf("PerAnno wrong for %v", m.Classi)
	}
	if m.String() != "ORIENT3" {
		t.Fatalf("String = %q", m.String())
	}

	m.Classi = []int{6}
	if err := m.Validate(); err == nil {
		t.Fatalf("class year 6 accepted")
	}
	m.Classi = []int{1}
	m.Tipo = "X"
	if err := m.Validate(); err == nil {
		t.Fatalf("tipo X accepted")
	}
}
