package model

import (
	"errors"
	"fmt"
	"strings"

	"giuaschool_backend/internals/constants"
)

// Ruolo is the discriminator stored in gs_utente.ruolo.
type Ruolo string

const (
	RuoloUtente         Ruolo = "UTE"
	RuoloAmministratore Ruolo = "AMM"
	RuoloAta            Ruolo = "ATA"
	RuoloDocente        Ruolo = "DOC"
	RuoloStaff          Ruolo = "STA"
	RuoloPreside        Ruolo = "PRE"
	RuoloAlunno         Ruolo = "ALU"
	RuoloGenitore       Ruolo = "GEN"
)

var ErrRuoloSconosciuto = errors.New("ruolo sconosciuto")

var TuttiRuoli = []Ruolo{
	RuoloUtente, RuoloAmministratore, RuoloAta, RuoloDocente,
	RuoloStaff, RuoloPreside, RuoloAlunno, RuoloGenitore,
}

// Famiglia returns the role itself plus every role that specialises it:
// querying docenti must also return staff and preside rows.
func (r Ruolo) Famiglia() []Ruolo {
	switch r {
	case RuoloUtente:
		return TuttiRuoli
	case RuoloDocente:
		return []Ruolo{RuoloDocente, RuoloStaff, RuoloPreside}
	case RuoloStaff:
		return []Ruolo{RuoloStaff, RuoloPreside}
	default:
		return []Ruolo{r}
	}
}

func (r Ruolo) Valido() bool {
	for _, x := range TuttiRuoli {
		if x == r {
			return true
		}
	}
	return false
}

// Profilo is implemented by every concrete role. The concrete type is chosen
// from the discriminator, see NuovoProfilo.
type Profilo interface {
	Utente() *UtenteModel
	Ruoli() []string
	CodiceRuolo() string
	CodiceFunzioni() []string
	String() string
}

// NuovoProfilo returns an empty profile of the concrete type for r.
func NuovoProfilo(r Ruolo) (Profilo, error) {
	switch r {
	case RuoloUtente:
		return &UtenteModel{Ruolo: r}, nil
	case RuoloAmministratore:
		return &AmministratoreModel{UtenteModel: UtenteModel{Ruolo: r}}, nil
	case RuoloAta:
		return &AtaModel{UtenteModel: UtenteModel{Ruolo: r}}, nil
	case RuoloDocente:
		return &DocenteModel{UtenteModel: UtenteModel{Ruolo: r}}, nil
	case RuoloStaff:
		p := &StaffModel{}
		p.Ruolo = r
		return p, nil
	case RuoloPreside:
		p := &PresideModel{}
		p.Ruolo = r
		return p, nil
	case RuoloAlunno:
		return &AlunnoModel{UtenteModel: UtenteModel{Ruolo: r}}, nil
	case RuoloGenitore:
		return &GenitoreModel{UtenteModel: UtenteModel{Ruolo: r}}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrRuoloSconosciuto, string(r))
}

// ControllaRuolo reports whether the profile's role code appears in lista
// (e.g. "DSP"). An empty list admits nobody.
func ControllaRuolo(p Profilo, lista string) bool {
	if lista == "" {
		return false
	}
	return strings.Contains(lista, p.CodiceRuolo())
}

// ControllaRuoloFunzione checks a comma list of role+function pairs, e.g. "DB,TE".
func ControllaRuoloFunzione(p Profilo, lista string) bool {
	if lista == "" {
		return false
	}
	ruolo := p.CodiceRuolo()
	funzioni := p.CodiceFunzioni()
	for _, codice := range strings.Split(lista, ",") {
		codice = strings.TrimSpace(codice)
		if len(codice) < 2 || codice[:1] != ruolo {
			continue
		}
		for _, f := range funzioni {
			if f == codice[1:2] {
				return true
			}
		}
	}
	return false
}

// funzioniBase starts every function list from the elected representative codes.
func funzioniBase(rappresentante []string) []string {
	out := make([]string, 0, len(rappresentante)+2)
	for _, r := range rappresentante {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func conNessuna(lista []string) []string {
	return append(lista, constants.FunzioneNessuna)
}
