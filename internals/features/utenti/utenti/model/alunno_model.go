package model

import (
	"time"

	"gorm.io/gorm"

	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	"giuaschool_backend/internals/constants"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// FotoMaxSize is the maximum side, in pixels, of the square student photo.
const FotoMaxSize = 100

type Bes string

const (
	BesNessuno  Bes = "N"
	BesDisabile Bes = "H"
	BesDSA      Bes = "D"
	BesAltro    Bes = "B"
)

type Religione string

const (
	ReligioneSi          Religione = "S"
	ReligioneUscita      Religione = "U"
	ReligioneIndividuale Religione = "I"
	ReligioneConDocente  Religione = "D"
	ReligioneAlternativa Religione = "A"
)

// AlunnoModel is a student. ClasseID is nil when the student is not enrolled.
type AlunnoModel struct {
	UtenteModel

	Bes                  Bes       `gorm:"type:varchar(1);default:'N';column:bes" json:"bes" validate:"oneof=N H D B"`
	NoteBes              *string   `gorm:"type:text;column:note_bes" json:"note_bes,omitempty"`
	AutorizzaEntrata     *string   `gorm:"type:varchar(2048);column:autorizza_entrata" json:"autorizza_entrata,omitempty" validate:"omitempty,max=2048"`
	AutorizzaUscita      *string   `gorm:"type:varchar(2048);column:autorizza_uscita" json:"autorizza_uscita,omitempty" validate:"omitempty,max=2048"`
	Note                 *string   `gorm:"type:text;column:note" json:"note,omitempty"`
	FrequenzaEstero      bool      `gorm:"not null;default:false;column:frequenza_estero" json:"frequenza_estero"`
	Religione            Religione `gorm:"type:varchar(1);default:'S';column:religione" json:"religione" validate:"oneof=S U I D A"`
	Credito3             *int16    `gorm:"type:smallint;column:credito3" json:"credito3,omitempty"`
	Credito4             *int16    `gorm:"type:smallint;column:credito4" json:"credito4,omitempty"`
	GiustificaOnline     bool      `gorm:"not null;column:giustifica_online" json:"giustifica_online"`
	RichiestaCertificato bool      `gorm:"not null;default:false;column:richiesta_certificato" json:"richiesta_certificato"`
	Foto                 *string   `gorm:"type:varchar(255);column:foto" json:"foto,omitempty" validate:"omitempty,max=255"`

	ClasseID *uint                    `gorm:"index;column:classe_id" json:"classe_id,omitempty"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty" validate:"-"`
}

// NuovoAlunno returns a student with the same defaults a new enrolment gets.
func NuovoAlunno() *AlunnoModel {
	a := &AlunnoModel{
		Bes:              BesNessuno,
		Religione:        ReligioneSi,
		GiustificaOnline: true,
	}
	a.Ruolo = RuoloAlunno
	return a
}

func (a *AlunnoModel) BeforeCreate(tx *gorm.DB) error {
	a.defaults()
	return a.UtenteModel.BeforeCreate(tx)
}

func (a *AlunnoModel) defaults() {
	if a.Ruolo == "" {
		a.Ruolo = RuoloAlunno
	}
	if a.Bes == "" {
		a.Bes = BesNessuno
	}
	if a.Religione == "" {
		a.Religione = ReligioneSi
	}
}

func (a *AlunnoModel) Ruoli() []string {
	return []string{constants.RoleAlunno, constants.RoleUtente}
}

func (a *AlunnoModel) CodiceRuolo() string { return constants.CodiceAlunno }

func (a *AlunnoModel) CodiceFunzioni() []string {
	lista := funzioniBase(a.Rappresentante)
	if a.Maggiorenne(dbtime.Today()) {
		lista = append(lista, constants.FunzioneMaggiorenne)
	}
	return conNessuna(lista)
}

// Maggiorenne reports whether the student is at least 18 on the given day.
func (a *AlunnoModel) Maggiorenne(at time.Time) bool {
	if a.DataNascita == nil {
		return false
	}
	return Eta(time.Time(*a.DataNascita), at) >= 18
}

// Eta is the age in whole years at the given day.
func Eta(nascita, at time.Time) int {
	y1, m1, d1 := nascita.Date()
	y2, m2, d2 := at.Date()
	anni := y2 - y1
	if m2 < m1 || (m2 == m1 && d2 < d1) {
		anni--
	}
	return anni
}

func (a *AlunnoModel) String() string {
	return a.Cognome + " " + a.Nome + " (" + dbtime.FormatDataPtr(a.DataNascita) + ")"
}

func (a *AlunnoModel) Validate() error {
	a.defaults()
	a.SetDefaultValues()
	return helper.Validate(a)
}
