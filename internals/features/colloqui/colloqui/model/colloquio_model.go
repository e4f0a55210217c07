package model

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type TipoColloquio string

const (
	ColloquioDistanza TipoColloquio = "D"
	ColloquioPresenza TipoColloquio = "P"
)

type StatoRichiesta string

const (
	RichiestaInAttesa  StatoRichiesta = "R"
	RichiestaAccettata StatoRichiesta = "A"
	RichiestaAnnullata StatoRichiesta = "C"
	RichiestaNegata    StatoRichiesta = "N"
)

func init() {
	helper.RegisterStructValidation(validaOrario, ColloquioModel{})
}

func validaOrario(sl validator.StructLevel) {
	c := sl.Current().Interface().(ColloquioModel)
	if !c.Inizio.IsBefore(c.Fine) {
		sl.ReportError(c.Fine, "fine", "Fine", "timerange", "")
	}
}

// ColloquioModel is a slot of parent-teacher meetings: Numero appointments of
// Durata minutes each, between Inizio and Fine.
type ColloquioModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	DocenteID uint                      `gorm:"not null;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`

	Data      datatypes.Date `gorm:"type:date;not null;index;column:data" json:"data"`
	Inizio    dbtime.Tod     `gorm:"type:time;not null;column:inizio" json:"inizio"`
	Fine      dbtime.Tod     `gorm:"type:time;not null;column:fine" json:"fine"`
	Tipo      TipoColloquio  `gorm:"type:varchar(1);not null;default:'P';column:tipo" json:"tipo" validate:"oneof=D P"`
	Luogo     *string        `gorm:"type:varchar(2048);column:luogo" json:"luogo,omitempty" validate:"omitempty,max=2048"`
	Durata    int            `gorm:"not null;default:10;column:durata" json:"durata" validate:"gt=0"`
	Numero    int            `gorm:"not null;default:6;column:numero" json:"numero" validate:"gt=0"`
	Abilitato bool           `gorm:"not null;column:abilitato" json:"abilitato"`
}

// NuovoColloquio returns an enabled in-person slot with the usual six
// ten-minute appointments.
func NuovoColloquio() *ColloquioModel {
	return &ColloquioModel{Tipo: ColloquioPresenza, Durata: 10, Numero: 6, Abilitato: true}
}

func (ColloquioModel) TableName() string { return "gs_colloquio" }

func (c ColloquioModel) String() string {
	return dbtime.FormatData(c.Data) + " " + c.Inizio.String() + "-" + c.Fine.String() +
		" (" + strconv.Itoa(c.Numero) + "x" + strconv.Itoa(c.Durata) + "')"
}

// Appuntamenti lists the start times of the appointments that fit in the slot.
func (c ColloquioModel) Appuntamenti() []dbtime.Tod {
	var out []dbtime.Tod
	passo := time.Duration(c.Durata) * time.Minute
	if passo <= 0 {
		return out
	}
	t := c.Inizio.Time
	for i := 0; i < c.Numero; i++ {
		if t.Add(passo).After(c.Fine.Time) {
			break
		}
		out = append(out, dbtime.From(t))
		t = t.Add(passo)
	}
	return out
}

func (c *ColloquioModel) Validate() error { return helper.Validate(c) }

// RichiestaColloquioModel is a parent's booking of an appointment.
type RichiestaColloquioModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Appuntamento dbtime.Tod `gorm:"type:time;not null;column:appuntamento" json:"appuntamento"`

	ColloquioID uint            `gorm:"not null;index;column:colloquio_id" json:"colloquio_id" validate:"required"`
	Colloquio   *ColloquioModel `gorm:"foreignKey:ColloquioID;references:ID" json:"colloquio,omitempty" validate:"-"`

	AlunnoID uint                     `gorm:"not null;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	GenitoreID uint                       `gorm:"not null;index;column:genitore_id" json:"genitore_id" validate:"required"`
	Genitore   *utenteModel.GenitoreModel `gorm:"foreignKey:GenitoreID;references:ID" json:"genitore,omitempty" validate:"-"`

	GenitoreAnnullaID *uint                      `gorm:"index;column:genitore_annulla_id" json:"genitore_annulla_id,omitempty"`
	GenitoreAnnulla   *utenteModel.GenitoreModel `gorm:"foreignKey:GenitoreAnnullaID;references:ID" json:"genitore_annulla,omitempty" validate:"-"`

	Stato     StatoRichiesta `gorm:"type:varchar(1);not null;default:'R';column:stato" json:"stato" validate:"oneof=R A C N"`
	Messaggio *string        `gorm:"type:text;column:messaggio" json:"messaggio,omitempty"`
}

func (RichiestaColloquioModel) TableName() string { return "gs_richiesta_colloquio" }

func (r RichiestaColloquioModel) String() string {
	s := r.Appuntamento.String()
	if r.Colloquio != nil {
		s = dbtime.FormatData(r.Colloquio.Data) + " " + s
	}
	return s + " [" + string(r.Stato) + "]"
}

// Attiva reports whether the booking still holds the appointment.
func (r RichiestaColloquioModel) Attiva() bool {
	return r.Stato == RichiestaInAttesa || r.Stato == RichiestaAccettata
}

func (r *RichiestaColloquioModel) Validate() error {
	if r.Stato == "" {
		r.Stato = RichiestaInAttesa
	}
	return helper.Validate(r)
}
