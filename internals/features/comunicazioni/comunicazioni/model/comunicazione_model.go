package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	sedeModel "giuaschool_backend/internals/features/scuola/sedi/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type Categoria string

const (
	CategoriaDocumento Categoria = "D"
	CategoriaCircolare Categoria = "C"
	CategoriaAvviso    Categoria = "A"
)

type Stato string

const (
	StatoPubblicato Stato = "P"
	StatoBozza      Stato = "B"
	StatoArchiviato Stato = "A"
)

// Recipient filters: N nobody, T everybody, C by class, M by subject, U by user.
const (
	FiltroNessuno = "N"
	FiltroTutti   = "T"
	FiltroClasse  = "C"
	FiltroMateria = "M"
	FiltroUtente  = "U"
)

var ErrCategoriaSconosciuta = errors.New("categoria di comunicazione sconosciuta")

// tipiValidi lists the accepted tipo codes for each category.
var tipiValidi = map[Categoria][]string{
	CategoriaDocumento: {"L", "P", "R", "M", "H", "D", "B", "C", "G"},
	CategoriaAvviso:    {"U", "E", "V", "P", "A", "I", "C", "D", "O"},
	CategoriaCircolare: {"G"},
}

func init() {
	helper.RegisterStructValidation(validaTipo, ComunicazioneModel{})
}

func validaTipo(sl validator.StructLevel) {
	c := sl.Current().Interface().(ComunicazioneModel)
	validi, ok := tipiValidi[c.Categoria]
	if !ok {
		validi = tipiValidi[CategoriaCircolare]
	}
	for _, t := range validi {
		if c.Tipo == t {
			return
		}
	}
	sl.ReportError(c.Tipo, "tipo", "Tipo", "choice", "")
}

// ComunicazioneModel holds what documents, circulars and notices share. All
// three live in gs_comunicazione, discriminated by categoria.
type ComunicazioneModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Categoria Categoria      `gorm:"type:varchar(1);not null;index;column:categoria" json:"categoria" validate:"oneof=D C A"`
	Tipo      string         `gorm:"type:varchar(1);not null;default:'G';column:tipo" json:"tipo"`
	Cifrato   *string        `gorm:"type:varchar(255);column:cifrato" json:"-" validate:"omitempty,max=255"`
	Firma     bool           `gorm:"not null;default:false;column:firma" json:"firma"`
	Stato     Stato          `gorm:"type:varchar(1);not null;default:'P';column:stato" json:"stato" validate:"oneof=P B A"`
	Titolo    string         `gorm:"type:varchar(255);column:titolo" json:"titolo" validate:"notblank,max=255"`
	Data      datatypes.Date `gorm:"type:date;not null;column:data" json:"data"`
	Anno      int            `gorm:"not null;default:0;index;column:anno" json:"anno"`

	AutoreID uint                      `gorm:"not null;index;column:autore_id" json:"autore_id" validate:"required"`
	Autore   *utenteModel.DocenteModel `gorm:"foreignKey:AutoreID;references:ID" json:"autore,omitempty" validate:"-"`

	Allegati []AllegatoModel        `gorm:"foreignKey:ComunicazioneID;references:ID" json:"allegati,omitempty" validate:"-"`
	Sedi     []*sedeModel.SedeModel `gorm:"many2many:gs_comunicazione_sede;joinForeignKey:ComunicazioneID;joinReferences:SedeID" json:"sedi,omitempty" validate:"-"`

	Speciali                     pq.StringArray `gorm:"type:text[];column:speciali" json:"speciali" validate:"dive,oneof=D S R I P"`
	Ata                          pq.StringArray `gorm:"type:text[];column:ata" json:"ata" validate:"dive,oneof=A T C"`
	Coordinatori                 string         `gorm:"type:varchar(1);not null;default:'N';column:coordinatori" json:"coordinatori" validate:"oneof=N T C"`
	FiltroCoordinatori           pq.Int64Array  `gorm:"type:integer[];column:filtro_coordinatori" json:"filtro_coordinatori"`
	Docenti                      string         `gorm:"type:varchar(1);not null;default:'N';column:docenti" json:"docenti" validate:"oneof=N T C M U"`
	FiltroDocenti                pq.Int64Array  `gorm:"type:integer[];column:filtro_docenti" json:"filtro_docenti"`
	Genitori                     string         `gorm:"type:varchar(1);not null;default:'N';column:genitori" json:"genitori" validate:"oneof=N T C U"`
	FiltroGenitori               pq.Int64Array  `gorm:"type:integer[];column:filtro_genitori" json:"filtro_genitori"`
	RappresentantiGenitori       string         `gorm:"type:varchar(1);not null;default:'N';column:rappresentanti_genitori" json:"rappresentanti_genitori" validate:"oneof=N T C"`
	FiltroRappresentantiGenitori pq.Int64Array  `gorm:"type:integer[];column:filtro_rappresentanti_genitori" json:"filtro_rappresentanti_genitori"`
	Alunni                       string         `gorm:"type:varchar(1);not null;default:'N';column:alunni" json:"alunni" validate:"oneof=N T C U"`
	FiltroAlunni                 pq.Int64Array  `gorm:"type:integer[];column:filtro_alunni" json:"filtro_alunni"`
	RappresentantiAlunni         string         `gorm:"type:varchar(1);not null;default:'N';column:rappresentanti_alunni" json:"rappresentanti_alunni" validate:"oneof=N T C"`
	FiltroRappresentantiAlunni   pq.Int64Array  `gorm:"type:integer[];column:filtro_rappresentanti_alunni" json:"filtro_rappresentanti_alunni"`
	Esterni                      pq.StringArray `gorm:"type:text[];column:esterni" json:"esterni"`
}

func (ComunicazioneModel) TableName() string { return "gs_comunicazione" }

// Comunicazione is implemented by the concrete categories.
type Comunicazione interface {
	Base() *ComunicazioneModel
	String() string
	Validate() error
}

// NuovaComunicazione returns an empty value of the concrete type for cat.
func NuovaComunicazione(cat Categoria) (Comunicazione, error) {
	switch cat {
	case CategoriaDocumento:
		return NuovoDocumento(), nil
	case CategoriaCircolare:
		return NuovaCircolare(), nil
	case CategoriaAvviso:
		return NuovoAvviso(), nil
	default:
		return nil, ErrCategoriaSconosciuta
	}
}

func (c *ComunicazioneModel) Base() *ComunicazioneModel { return c }

// AnnoScolastico returns the starting year of the school year d belongs to.
// The year starts in September.
func AnnoScolastico(d time.Time) int {
	if d.Month() >= time.September {
		return d.Year()
	}
	return d.Year() - 1
}

func (c *ComunicazioneModel) defaults(cat Categoria) {
	c.Categoria = cat
	if c.Stato == "" {
		c.Stato = StatoPubblicato
	}
	if c.Tipo == "" {
		c.Tipo = "G"
	}
	for _, f := range []*string{&c.Coordinatori, &c.Docenti, &c.Genitori, &c.RappresentantiGenitori, &c.Alunni, &c.RappresentantiAlunni} {
		if *f == "" {
			*f = FiltroNessuno
		}
	}
	if c.Anno == 0 && !time.Time(c.Data).IsZero() {
		c.Anno = AnnoScolastico(time.Time(c.Data))
	}
}

func (c *ComunicazioneModel) beforeCreate(tx *gorm.DB, cat Categoria) error {
	c.defaults(cat)
	return c.Timestamps.BeforeCreate(tx)
}

func (c ComunicazioneModel) String() string {
	return "Comunicazione \"" + c.Titolo + "\""
}

// Pubblicata reports whether the communication is visible to its recipients.
func (c ComunicazioneModel) Pubblicata() bool { return c.Stato == StatoPubblicato }

// AddSede adds a site unless already present.
func (c *ComunicazioneModel) AddSede(s *sedeModel.SedeModel) {
	for _, x := range c.Sedi {
		if x.ID == s.ID {
			return
		}
	}
	c.Sedi = append(c.Sedi, s)
}

func (c *ComunicazioneModel) RemoveSede(id uint) {
	out := c.Sedi[:0]
	for _, x := range c.Sedi {
		if x.ID != id {
			out = append(out, x)
		}
	}
	c.Sedi = out
}
