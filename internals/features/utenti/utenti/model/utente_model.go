package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"giuaschool_backend/internals/constants"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

type Sesso string

const (
	SessoMaschile  Sesso = "M"
	SessoFemminile Sesso = "F"
)

// Representative codes stored in UtenteModel.Rappresentante.
const (
	RappresentanteClasse   = "C"
	RappresentanteIstituto = "I"
	RappresentanteConsulta = "P"
	RappresentanteRSU      = "R"
)

// UtenteModel is the shared row of gs_utente. Concrete roles embed it and add
// their own columns; Ruolo tells them apart.
type UtenteModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Ruolo Ruolo `gorm:"type:varchar(3);not null;index:idx_utente_ruolo;column:ruolo" json:"ruolo" validate:"oneof=UTE AMM ATA DOC STA PRE ALU GEN"`

	Username string `gorm:"type:varchar(128);not null;uniqueIndex:uq_utente_username;column:username" json:"username" validate:"min=3,max=128,username"`
	Password string `gorm:"type:varchar(255);not null;column:password" json:"-" validate:"notblank,max=255"`
	// PasswordNonCifrata is never persisted.
	PasswordNonCifrata string `gorm:"-" json:"-" validate:"omitempty,min=8,max=72"`
	Email              string `gorm:"type:varchar(255);not null;uniqueIndex:uq_utente_email;column:email" json:"email" validate:"notblank,max=255,email"`

	Token          *string    `gorm:"type:varchar(255);column:token" json:"-"`
	TokenCreato    *time.Time `gorm:"type:timestamp;column:token_creato" json:"token_creato,omitempty"`
	Prelogin       *string    `gorm:"type:varchar(255);column:prelogin" json:"-"`
	PreloginCreato *time.Time `gorm:"type:timestamp;column:prelogin_creato" json:"prelogin_creato,omitempty"`

	Abilitato     bool       `gorm:"not null;default:false;column:abilitato" json:"abilitato"`
	Spid          bool       `gorm:"not null;default:false;column:spid" json:"spid"`
	UltimoAccesso *time.Time `gorm:"type:timestamp;column:ultimo_accesso" json:"ultimo_accesso,omitempty"`
	Otp           *string    `gorm:"type:varchar(128);column:otp" json:"-"`
	UltimoOtp     *string    `gorm:"type:varchar(128);column:ultimo_otp" json:"-"`

	Nome             string          `gorm:"type:varchar(64);not null;column:nome" json:"nome" validate:"notblank,max=64"`
	Cognome          string          `gorm:"type:varchar(64);not null;column:cognome" json:"cognome" validate:"notblank,max=64"`
	Sesso            Sesso           `gorm:"type:varchar(1);not null;default:'M';column:sesso" json:"sesso" validate:"oneof=M F"`
	DataNascita      *datatypes.Date `gorm:"type:date;column:data_nascita" json:"data_nascita,omitempty"`
	ComuneNascita    *string         `gorm:"type:varchar(64);column:comune_nascita" json:"comune_nascita,omitempty" validate:"omitempty,max=64"`
	ProvinciaNascita *string         `gorm:"type:varchar(2);column:provincia_nascita" json:"provincia_nascita,omitempty" validate:"omitempty,max=2"`
	CodiceFiscale    *string         `gorm:"type:varchar(16);column:codice_fiscale" json:"codice_fiscale,omitempty" validate:"omitempty,codfisc"`
	Citta            *string         `gorm:"type:varchar(32);column:citta" json:"citta,omitempty" validate:"omitempty,max=32"`
	Provincia        *string         `gorm:"type:varchar(2);column:provincia" json:"provincia,omitempty" validate:"omitempty,max=2"`
	Indirizzo        *string         `gorm:"type:varchar(64);column:indirizzo" json:"indirizzo,omitempty" validate:"omitempty,max=64"`

	NumeriTelefono datatypes.JSONSlice[string] `gorm:"type:jsonb;column:numeri_telefono" json:"numeri_telefono"`
	// Notifica holds the external notification settings: {"tipo": "email", "abilitato": ["circolare"]}.
	Notifica       datatypes.JSONMap `gorm:"type:jsonb;column:notifica" json:"notifica"`
	Rappresentante pq.StringArray    `gorm:"type:text[];column:rappresentante" json:"rappresentante" validate:"dive,omitempty,oneof=C I P R"`
}

func (UtenteModel) TableName() string { return "gs_utente" }

// SetDefaultValues fills the defaults a fresh account starts with.
func (u *UtenteModel) SetDefaultValues() {
	if u.Ruolo == "" {
		u.Ruolo = RuoloUtente
	}
	if u.Sesso == "" {
		u.Sesso = SessoMaschile
	}
	if u.NumeriTelefono == nil {
		u.NumeriTelefono = datatypes.JSONSlice[string]{}
	}
	if u.Notifica == nil {
		u.Notifica = datatypes.JSONMap{"tipo": "email", "abilitato": []string{"circolare"}}
	}
	if u.Rappresentante == nil {
		u.Rappresentante = pq.StringArray{}
	}
}

func (u *UtenteModel) BeforeCreate(tx *gorm.DB) error {
	u.SetDefaultValues()
	return u.Timestamps.BeforeCreate(tx)
}

func (u *UtenteModel) Utente() *UtenteModel { return u }

func (u *UtenteModel) Ruoli() []string { return []string{constants.RoleUtente} }

func (u *UtenteModel) CodiceRuolo() string { return constants.CodiceUtente }

func (u *UtenteModel) CodiceFunzioni() []string { return []string{constants.FunzioneNessuna} }

func (u *UtenteModel) String() string {
	return u.Cognome + " " + u.Nome + " (" + u.Username + ")"
}

func (u *UtenteModel) Validate() error {
	u.SetDefaultValues()
	return helper.Validate(u)
}

// CreaToken issues a random 32-char hex token (password reset, app login).
func (u *UtenteModel) CreaToken() string {
	tok := strings.ReplaceAll(uuid.NewString(), "-", "")
	now := dbtime.Now()
	u.Token = &tok
	u.TokenCreato = &now
	return tok
}

func (u *UtenteModel) CancellaToken() {
	u.Token = nil
	u.TokenCreato = nil
}

// CancellaCredenziali drops the plain password kept in memory after a change.
func (u *UtenteModel) CancellaCredenziali() {
	u.PasswordNonCifrata = ""
}

// ImpostaPassword stores the bcrypt hash of plain and keeps plain in memory
// until CancellaCredenziali.
func (u *UtenteModel) ImpostaPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordNonCifrata = plain
	u.Password = string(hash)
	return nil
}

// NotificaAbilitata reports whether external notifications are on for the given kind.
func (u *UtenteModel) NotificaAbilitata(tipo string) bool {
	raw, ok := u.Notifica["abilitato"]
	if !ok {
		return false
	}
	switch v := raw.(type) {
	case []string:
		for _, s := range v {
			if s == tipo {
				return true
			}
		}
	case []interface{}:
		for _, s := range v {
			if str, ok := s.(string); ok && str == tipo {
				return true
			}
		}
	}
	return false
}
