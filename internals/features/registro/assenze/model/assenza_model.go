package model

import (
	"gorm.io/datatypes"

	lezioneModel "giuaschool_backend/internals/features/registro/lezioni/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// AssenzaModel is a full-day absence. Giustificato is the date of the
// justification, nil until the family justifies it.
type AssenzaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data          datatypes.Date              `gorm:"type:date;not null;uniqueIndex:uq_assenza_data_alunno,priority:1;column:data" json:"data"`
	Giustificato  *datatypes.Date             `gorm:"type:date;column:giustificato" json:"giustificato,omitempty"`
	Motivazione   *string                     `gorm:"type:varchar(1024);column:motivazione" json:"motivazione,omitempty" validate:"omitempty,max=1024"`
	Dichiarazione datatypes.JSONMap           `gorm:"type:jsonb;column:dichiarazione" json:"dichiarazione,omitempty"`
	Certificati   datatypes.JSONSlice[string] `gorm:"type:jsonb;column:certificati" json:"certificati,omitempty"`

	AlunnoID uint                     `gorm:"not null;uniqueIndex:uq_assenza_data_alunno,priority:2;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	DocenteID uint                      `gorm:"not null;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`

	DocenteGiustificaID *uint                     `gorm:"index;column:docente_giustifica_id" json:"docente_giustifica_id,omitempty"`
	DocenteGiustifica   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteGiustificaID;references:ID" json:"docente_giustifica,omitempty" validate:"-"`

	UtenteGiustificaID *uint                    `gorm:"index;column:utente_giustifica_id" json:"utente_giustifica_id,omitempty"`
	UtenteGiustifica   *utenteModel.UtenteModel `gorm:"foreignKey:UtenteGiustificaID;references:ID" json:"utente_giustifica,omitempty" validate:"-"`
}

func (AssenzaModel) TableName() string { return "gs_assenza" }

// String needs Alunno preloaded.
func (a AssenzaModel) String() string {
	return dbtime.FormatData(a.Data) + ": " + nomeAlunno(a.Alunno)
}

func (a *AssenzaModel) Validate() error { return helper.Validate(a) }

// Giustificata reports whether the absence has been justified.
func (a AssenzaModel) Giustificata() bool { return a.Giustificato != nil }

// AssenzaLezioneModel links an absence to the lessons it covers; Ore counts
// the hours missed in that lesson.
type AssenzaLezioneModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	AlunnoID uint                     `gorm:"not null;uniqueIndex:uq_assenza_lezione_alunno_lezione,priority:1;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	LezioneID uint                       `gorm:"not null;uniqueIndex:uq_assenza_lezione_alunno_lezione,priority:2;index;column:lezione_id" json:"lezione_id" validate:"required"`
	Lezione   *lezioneModel.LezioneModel `gorm:"foreignKey:LezioneID;references:ID" json:"lezione,omitempty" validate:"-"`

	Ore float32 `gorm:"type:real;not null;column:ore" json:"ore" validate:"gte=0"`
}

func (AssenzaLezioneModel) TableName() string { return "gs_assenza_lezione" }

func (a AssenzaLezioneModel) String() string {
	var lezione string
	if a.Lezione != nil {
		lezione = a.Lezione.String()
	}
	return lezione + " - " + nomeAlunno(a.Alunno)
}

func (a *AssenzaLezioneModel) Validate() error { return helper.Validate(a) }

func nomeAlunno(a *utenteModel.AlunnoModel) string {
	if a == nil {
		return ""
	}
	return a.String()
}
