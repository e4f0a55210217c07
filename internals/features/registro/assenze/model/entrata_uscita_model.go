package model

import (
	"gorm.io/datatypes"

	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers"
	"giuaschool_backend/internals/helpers/dbtime"
)

// Permesso holds the columns shared by late entries and early exits.
type Permesso struct {
	Note         *string         `gorm:"type:text;column:note" json:"note,omitempty"`
	Valido       bool            `gorm:"not null;default:false;column:valido" json:"valido"`
	Motivazione  *string         `gorm:"type:varchar(1024);column:motivazione" json:"motivazione,omitempty" validate:"omitempty,max=1024"`
	Giustificato *datatypes.Date `gorm:"type:date;column:giustificato" json:"giustificato,omitempty"`

	DocenteID uint                      `gorm:"not null;index;column:docente_id" json:"docente_id" validate:"required"`
	Docente   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:ID" json:"docente,omitempty" validate:"-"`

	DocenteGiustificaID *uint                     `gorm:"index;column:docente_giustifica_id" json:"docente_giustifica_id,omitempty"`
	DocenteGiustifica   *utenteModel.DocenteModel `gorm:"foreignKey:DocenteGiustificaID;references:ID" json:"docente_giustifica,omitempty" validate:"-"`

	UtenteGiustificaID *uint                    `gorm:"index;column:utente_giustifica_id" json:"utente_giustifica_id,omitempty"`
	UtenteGiustifica   *utenteModel.UtenteModel `gorm:"foreignKey:UtenteGiustificaID;references:ID" json:"utente_giustifica,omitempty" validate:"-"`
}

// EntrataModel is a late entry. RitardoBreve marks entries within the short
// grace period, which need no justification.
type EntrataModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data         datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_entrata_data_alunno,priority:1;column:data" json:"data"`
	Ora          dbtime.Tod     `gorm:"type:time;not null;column:ora" json:"ora"`
	RitardoBreve bool           `gorm:"not null;default:false;column:ritardo_breve" json:"ritardo_breve"`

	AlunnoID uint                     `gorm:"not null;uniqueIndex:uq_entrata_data_alunno,priority:2;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	Permesso
}

func (EntrataModel) TableName() string { return "gs_entrata" }

func (e EntrataModel) String() string {
	return dbtime.FormatData(e.Data) + " " + e.Ora.String() + " - " + nomeAlunno(e.Alunno)
}

func (e *EntrataModel) Validate() error { return helper.Validate(e) }

// UscitaModel is an early exit.
type UscitaModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	Data datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_uscita_data_alunno,priority:1;column:data" json:"data"`
	Ora  dbtime.Tod     `gorm:"type:time;not null;column:ora" json:"ora"`

	AlunnoID uint                     `gorm:"not null;uniqueIndex:uq_uscita_data_alunno,priority:2;index;column:alunno_id" json:"alunno_id" validate:"required"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty" validate:"-"`

	Permesso
}

func (UscitaModel) TableName() string { return "gs_uscita" }

func (u UscitaModel) String() string {
	return dbtime.FormatData(u.Data) + " " + u.Ora.String() + " - " + nomeAlunno(u.Alunno)
}

func (u *UscitaModel) Validate() error { return helper.Validate(u) }
