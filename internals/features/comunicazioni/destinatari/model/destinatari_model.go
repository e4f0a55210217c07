package model

import (
	"time"

	comModel "giuaschool_backend/internals/features/comunicazioni/comunicazioni/model"
	classeModel "giuaschool_backend/internals/features/scuola/classi/model"
	utenteModel "giuaschool_backend/internals/features/utenti/utenti/model"
	"giuaschool_backend/internals/helpers/dbtime"
)

// ComunicazioneClasseModel is the read receipt of a class: Letto is set when
// the communication has been read out in the classroom.
type ComunicazioneClasseModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	ComunicazioneID uint                         `gorm:"not null;uniqueIndex:uq_comunicazione_classe,priority:1;column:comunicazione_id" json:"comunicazione_id"`
	Comunicazione   *comModel.ComunicazioneModel `gorm:"foreignKey:ComunicazioneID;references:ID" json:"comunicazione,omitempty"`

	ClasseID uint                     `gorm:"not null;uniqueIndex:uq_comunicazione_classe,priority:2;index;column:classe_id" json:"classe_id"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty"`

	Letto *time.Time `gorm:"type:timestamp;column:letto" json:"letto,omitempty"`
}

func (ComunicazioneClasseModel) TableName() string { return "gs_comunicazione_classe" }

func (c ComunicazioneClasseModel) String() string { return ricevuta(c.Letto) }

// ComunicazioneUtenteModel is the receipt of a single recipient.
type ComunicazioneUtenteModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	ComunicazioneID uint                         `gorm:"not null;uniqueIndex:uq_comunicazione_utente,priority:1;column:comunicazione_id" json:"comunicazione_id"`
	Comunicazione   *comModel.ComunicazioneModel `gorm:"foreignKey:ComunicazioneID;references:ID" json:"comunicazione,omitempty"`

	UtenteID uint                     `gorm:"not null;uniqueIndex:uq_comunicazione_utente,priority:2;index;column:utente_id" json:"utente_id"`
	Utente   *utenteModel.UtenteModel `gorm:"foreignKey:UtenteID;references:ID" json:"utente,omitempty"`

	Letto   *time.Time `gorm:"type:timestamp;column:letto" json:"letto,omitempty"`
	Firmato *time.Time `gorm:"type:timestamp;column:firmato" json:"firmato,omitempty"`
}

func (ComunicazioneUtenteModel) TableName() string { return "gs_comunicazione_utente" }

func (c ComunicazioneUtenteModel) String() string {
	if c.Firmato != nil {
		return "Firmato " + c.Firmato.Format(dbtime.LayoutDataOra)
	}
	return ricevuta(c.Letto)
}

// AvvisoClasseModel is the receipt of a notice read in class.
type AvvisoClasseModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	AvvisoID uint                  `gorm:"not null;uniqueIndex:uq_avviso_classe,priority:1;column:avviso_id" json:"avviso_id"`
	Avviso   *comModel.AvvisoModel `gorm:"foreignKey:AvvisoID;references:ID" json:"avviso,omitempty"`

	ClasseID uint                     `gorm:"not null;uniqueIndex:uq_avviso_classe,priority:2;index;column:classe_id" json:"classe_id"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty"`

	Letto *time.Time `gorm:"type:timestamp;column:letto" json:"letto,omitempty"`
}

func (AvvisoClasseModel) TableName() string { return "gs_avviso_classe" }

func (a AvvisoClasseModel) String() string { return ricevuta(a.Letto) }

type AvvisoUtenteModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	AvvisoID uint                  `gorm:"not null;uniqueIndex:uq_avviso_utente,priority:1;column:avviso_id" json:"avviso_id"`
	Avviso   *comModel.AvvisoModel `gorm:"foreignKey:AvvisoID;references:ID" json:"avviso,omitempty"`

	UtenteID uint                     `gorm:"not null;uniqueIndex:uq_avviso_utente,priority:2;index;column:utente_id" json:"utente_id"`
	Utente   *utenteModel.UtenteModel `gorm:"foreignKey:UtenteID;references:ID" json:"utente,omitempty"`

	Letto *time.Time `gorm:"type:timestamp;column:letto" json:"letto,omitempty"`
}

func (AvvisoUtenteModel) TableName() string { return "gs_avviso_utente" }

func (a AvvisoUtenteModel) String() string { return ricevuta(a.Letto) }

// CircolareClasseModel: Letta is set once the circular is read in class.
type CircolareClasseModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	CircolareID uint                     `gorm:"not null;uniqueIndex:uq_circolare_classe,priority:1;column:circolare_id" json:"circolare_id"`
	Circolare   *comModel.CircolareModel `gorm:"foreignKey:CircolareID;references:ID" json:"circolare,omitempty"`

	ClasseID uint                     `gorm:"not null;uniqueIndex:uq_circolare_classe,priority:2;index;column:classe_id" json:"classe_id"`
	Classe   *classeModel.ClasseModel `gorm:"foreignKey:ClasseID;references:ID" json:"classe,omitempty"`

	Letta *time.Time `gorm:"type:timestamp;column:letta" json:"letta,omitempty"`
}

func (CircolareClasseModel) TableName() string { return "gs_circolare_classe" }

func (c CircolareClasseModel) String() string { return ricevuta(c.Letta) }

// CircolareUtenteModel: Confermata is the explicit acknowledgement some
// circulars require on top of reading.
type CircolareUtenteModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	CircolareID uint                     `gorm:"not null;uniqueIndex:uq_circolare_utente,priority:1;column:circolare_id" json:"circolare_id"`
	Circolare   *comModel.CircolareModel `gorm:"foreignKey:CircolareID;references:ID" json:"circolare,omitempty"`

	UtenteID uint                     `gorm:"not null;uniqueIndex:uq_circolare_utente,priority:2;index;column:utente_id" json:"utente_id"`
	Utente   *utenteModel.UtenteModel `gorm:"foreignKey:UtenteID;references:ID" json:"utente,omitempty"`

	Letta      *time.Time `gorm:"type:timestamp;column:letta" json:"letta,omitempty"`
	Confermata *time.Time `gorm:"type:timestamp;column:confermata" json:"confermata,omitempty"`
}

func (CircolareUtenteModel) TableName() string { return "gs_circolare_utente" }

func (c CircolareUtenteModel) String() string {
	if c.Confermata != nil {
		return "Confermata " + c.Confermata.Format(dbtime.LayoutDataOra)
	}
	return ricevuta(c.Letta)
}

// AvvisoIndividualeModel addresses an individual notice to one parent about one student.
type AvvisoIndividualeModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	dbtime.Timestamps

	AvvisoID uint                  `gorm:"not null;uniqueIndex:uq_avviso_individuale,priority:1;column:avviso_id" json:"avviso_id"`
	Avviso   *comModel.AvvisoModel `gorm:"foreignKey:AvvisoID;references:ID" json:"avviso,omitempty"`

	GenitoreID uint                       `gorm:"not null;uniqueIndex:uq_avviso_individuale,priority:2;column:genitore_id" json:"genitore_id"`
	Genitore   *utenteModel.GenitoreModel `gorm:"foreignKey:GenitoreID;references:ID" json:"genitore,omitempty"`

	AlunnoID uint                     `gorm:"not null;uniqueIndex:uq_avviso_individuale,priority:3;column:alunno_id" json:"alunno_id"`
	Alunno   *utenteModel.AlunnoModel `gorm:"foreignKey:AlunnoID;references:ID" json:"alunno,omitempty"`

	Letto *time.Time `gorm:"type:timestamp;column:letto" json:"letto,omitempty"`
}

func (AvvisoIndividualeModel) TableName() string { return "gs_avviso_individuale" }

func (a AvvisoIndividualeModel) String() string { return ricevuta(a.Letto) }

func ricevuta(letto *time.Time) string {
	if letto == nil {
		return "Non letto"
	}
	return "Letto " + letto.Format(dbtime.LayoutDataOra)
}
