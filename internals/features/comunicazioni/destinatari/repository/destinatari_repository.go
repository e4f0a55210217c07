package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	comModel "giuaschool_backend/internals/features/comunicazioni/comunicazioni/model"
	"giuaschool_backend/internals/features/comunicazioni/destinatari/model"
	"giuaschool_backend/internals/helpers/dbtime"
)

// segna stamps col on the receipts matching cond, only where it is still unset.
// extra columns are written in the same statement. It reports whether a row changed.
func segna(ctx context.Context, db *gorm.DB, m interface{}, cond map[string]interface{}, col string, extra map[string]interface{}) (bool, error) {
	valori := map[string]interface{}{col: dbtime.Now()}
	for k, v := range extra {
		valori[k] = v
	}
	res := db.WithContext(ctx).
		Model(m).
		Where(cond).
		Where(col + " IS NULL").
		Updates(valori)
	return res.RowsAffected > 0, res.Error
}

/* =========================================================
   Comunicazioni
========================================================= */

// Legge marks a communication as read by a user.
func Legge(ctx context.Context, db *gorm.DB, comunicazioneID, utenteID uint) (bool, error) {
	return segna(ctx, db, &model.ComunicazioneUtenteModel{},
		map[string]interface{}{"comunicazione_id": comunicazioneID, "utente_id": utenteID},
		"letto", nil)
}

// Firma signs a communication; an unread one is marked read at the same time.
func Firma(ctx context.Context, db *gorm.DB, comunicazioneID, utenteID uint) (bool, error) {
	return segna(ctx, db, &model.ComunicazioneUtenteModel{},
		map[string]interface{}{"comunicazione_id": comunicazioneID, "utente_id": utenteID},
		"firmato", map[string]interface{}{"letto": gorm.Expr("COALESCE(letto, ?)", dbtime.Now())})
}

// LeggeClasse marks a communication as read out in a class.
func LeggeClasse(ctx context.Context, db *gorm.DB, comunicazioneID, classeID uint) (bool, error) {
	return segna(ctx, db, &model.ComunicazioneClasseModel{},
		map[string]interface{}{"comunicazione_id": comunicazioneID, "classe_id": classeID},
		"letto", nil)
}

// DaNotificare lists the recipients that have not read a published communication.
func DaNotificare(ctx context.Context, db *gorm.DB, comunicazioneID uint) ([]model.ComunicazioneUtenteModel, error) {
	var rows []model.ComunicazioneUtenteModel
	err := db.WithContext(ctx).
		Joins("JOIN gs_comunicazione c ON c.id = gs_comunicazione_utente.comunicazione_id AND c.stato = ?", comModel.StatoPubblicato).
		Where("gs_comunicazione_utente.comunicazione_id = ? AND gs_comunicazione_utente.letto IS NULL", comunicazioneID).
		Order("gs_comunicazione_utente.id ASC").
		Find(&rows).Error
	return rows, err
}

// AggiungiDestinatari creates the missing receipts of a communication.
func AggiungiDestinatari(ctx context.Context, db *gorm.DB, comunicazioneID uint, utenti []uint) error {
	if len(utenti) == 0 {
		return nil
	}
	rows := make([]model.ComunicazioneUtenteModel, 0, len(utenti))
	for _, id := range utenti {
		rows = append(rows, model.ComunicazioneUtenteModel{ComunicazioneID: comunicazioneID, UtenteID: id})
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, 500).Error
}

/* =========================================================
   Avvisi
========================================================= */

func LeggeAvviso(ctx context.Context, db *gorm.DB, avvisoID, utenteID uint) (bool, error) {
	return segna(ctx, db, &model.AvvisoUtenteModel{},
		map[string]interface{}{"avviso_id": avvisoID, "utente_id": utenteID},
		"letto", nil)
}

func LeggeAvvisoClasse(ctx context.Context, db *gorm.DB, avvisoID, classeID uint) (bool, error) {
	return segna(ctx, db, &model.AvvisoClasseModel{},
		map[string]interface{}{"avviso_id": avvisoID, "classe_id": classeID},
		"letto", nil)
}

func LeggeAvvisoIndividuale(ctx context.Context, db *gorm.DB, avvisoID, genitoreID, alunnoID uint) (bool, error) {
	return segna(ctx, db, &model.AvvisoIndividualeModel{},
		map[string]interface{}{"avviso_id": avvisoID, "genitore_id": genitoreID, "alunno_id": alunnoID},
		"letto", nil)
}

/* =========================================================
   Circolari
========================================================= */

func LeggeCircolare(ctx context.Context, db *gorm.DB, circolareID, utenteID uint) (bool, error) {
	return segna(ctx, db, &model.CircolareUtenteModel{},
		map[string]interface{}{"circolare_id": circolareID, "utente_id": utenteID},
		"letta", nil)
}

func LeggeCircolareClasse(ctx context.Context, db *gorm.DB, circolareID, classeID uint) (bool, error) {
	return segna(ctx, db, &model.CircolareClasseModel{},
		map[string]interface{}{"circolare_id": circolareID, "classe_id": classeID},
		"letta", nil)
}

// Conferma acknowledges a circular, marking it read when needed.
func Conferma(ctx context.Context, db *gorm.DB, circolareID, utenteID uint) (bool, error) {
	return segna(ctx, db, &model.CircolareUtenteModel{},
		map[string]interface{}{"circolare_id": circolareID, "utente_id": utenteID},
		"confermata", map[string]interface{}{"letta": gorm.Expr("COALESCE(letta, ?)", dbtime.Now())})
}
