package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/registro/assenze/model"
	lezioneModel "giuaschool_backend/internals/features/registro/lezioni/model"
	"giuaschool_backend/internals/helpers/dbtime"
)

// alunniClasse selects the students currently enrolled in a class.
func alunniClasse(db *gorm.DB, classeID uint) *gorm.DB {
	return db.Table("gs_utente").Select("id").Where("ruolo = ? AND classe_id = ?", "ALU", classeID)
}

// GiorniAttivita returns the days in [da, a] on which the class had any
// activity: a lesson, or an absence, entry or exit of one of its students.
// Keys are ISO dates (yyyy-mm-dd).
func GiorniAttivita(ctx context.Context, db *gorm.DB, classeID uint, da, a time.Time) (map[string]bool, error) {
	db = db.WithContext(ctx)
	dal, al := dbtime.DataDa(da), dbtime.DataDa(a)

	out := map[string]bool{}
	add := func(days []time.Time) {
		for _, d := range days {
			out[d.Format(dbtime.LayoutISOData)] = true
		}
	}

	var days []time.Time
	if err := db.Model(&lezioneModel.LezioneModel{}).
		Where("classe_id = ? AND data BETWEEN ? AND ?", classeID, dal, al).
		Distinct().Pluck("data", &days).Error; err != nil {
		return nil, err
	}
	add(days)

	for _, m := range []interface{}{&model.AssenzaModel{}, &model.EntrataModel{}, &model.UscitaModel{}} {
		days = days[:0]
		if err := db.Model(m).
			Where("alunno_id IN (?) AND data BETWEEN ? AND ?", alunniClasse(db, classeID), dal, al).
			Distinct().Pluck("data", &days).Error; err != nil {
			return nil, err
		}
		add(days)
	}
	return out, nil
}

// AssenzeDaGiustificare lists the unjustified absences of a student, oldest first.
func AssenzeDaGiustificare(ctx context.Context, db *gorm.DB, alunnoID uint) ([]model.AssenzaModel, error) {
	var rows []model.AssenzaModel
	err := db.WithContext(ctx).
		Where("alunno_id = ? AND giustificato IS NULL", alunnoID).
		Order("data ASC").
		Find(&rows).Error
	return rows, err
}

// Giustifica stamps today's date on an absence and records who justified it.
func Giustifica(ctx context.Context, db *gorm.DB, assenzaID, utenteID uint, motivazione string) error {
	oggi := dbtime.DataDa(dbtime.Today())
	return db.WithContext(ctx).
		Model(&model.AssenzaModel{ID: assenzaID}).
		Updates(map[string]interface{}{
			"giustificato":         oggi,
			"motivazione":          motivazione,
			"utente_giustifica_id": utenteID,
		}).Error
}
