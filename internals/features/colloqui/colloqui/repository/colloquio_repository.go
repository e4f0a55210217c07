package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/colloqui/colloqui/model"
	"giuaschool_backend/internals/helpers/dbtime"
)

// ColloquiDocente lists the enabled slots of a teacher from a date on.
func ColloquiDocente(ctx context.Context, db *gorm.DB, docenteID uint, da time.Time) ([]model.ColloquioModel, error) {
	var rows []model.ColloquioModel
	err := db.WithContext(ctx).
		Where("docente_id = ? AND abilitato = ? AND data >= ?", docenteID, true, dbtime.DataDa(da)).
		Order("data ASC, inizio ASC").
		Find(&rows).Error
	return rows, err
}

// RichiesteAttive returns the bookings of a slot that still hold their appointment.
func RichiesteAttive(ctx context.Context, db *gorm.DB, colloquioID uint) ([]model.RichiestaColloquioModel, error) {
	var rows []model.RichiestaColloquioModel
	err := db.WithContext(ctx).
		Where("colloquio_id = ? AND stato IN ?", colloquioID,
			[]model.StatoRichiesta{model.RichiestaInAttesa, model.RichiestaAccettata}).
		Order("appuntamento ASC").
		Find(&rows).Error
	return rows, err
}

// AppuntamentiLiberi returns the appointments of c not taken by an active booking.
func AppuntamentiLiberi(ctx context.Context, db *gorm.DB, c *model.ColloquioModel) ([]dbtime.Tod, error) {
	prese, err := RichiesteAttive(ctx, db, c.ID)
	if err != nil {
		return nil, err
	}
	occupati := make(map[int]bool, len(prese))
	for _, r := range prese {
		occupati[r.Appuntamento.Minutes()] = true
	}
	var out []dbtime.Tod
	for _, a := range c.Appuntamenti() {
		if !occupati[a.Minutes()] {
			out = append(out, a)
		}
	}
	return out, nil
}

// Annulla cancels a booking on behalf of a parent.
func Annulla(ctx context.Context, db *gorm.DB, richiestaID, genitoreID uint) error {
	return db.WithContext(ctx).
		Model(&model.RichiestaColloquioModel{ID: richiestaID}).
		Updates(map[string]interface{}{
			"stato":               model.RichiestaAnnullata,
			"genitore_annulla_id": genitoreID,
		}).Error
}
