package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/orari/festivita/model"
	"giuaschool_backend/internals/features/orari/festivita/service"
	confModel "giuaschool_backend/internals/features/scuola/configurazioni/model"
	confRepo "giuaschool_backend/internals/features/scuola/configurazioni/repository"
	"giuaschool_backend/internals/helpers/dbtime"
)

// PerSede keeps school-wide rows and, when sedeID is set, the rows of that site.
func PerSede(sedeID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sedeID == nil {
			return db.Where("sede_id IS NULL")
		}
		return db.Where("sede_id IS NULL OR sede_id = ?", *sedeID)
	}
}

// ListFestivita returns the holidays (tipo F) between da and a.
func ListFestivita(ctx context.Context, db *gorm.DB, sedeID *uint, da, a time.Time) ([]model.FestivitaModel, error) {
	var rows []model.FestivitaModel
	err := db.WithContext(ctx).
		Scopes(PerSede(sedeID)).
		Where("tipo = ? AND data BETWEEN ? AND ?", model.Festivo, dbtime.DataDa(da), dbtime.DataDa(a)).
		Order("data ASC").
		Find(&rows).Error
	return rows, err
}

// CaricaCalendario builds the calendar of the current school year for a site.
func CaricaCalendario(ctx context.Context, db *gorm.DB, sedeID *uint) (*service.Calendario, error) {
	par, err := confRepo.Parametri(ctx, db,
		confModel.ParamAnnoInizio,
		confModel.ParamAnnoFine,
		confModel.ParamGiorniFestiviIstituto,
	)
	if err != nil {
		return nil, fmt.Errorf("parametri calendario: %w", err)
	}

	cal := &service.Calendario{
		Festivi: map[string]bool{},
		Riposo:  confRepo.GiorniSettimana(par[confModel.ParamGiorniFestiviIstituto]),
	}
	if v := par[confModel.ParamAnnoInizio]; v != "" {
		d, err := dbtime.ParseData(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", confModel.ParamAnnoInizio, err)
		}
		cal.Inizio = time.Time(d)
	}
	if v := par[confModel.ParamAnnoFine]; v != "" {
		d, err := dbtime.ParseData(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", confModel.ParamAnnoFine, err)
		}
		cal.Fine = time.Time(d)
	}

	q := db.WithContext(ctx).Model(&model.FestivitaModel{}).
		Scopes(PerSede(sedeID)).
		Where("tipo = ?", model.Festivo)
	if !cal.Inizio.IsZero() && !cal.Fine.IsZero() {
		q = q.Where("data BETWEEN ? AND ?", dbtime.DataDa(cal.Inizio), dbtime.DataDa(cal.Fine))
	}
	var giorni []time.Time
	if err := q.Pluck("data", &giorni).Error; err != nil {
		return nil, err
	}
	for _, g := range giorni {
		cal.Festivi[g.Format(dbtime.LayoutISOData)] = true
	}
	return cal, nil
}
