package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"giuaschool_backend/internals/features/scuola/configurazioni/model"
)

// Parametro returns the value of a parameter, or def when the row is missing.
func Parametro(ctx context.Context, db *gorm.DB, nome, def string) (string, error) {
	var valore string
	err := db.WithContext(ctx).
		Model(&model.ConfigurazioneModel{}).
		Select("valore").
		Where("parametro = ?", nome).
		Take(&valore).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return valore, nil
}

// Parametri loads several parameters at once. Missing ones are absent from the map.
func Parametri(ctx context.Context, db *gorm.DB, nomi ...string) (map[string]string, error) {
	var rows []model.ConfigurazioneModel
	if err := db.WithContext(ctx).
		Select("parametro", "valore").
		Where("parametro IN ?", nomi).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Parametro] = r.Valore
	}
	return out, nil
}

// ImpostaParametro upserts the value of an existing or new parameter.
func ImpostaParametro(ctx context.Context, db *gorm.DB, categoria, nome, valore string) error {
	row := model.ConfigurazioneModel{
		Categoria: categoria,
		Parametro: nome,
		Valore:    valore,
	}
	return db.WithContext(ctx).Clauses(upsertValore()).Create(&row).Error
}

func upsertValore() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "parametro"}},
		DoUpdates: clause.AssignmentColumns([]string{"valore", "modificato"}),
	}
}

// GiorniSettimana parses a comma list of weekdays ("0,6") into a set, 0 = Sunday.
func GiorniSettimana(valore string) map[int]bool {
	out := map[int]bool{}
	for _, part := range strings.Split(valore, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		out[n] = true
	}
	return out
}
