package repository

import (
	"context"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/comunicazioni/comunicazioni/model"
)

/* =========================================================
   Scopes
========================================================= */

func DiCategoria(cat model.Categoria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("categoria = ?", cat)
	}
}

func Pubblicate(db *gorm.DB) *gorm.DB {
	return db.Where("stato = ?", model.StatoPubblicato)
}

// PerSede keeps communications addressed to the site, through gs_comunicazione_sede.
func PerSede(sedeID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("gs_comunicazione_sede").
				Select("comunicazione_id").
				Where("sede_id = ?", sedeID))
	}
}

/* =========================================================
   Load
========================================================= */

// CaricaComunicazione loads a row as its concrete category type.
func CaricaComunicazione(ctx context.Context, db *gorm.DB, id uint) (model.Comunicazione, error) {
	db = db.WithContext(ctx)
	var cat model.Categoria
	if err := db.Model(&model.ComunicazioneModel{}).
		Select("categoria").
		Where("id = ?", id).
		Take(&cat).Error; err != nil {
		return nil, err
	}
	c, err := model.NuovaComunicazione(cat)
	if err != nil {
		return nil, err
	}
	if err := db.Preload("Sedi").Preload("Allegati").First(c, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}

/* =========================================================
   Circolari
========================================================= */

// ProssimoNumero returns the number for the next circular of the school year.
func ProssimoNumero(ctx context.Context, db *gorm.DB, anno int) (int, error) {
	var max int
	err := db.WithContext(ctx).
		Model(&model.CircolareModel{}).
		Scopes(DiCategoria(model.CategoriaCircolare)).
		Where("anno = ?", anno).
		Select("COALESCE(MAX(numero), 0)").
		Take(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// NumeroDisponibile reports whether the circular's number is free in its
// school year, ignoring the circular itself.
func NumeroDisponibile(ctx context.Context, db *gorm.DB, c *model.CircolareModel) (bool, error) {
	if c.Numero == nil {
		return false, nil
	}
	q := db.WithContext(ctx).
		Model(&model.CircolareModel{}).
		Scopes(DiCategoria(model.CategoriaCircolare)).
		Where("anno = ? AND numero = ?", c.Anno, *c.Numero)
	if c.ID != 0 {
		q = q.Where("id <> ?", c.ID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

// ListCircolari returns the published circulars of a year, newest number first.
func ListCircolari(ctx context.Context, db *gorm.DB, anno int) ([]model.CircolareModel, error) {
	var rows []model.CircolareModel
	err := db.WithContext(ctx).
		Scopes(DiCategoria(model.CategoriaCircolare), Pubblicate).
		Where("anno = ?", anno).
		Order("numero DESC").
		Find(&rows).Error
	return rows, err
}
