package repository

import (
	"context"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/sistema/logs/model"
	"giuaschool_backend/internals/helpers"
)

var sortLog = map[string]string{
	"creato":    "creato",
	"categoria": "categoria",
	"tipo":      "tipo",
}

// Registra writes an audit entry.
func Registra(ctx context.Context, db *gorm.DB, l *model.LogModel) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(l).Error
}

type Filtro struct {
	UtenteID  *uint
	Categoria string
	Tipo      model.TipoLog
}

func (f Filtro) scope(db *gorm.DB) *gorm.DB {
	if f.UtenteID != nil {
		db = db.Where("utente_id = ?", *f.UtenteID)
	}
	if f.Categoria != "" {
		db = db.Where("categoria = ?", f.Categoria)
	}
	if f.Tipo != "" {
		db = db.Where("tipo = ?", f.Tipo)
	}
	return db
}

// ListLog pages the audit trail, newest first unless p says otherwise.
func ListLog(ctx context.Context, db *gorm.DB, f Filtro, p helper.Params) ([]model.LogModel, helper.Meta, error) {
	order, err := p.SafeOrderClause(sortLog, "creato")
	if err != nil {
		return nil, helper.Meta{}, err
	}

	var total int64
	if err := db.WithContext(ctx).Model(&model.LogModel{}).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, helper.Meta{}, err
	}

	var rows []model.LogModel
	if err := db.WithContext(ctx).
		Scopes(f.scope, helper.Paginate(p)).
		Order(order).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, helper.Meta{}, err
	}
	return rows, helper.BuildMeta(total, p), nil
}
