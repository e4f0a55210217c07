package repository

import (
	"context"

	"gorm.io/gorm"

	appModel "giuaschool_backend/internals/features/sistema/app/model"
	"giuaschool_backend/internals/features/sistema/notifiche/model"
)

// LimiteAttesa is how many waiting messages join a batch, given how many
// priority ones are already in it.
func LimiteAttesa(prioritari int) int {
	switch {
	case prioritari < 5:
		return 25
	case prioritari < 50:
		return 10
	default:
		return 5
	}
}

const joinApp = "JOIN gs_app ON gs_app.id = gs_notifica_invio.app_id AND gs_app.notifica = ?"

// DaInviare returns the next batch for apps notifying through canale: every
// priority message, then the oldest waiting ones up to LimiteAttesa. Apps are
// preloaded.
func DaInviare(ctx context.Context, db *gorm.DB, canale appModel.TipoNotificaApp) ([]model.NotificaInvioModel, error) {
	var prioritari []model.NotificaInvioModel
	if err := db.WithContext(ctx).
		Preload("App").
		Joins(joinApp, canale).
		Where("gs_notifica_invio.stato = ?", model.InvioPriorita).
		Order("gs_notifica_invio.modificato ASC, gs_notifica_invio.id ASC").
		Find(&prioritari).Error; err != nil {
		return nil, err
	}

	var attesa []model.NotificaInvioModel
	if err := db.WithContext(ctx).
		Preload("App").
		Joins(joinApp, canale).
		Where("gs_notifica_invio.stato = ?", model.InvioAttesa).
		Order("gs_notifica_invio.modificato ASC, gs_notifica_invio.id ASC").
		Limit(LimiteAttesa(len(prioritari))).
		Find(&attesa).Error; err != nil {
		return nil, err
	}
	return append(prioritari, attesa...), nil
}

// Accoda queues a message for an app.
func Accoda(ctx context.Context, db *gorm.DB, n *model.NotificaInvioModel) error {
	if err := n.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(n).Error
}

// Inviata marks a message as delivered.
func Inviata(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).
		Model(&model.NotificaInvioModel{ID: id}).
		Updates(map[string]interface{}{"stato": model.InvioSpedito}).Error
}

// Errata marks a message as failed and keeps the reason in dati.errore.
func Errata(ctx context.Context, db *gorm.DB, id uint, motivo string) error {
	return db.WithContext(ctx).
		Model(&model.NotificaInvioModel{ID: id}).
		Updates(map[string]interface{}{
			"stato": model.InvioErrore,
			"dati":  gorm.Expr("COALESCE(dati, '{}'::jsonb) || jsonb_build_object('errore', ?::text)", motivo),
		}).Error
}

// Registra stores the change event for an entity.
func Registra(ctx context.Context, db *gorm.DB, oggetto string, id uint, azione model.AzioneNotifica) (*model.NotificaModel, error) {
	n := &model.NotificaModel{OggettoNome: oggetto, OggettoID: id, Azione: azione}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}
