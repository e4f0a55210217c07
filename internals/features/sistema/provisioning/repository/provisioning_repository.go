package repository

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/features/sistema/provisioning/model"
	"giuaschool_backend/internals/helpers/dbtime"
)

// LimiteComandi is the default batch size of ComandiInAttesa.
const LimiteComandi = 20

// claimSQL moves up to n waiting commands to "in progress" in one statement,
// skipping rows another worker already holds.
const claimSQL = `UPDATE gs_provisioning SET stato = ?, modificato = ?
WHERE id IN (
	SELECT id FROM gs_provisioning
	WHERE stato = ?
	ORDER BY id ASC
	LIMIT ?
	FOR UPDATE SKIP LOCKED
)
RETURNING *`

// Accoda queues a command for a user.
func Accoda(ctx context.Context, db *gorm.DB, utenteID uint, funzione string, dati map[string]interface{}) (*model.ProvisioningModel, error) {
	p := &model.ProvisioningModel{UtenteID: utenteID, Funzione: funzione, Dati: dati}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ComandiInAttesa claims the oldest waiting commands, at most limite
// (LimiteComandi when limite <= 0), and returns them by id.
func ComandiInAttesa(ctx context.Context, db *gorm.DB, limite int) ([]model.ProvisioningModel, error) {
	if limite <= 0 {
		limite = LimiteComandi
	}
	var rows []model.ProvisioningModel
	err := db.WithContext(ctx).
		Raw(claimSQL, model.StatoInCorso, dbtime.Now(), model.StatoAttesa, limite).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// RipristinaComandi puts in-progress commands back in the queue. With no ids
// every stalled command is restored.
func RipristinaComandi(ctx context.Context, db *gorm.DB, ids ...uint) (int64, error) {
	q := db.WithContext(ctx).
		Model(&model.ProvisioningModel{}).
		Where("stato = ?", model.StatoInCorso)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	res := q.Updates(map[string]interface{}{"stato": model.StatoAttesa})
	return res.RowsAffected, res.Error
}

// Eseguito completes an in-progress command, storing its log.
func Eseguito(ctx context.Context, db *gorm.DB, id uint, logText string) error {
	return chiudi(ctx, db, id, model.StatoCompleto,
		gorm.Expr("COALESCE(dati, '{}'::jsonb) || jsonb_build_object('log', ?::text)", logText))
}

// Errato fails an in-progress command, storing its log and the error.
func Errato(ctx context.Context, db *gorm.DB, id uint, logText, errore string) error {
	return chiudi(ctx, db, id, model.StatoErrore,
		gorm.Expr("COALESCE(dati, '{}'::jsonb) || jsonb_build_object('log', ?::text, 'errore', ?::text)", logText, errore))
}

func chiudi(ctx context.Context, db *gorm.DB, id uint, stato model.StatoProvisioning, dati interface{}) error {
	return db.WithContext(ctx).
		Model(&model.ProvisioningModel{ID: id}).
		Where("stato = ?", model.StatoInCorso).
		Updates(map[string]interface{}{"stato": stato, "dati": dati}).Error
}

// CancellaComandi removes completed commands last touched before now-retention.
func CancellaComandi(ctx context.Context, db *gorm.DB, retention time.Duration) (int64, error) {
	prima := dbtime.Now().Add(-retention)
	res := db.WithContext(ctx).
		Where("stato = ? AND modificato < ?", model.StatoCompleto, prima).
		Delete(&model.ProvisioningModel{})
	return res.RowsAffected, res.Error
}
