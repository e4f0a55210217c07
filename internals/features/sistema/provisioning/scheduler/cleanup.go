package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/configs"
	"giuaschool_backend/internals/features/sistema/provisioning/repository"
)

// StartProvisioningCleanupScheduler purges completed commands older than
// PROVISIONING_RETENTION_HOURS (default 24) every PROVISIONING_INTERVAL
// (default 24h) until ctx is cancelled. wg is done once the loop has returned.
func StartProvisioningCleanupScheduler(ctx context.Context, wg *sync.WaitGroup, db *gorm.DB) {
	retention := time.Duration(configs.GetEnvInt("PROVISIONING_RETENTION_HOURS", 24)) * time.Hour
	every := configs.GetEnvDuration("PROVISIONING_INTERVAL", 24*time.Hour)

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			Pulisci(ctx, db, retention)

			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] scheduler provisioning fermato")
				return
			case <-ticker.C:
			}
		}
	}()
}

func Pulisci(ctx context.Context, db *gorm.DB, retention time.Duration) {
	log.Println("[CLEANUP] Pulizia comandi di provisioning completati...")
	n, err := repository.CancellaComandi(ctx, db, retention)
	switch {
	case err != nil:
		log.Printf("[CLEANUP ERROR] Cancellazione non riuscita: %v", err)
	case n > 0:
		log.Printf("[CLEANUP] %d comandi cancellati", n)
	default:
		log.Println("[CLEANUP] Nessun comando da cancellare")
	}
}

// RipristinaAlAvvio requeues commands left in progress by a previous run.
func RipristinaAlAvvio(ctx context.Context, db *gorm.DB) {
	n, err := repository.RipristinaComandi(ctx, db)
	if err != nil {
		log.Printf("[PROVISIONING ERROR] Ripristino non riuscito: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[PROVISIONING] %d comandi rimessi in coda", n)
	}
}
