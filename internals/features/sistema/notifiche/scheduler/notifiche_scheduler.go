package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"giuaschool_backend/internals/configs"
	"giuaschool_backend/internals/features/sistema/notifiche/service"
)

// StartNotificheScheduler sends a batch every NOTIFICHE_INTERVAL (default 1m)
// until ctx is cancelled. wg is done once the running batch has returned.
func StartNotificheScheduler(ctx context.Context, wg *sync.WaitGroup, db *gorm.DB, m service.Mittente) {
	every := configs.GetEnvDuration("NOTIFICHE_INTERVAL", time.Minute)

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			Esegui(ctx, db, m)

			select {
			case <-ctx.Done():
				log.Println("[NOTIFICHE] scheduler fermato")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Esegui runs a single batch and logs its outcome.
func Esegui(ctx context.Context, db *gorm.DB, m service.Mittente) {
	esito, err := service.InviaNotifiche(ctx, db, m)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("[NOTIFICHE ERROR] batch interrotto: %v", err)
		}
		return
	}
	if esito.Inviate+esito.Errate > 0 {
		log.Printf("[NOTIFICHE] %d inviate, %d in errore", esito.Inviate, esito.Errate)
	}
}
