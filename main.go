package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"giuaschool_backend/internals/configs"
	database "giuaschool_backend/internals/databases"
	notificheScheduler "giuaschool_backend/internals/features/sistema/notifiche/scheduler"
	"giuaschool_backend/internals/features/sistema/notifiche/service"
	provisioningScheduler "giuaschool_backend/internals/features/sistema/provisioning/scheduler"
	helper "giuaschool_backend/internals/helpers"
	middlewares "giuaschool_backend/internals/middlewares"
	routes "giuaschool_backend/internals/route"
	"giuaschool_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// 🌱 `giuaschool seed` fills the default data and exits
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		db := configs.InitSeederDB()
		seeds.RunAllSeeds(db)
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Println("[SEED] ✅ Completato.")
		return
	}

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	var schedulers sync.WaitGroup

	// ⏱ queues: stalled commands back in line, then the schedulers
	provisioningScheduler.RipristinaAlAvvio(ctx, database.DB)
	provisioningScheduler.StartProvisioningCleanupScheduler(ctx, &schedulers, database.DB)
	if configs.MailerHost != "" {
		notificheScheduler.StartNotificheScheduler(ctx, &schedulers, database.DB, service.NewSMTPMittente())
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
	})
	middlewares.SetupMiddlewares(app)
	routes.SetupRoutes(app, database.Ping)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop the schedulers, the server, then the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)

	// a batch in flight finishes before the pool goes away
	schedulers.Wait()
	database.Close()
}
