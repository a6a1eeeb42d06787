package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-journal-be/internal/bootstrap"
	"ai-journal-be/internal/config"
	"ai-journal-be/internal/model"
	"ai-journal-be/internal/server"
	"ai-journal-be/internal/tracer"
	"ai-journal-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := bootstrap.OpenDatabase(cfg.Database)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// sqlite has no migration step of its own
	if cfg.Database.Driver == database.DriverSQLite {
		if err := database.Migrate(gormDB, model.AllModels()...); err != nil {
			log.Panicf("Unable to migrate sqlite DB: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg)
	defer container.Close()

	// 5. Start Background Services
	log.Println("[INFO] Starting enrichment consumer...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Unable to start enrichment consumer: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("[WARN] Server shutdown: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("[WARN] Server stopped: %v", err)
	}
}
