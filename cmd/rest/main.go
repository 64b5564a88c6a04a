package main

import (
	"context"
	"log"

	"agegate-admin-be/internal/bootstrap"
	"agegate-admin-be/internal/config"
	"agegate-admin-be/internal/server"
	"agegate-admin-be/internal/tracer"
	"agegate-admin-be/pkg/database"
)

func main() {
	// 1. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	if err := container.DispatcherService.Dispatch(context.Background()); err != nil {
		log.Printf("Background Dispatcher Error: %v", err)
	}
	if err := container.SummaryService.Start(); err != nil {
		log.Printf("Background Summary Scheduler Error: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
