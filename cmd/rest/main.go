package main

import (
	"context"
	"log"

	"ducochat-be/internal/bootstrap"
	"ducochat-be/internal/config"
	"ducochat-be/internal/server"
	"ducochat-be/internal/tracer"
	"ducochat-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()
	if missing := cfg.Validate(); len(missing) > 0 {
		log.Printf("[WARN] Missing environment variables: %v", missing)
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.NatsPub.Close()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Bot Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()
	go container.FeedService.Start()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
