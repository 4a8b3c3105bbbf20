// Command migrate applies all pending database migrations and exits.
// Useful for deployments where the server runs with migrate_on_start
// disabled.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/slotswapper/backend/internal/adapter/postgres"
	"github.com/slotswapper/backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Println("migrations applied")
}
