package main

import (
	"context"
	"log"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/config"
	"github.com/Dweirii/Learnify-Landing-Page/internal/database/migration"
	dbpostgres "github.com/Dweirii/Learnify-Landing-Page/internal/database/postgres"
	"github.com/Dweirii/Learnify-Landing-Page/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	seeders := []seeder.Seeder{
		seeder.JobsSeeder{},
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			log.Fatalf("seeder %s failed: %v", s.Name(), err)
		}
		log.Printf("seeder %s done", s.Name())
	}
}
