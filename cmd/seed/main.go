// cmd/seed/main.go — Loads the built-in demo catalog into the live database.
// Usage: go run ./cmd/seed
package main

import (
	"os"
	"time"

	"github.com/neelamenterprises/sajawatdesigns/internal/config"
	"github.com/neelamenterprises/sajawatdesigns/internal/infra"
	"github.com/neelamenterprises/sajawatdesigns/internal/mockdata"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if !cfg.LiveCatalogEnabled() {
		log.Fatal().Msg("SUPABASE_DB_URL and SUPABASE_SERVICE_KEY must be set to seed")
	}

	db, err := infra.NewDatabase(cfg.CatalogDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	// Upsert on primary key so re-running refreshes the demo rows without
	// touching records created through the admin API.
	categories := mockdata.Categories()
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed categories")
	}

	products := mockdata.Products()
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&products).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed products")
	}

	log.Info().
		Int("categories", len(categories)).
		Int("products", len(products)).
		Msg("demo catalog seeded")
}
