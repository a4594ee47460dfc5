package main

import (
	"log"

	"github.com/quenchlab/barkeep/config"
	"github.com/quenchlab/barkeep/internal/database"
	"github.com/quenchlab/barkeep/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := store.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to set up catalog schema: %v", err)
	}
	log.Println("pgvector extension and cocktails table set up successfully")
}
