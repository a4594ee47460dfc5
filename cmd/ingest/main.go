package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/quenchlab/barkeep/config"
	"github.com/quenchlab/barkeep/internal/database"
	"github.com/quenchlab/barkeep/internal/ingest"
	"github.com/quenchlab/barkeep/internal/service"
	"github.com/quenchlab/barkeep/internal/store"
)

func main() {
	dataPath := flag.String("data", "data/final_cocktails.csv", "path to the cocktails CSV file")
	flag.Parse()

	if _, err := os.Stat(*dataPath); err != nil {
		log.Printf("Dataset not found at %s", *dataPath)
		log.Fatalf("Download it from https://www.kaggle.com/datasets/aadyasingh55/cocktails/data and place it there, or pass -data")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure catalog schema: %v", err)
	}

	ingestor := ingest.NewIngestor(store.NewCatalogStore(db), service.NewEmbeddingService(cfg))
	if err := ingestor.Run(context.Background(), *dataPath); err != nil {
		log.Fatalf("Ingestion failed, prior catalog left intact: %v", err)
	}
	log.Println("All cocktails stored successfully")
}
