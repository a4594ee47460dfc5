package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/quenchlab/barkeep/config"
	"github.com/quenchlab/barkeep/internal/api"
	"github.com/quenchlab/barkeep/internal/database"
	"github.com/quenchlab/barkeep/internal/router"
	"github.com/quenchlab/barkeep/internal/server"
	"github.com/quenchlab/barkeep/internal/service"
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
		log.Fatalf("Failed to ensure catalog schema: %v", err)
	}

	catalog := store.NewCatalogStore(db)
	embedder := service.NewEmbeddingService(cfg)
	cache := service.NewEmbeddingCache(cfg)
	recommender := service.NewRecommenderService(catalog, embedder, cache)

	handler := api.NewCocktailHandler(catalog, recommender)
	srv := server.New(router.SetupRouter(handler), cfg)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
