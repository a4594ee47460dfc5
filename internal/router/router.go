package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quenchlab/barkeep/internal/api"
)

// SetupRouter configures the application routes
func SetupRouter(cocktailHandler *api.CocktailHandler) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(cors.Default())

	router.GET("/health", cocktailHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	cocktailHandler.RegisterRoutes(v1)

	return router
}
