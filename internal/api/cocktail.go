package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quenchlab/barkeep/internal/service"
	"github.com/quenchlab/barkeep/internal/store"
)

// maxThreshold caps the similarity threshold callers may request; above
// this almost nothing matches and the query is considered malformed input.
const maxThreshold = 0.95

type CocktailHandler struct {
	store       *store.CatalogStore
	recommender *service.RecommenderService
}

func NewCocktailHandler(store *store.CatalogStore, recommender *service.RecommenderService) *CocktailHandler {
	return &CocktailHandler{
		store:       store,
		recommender: recommender,
	}
}

func (h *CocktailHandler) RegisterRoutes(router *gin.RouterGroup) {
	cocktails := router.Group("/cocktails")
	{
		cocktails.GET("", h.ListByCategory)
		cocktails.GET("/search", h.SearchByName)
		cocktails.GET("/random", h.Random)
	}
	router.POST("/recommendations", h.Recommend)
}

// ListByCategory handles GET /cocktails?category=...&limit=...
func (h *CocktailHandler) ListByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	limit := queryInt(c, "limit", service.DefaultLimit)

	cocktails := h.store.FindByCategory(c.Request.Context(), category, limit)
	c.JSON(http.StatusOK, gin.H{"cocktails": cocktails})
}

// SearchByName handles GET /cocktails/search?name=...
func (h *CocktailHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	cocktails := h.store.FindByName(c.Request.Context(), name)
	c.JSON(http.StatusOK, gin.H{"cocktails": cocktails})
}

// Random handles GET /cocktails/random?limit=...
func (h *CocktailHandler) Random(c *gin.Context) {
	limit := queryInt(c, "limit", 5)

	cocktails := h.store.Random(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{"cocktails": cocktails})
}

// RecommendRequest is the body of POST /recommendations.
type RecommendRequest struct {
	service.Preferences
	Limit     int      `json:"limit"`
	Threshold *float64 `json:"threshold"`
}

// Recommend handles POST /recommendations.
func (h *CocktailHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = service.DefaultLimit
	}
	threshold := service.DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if threshold < 0 || threshold > maxThreshold {
		c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be between 0 and 0.95"})
		return
	}

	recommendations := h.recommender.Recommend(c.Request.Context(), req.Preferences, limit, threshold)
	if recommendations == nil {
		recommendations = []service.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// Health handles GET /health, reporting store reachability and catalog size.
func (h *CocktailHandler) Health(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "catalog unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cocktails": count})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
