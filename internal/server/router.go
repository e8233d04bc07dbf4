package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfa-project/specgen/internal/auth"
)

// NewRouter wires the API routes onto a gin engine. The same wiring is used
// by the server binary and the integration tests.
func NewRouter(router *gin.Engine, handler *Handler, jwtManager *auth.JWTManager, pool *pgxpool.Pool) {
	// Health checks at the root, unauthenticated.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/ready", func(c *gin.Context) {
		if err := pool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "database connection failed",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	api := router.Group("/api")

	// Public routes (no authentication required)
	api.POST("/auth/signup", handler.Signup)
	api.POST("/auth/login", handler.Login)

	// Protected routes (require JWT authentication)
	protected := api.Group("")
	protected.Use(auth.RequireAuth(jwtManager))

	protected.GET("/specifications", handler.ListSpecifications)
	protected.POST("/specifications", handler.CreateSpecification)
	protected.GET("/specifications/:id", handler.GetSpecification)
	protected.PUT("/specifications/:id", handler.UpdateSpecification)
	protected.DELETE("/specifications/:id", handler.DeleteSpecification)
}
