package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-comments/internal/middleware"
)

// NewRouter builds the gin engine with middleware, probes, metrics and the
// versioned API.
func NewRouter(comments *CommentHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	health.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	comments.Register(v1)

	return router
}
