// Package routes wires HTTP paths to handlers.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lukaism/tibber-technical-case/services/robotpath/handlers"
)

// SetupRoutes registers every route the robotpath service exposes.
func SetupRoutes(router *gin.Engine, pathHandler handlers.PathHandler) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/tibber-developer-test/enter-path", pathHandler.HandleEnterPath)
}
