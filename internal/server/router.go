package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/teachsmart-backend/internal/handlers"
)

type RouterConfig struct {
	HealthHandler   *handlers.HealthHandler
	ResourceHandler *handlers.ResourceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	router.GET("/health", cfg.HealthHandler.HealthCheck)

	router.POST("/generate-resource", cfg.ResourceHandler.GenerateResource)
	router.POST("/predict-student", cfg.ResourceHandler.PredictStudent)
	router.POST("/generate-activity", cfg.ResourceHandler.GenerateActivity)
	router.GET("/get-aet-targets", cfg.ResourceHandler.GetAETTargets)

	return router
}
