package main

import (
	"log"
	"net/http"
	"os"

	"chatbox/config"
	"chatbox/jobs"
	"chatbox/routes"
	"chatbox/services"
	"chatbox/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	var sessions services.SessionStore
	if config.RedisClient != nil {
		sessions = services.NewRedisSessionStore(config.RedisClient, services.SessionTTL())
	} else {
		sessions = services.NewMemorySessionStore(services.SessionTTL())
	}

	c := cron.New()
	if err := jobs.InitCronJobs(c, sessions, logger.NewDefaultLogger(logger.InfoLevel)); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, sessions)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
