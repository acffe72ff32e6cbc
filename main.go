package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Karthick-Office/ecom/config"
	"github.com/Karthick-Office/ecom/middleware"
	"github.com/Karthick-Office/ecom/platform"
	"github.com/Karthick-Office/ecom/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())

	// /metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	bundle, idp, err := platform.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error connecting platform clients: %v", err)
	}

	// Nightly cleanup of stale sessions and expired recovery codes.
	s := gocron.NewScheduler(time.UTC)
	s.Every(1).Day().At("03:00").Do(func() {
		if err := idp.PurgeExpired(context.Background()); err != nil {
			log.Printf("Error purging expired sessions: %v", err)
		}
	})
	s.StartAsync()

	routes.InitializeRoutes(r, []byte(cfg.APIKey), bundle)

	r.Run(":" + cfg.Port)
}
