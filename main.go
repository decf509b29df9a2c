package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/princinho/ecomapi/config"
	"github.com/princinho/ecomapi/controllers"
	"github.com/princinho/ecomapi/database"
	"github.com/princinho/ecomapi/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The connection is established once and reused for the process
	// lifetime. A failed connection does not stop the server; /test
	// reports the state and storage operations fail until restart.
	var db database.Gateway
	if m, err := database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName); err != nil {
		log.Printf("mongodb connection failed: %v (starting without storage)", err)
		db = database.Disconnected{}
	} else {
		log.Printf("connected to mongodb database %q", m.Name())
		db = m
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	r.GET("/", controllers.Root())
	r.GET("/schema", controllers.GetSchema())
	r.GET("/test", controllers.TestDatabase(db, cfg))

	api := r.Group("/api")
	{
		api.GET("/categories", controllers.GetCategories(db))
		api.POST("/categories", controllers.AddCategory(db))
		api.GET("/products", controllers.GetProducts(db))
		api.POST("/products", controllers.AddProduct(db))
		api.POST("/uploads", controllers.UploadImages(cfg))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// corsMiddleware allows every origin (with credentials) when
// ALLOWED_ORIGINS is unset, otherwise only the listed origins.
func corsMiddleware(origins string) gin.HandlerFunc {
	allowOrigin := func(string) bool { return true }
	if strings.TrimSpace(origins) != "" {
		allowedOrigins := map[string]bool{}
		for _, origin := range strings.Split(origins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
		allowOrigin = func(origin string) bool {
			return allowedOrigins[origin]
		}
	}
	return cors.New(cors.Config{
		AllowOriginFunc:  allowOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
