package main

import (
	"log"

	"dataagent/ai"
	"dataagent/cache"
	"dataagent/config"
	"dataagent/db"
	_ "dataagent/docs" // Swagger docs
	"dataagent/handlers"
	"dataagent/insight"
	"dataagent/service"
	"dataagent/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg := config.GetConfig()

	// In-memory store for the session snapshot and recent results
	database, err := db.New(cfg.ResultTTL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	answerCache := cache.New(cfg.CacheTTL)
	if !answerCache.Enabled() {
		log.Println("Answer cache disabled")
	}

	dispatcher, err := ai.New(cfg, answerCache)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	apiKey := cfg.GeminiAPIKey
	if cfg.Provider == config.ProviderOpenAI {
		apiKey = cfg.OpenAIAPIKey
	}
	if apiKey == "" {
		log.Printf("Warning: no API key configured for %s, every query will return the error result", cfg.Provider)
	}

	results, err := service.NewResultsStorage(cfg.ResultsDir)
	if err != nil {
		log.Fatalf("Failed to initialize results storage: %v", err)
	}

	store := session.NewStore(database)
	queries := service.NewQueryService(dispatcher, insight.RegexExtractor{}, store, database)

	h := handlers.New(database, answerCache, queries, store, results, cfg.Provider)

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.RegisterRoutes(r)

	log.Printf("Server starting on port %s (provider=%s, model=%s)", cfg.Port, cfg.Provider, cfg.ModelName)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "Accept", "Cache-Control", "X-Requested-With")
	c.ExposeHeaders = []string{"Content-Disposition"}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
