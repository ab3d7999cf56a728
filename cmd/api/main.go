package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tadeasf/czech-nlp/db"
	"github.com/tadeasf/czech-nlp/internal/handler"
	"github.com/tadeasf/czech-nlp/internal/nlp"
	"github.com/tadeasf/czech-nlp/internal/nlp/czech"
	"github.com/tadeasf/czech-nlp/pkg/embed"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	slog.Info("initializing Czech NLP models...")

	resources := czech.Default()
	if path := os.Getenv("NLP_RESOURCES"); path != "" {
		var err error
		resources, err = czech.Load(path)
		if err != nil {
			log.Fatalf("error loading language resources: %v", err)
		}
		slog.Info("loaded language resource overrides", "path", path)
	}

	embedder, modelName := newEmbedder()

	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		embedder = embed.NewCached(embedder, db.Redis, modelName)
		slog.Info("embedding cache enabled", "model", modelName)
	}

	processor, err := nlp.New(embedder, resources)
	if err != nil {
		log.Fatalf("error initializing NLP processor: %v", err)
	}

	slog.Info("Czech NLP models initialized successfully")

	nlpHandler := handler.NewNLPHandler(processor)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:3001"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", nlpHandler.Health)
	r.POST("/topics", nlpHandler.AnalyzeTopics)
	r.POST("/semantic", nlpHandler.AnalyzeSemantics)
	r.POST("/sentiment", nlpHandler.AnalyzeSentiment)
	r.POST("/batch-analysis", nlpHandler.BatchAnalysis)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newEmbedder() (embed.Embedder, string) {
	model := os.Getenv("EMBED_MODEL")

	switch os.Getenv("EMBED_PROVIDER") {
	case "ollama":
		client := embed.NewOllamaClient(os.Getenv("OLLAMA_HOST"), model)
		return client, client.ModelName()
	default:
		client := embed.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), model)
		return client, client.ModelName()
	}
}
