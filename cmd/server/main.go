package main

import (
	"context"
	"greenmind/internal/cache"
	"greenmind/internal/config"
	"greenmind/internal/repository"
	"greenmind/internal/scenario"
	"greenmind/internal/service"
	"greenmind/internal/transport/rest"
	"greenmind/internal/transport/ws"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title GreenMind Scenario API
// @version 1.0
// @description Behavioral scenario targeting and distribution simulator
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Templates: %s", aiConfig.TemplateModel)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (using mock generator)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	defer wsHub.Close()
	log.Println("WebSocket hub started")

	// Scenario store
	var sampler *scenario.Sampler
	if cfg.SimulationSeedSet {
		sampler = scenario.NewSeededSampler(cfg.SimulationSeed)
		log.Printf("Sampler seeded with %d", cfg.SimulationSeed)
	} else {
		sampler = scenario.NewEntropySampler()
	}
	store := scenario.NewStore(sampler)

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	modelRepo := repository.NewBehaviorModelRepo(db)
	templateRepo := repository.NewTemplateRepo(db)
	setRepo := repository.NewQuestionSetRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)

	// Initialize caches
	templateCache := cache.NewTemplateCache(rdb)
	analyticsCache := cache.NewAnalyticsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	scenarioSvc := service.NewScenarioService(store, userRepo, setRepo)
	modelSvc := service.NewBehaviorModelService(modelRepo, templateCache)
	templateSvc := service.NewTemplateService(aiConfig, modelRepo, templateRepo, templateCache)
	setSvc := service.NewQuestionSetService(setRepo, templateRepo)
	resultsSvc := service.NewResultsService(store, feedbackRepo, analyticsCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	scenarioSvc.SetBroadcaster(wsHub)
	scenarioSvc.SetAnalyticsCache(analyticsCache)

	// Load the population; the server still starts on an empty store
	syncCtx, syncCancel := context.WithTimeout(ctx, 10*time.Second)
	if _, err := scenarioSvc.SyncUsers(syncCtx); err != nil {
		log.Printf("Warning: initial user sync failed: %v", err)
	}
	syncCancel()

	// Create router with container
	container := &rest.Container{
		AuthService:          authSvc,
		ScenarioService:      scenarioSvc,
		BehaviorModelService: modelSvc,
		TemplateService:      templateSvc,
		QuestionSetService:   setSvc,
		ResultsService:       resultsSvc,
		WSHub:                wsHub,
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Admin auth: username=%s", cfg.AdminUsername)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/scenarios")
		log.Println("  POST /v1/scenarios/{id}/simulate")
		log.Println("  GET  /v1/scenarios/export")
		log.Println("  POST/GET /v1/behavior-models")
		log.Println("  POST/GET /v1/question-sets")
		log.Println("  GET  /v1/scenarios/{id}/analytics")
		log.Println("  WS  /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
