package rest

import (
	"greenmind/internal/service"
	"greenmind/internal/transport/rest/handler"
	"greenmind/internal/transport/rest/middleware"
	"greenmind/internal/transport/ws"
	"net/http"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService          *service.AuthService
	ScenarioService      *service.ScenarioService
	BehaviorModelService *service.BehaviorModelService
	TemplateService      *service.TemplateService
	QuestionSetService   *service.QuestionSetService
	ResultsService       *service.ResultsService
	WSHub                *ws.Hub
	CORSAllowedOrigins   string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	scenarioHandler := handler.NewScenarioHandler(c.ScenarioService)
	userHandler := handler.NewUserHandler(c.ScenarioService)
	modelHandler := handler.NewBehaviorModelHandler(c.BehaviorModelService, c.TemplateService)
	setHandler := handler.NewQuestionSetHandler(c.QuestionSetService)
	resultsHandler := handler.NewResultsHandler(c.ResultsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSAllowedOrigins))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes
	admin := v1.NewRoute().Subrouter()
	admin.Use(authMW.RequireAdmin)

	// export/import must be registered before /scenarios/{id}
	admin.HandleFunc("/scenarios/export", scenarioHandler.Export).Methods("GET", "OPTIONS")
	admin.HandleFunc("/scenarios/import", scenarioHandler.Import).Methods("POST", "OPTIONS")
	admin.HandleFunc("/scenarios", scenarioHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/scenarios", scenarioHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}", scenarioHandler.Get).Methods("GET", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}", scenarioHandler.Delete).Methods("DELETE", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}/questions", scenarioHandler.AttachQuestions).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}/question-set", scenarioHandler.AttachQuestionSet).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}/simulate", scenarioHandler.Simulate).Methods("POST", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}/simulated", scenarioHandler.Simulated).Methods("GET", "OPTIONS")

	// Results
	admin.HandleFunc("/scenarios/{id}/feedback", resultsHandler.SubmitFeedback).Methods("POST", "OPTIONS")
	admin.HandleFunc("/scenarios/{id}/analytics", resultsHandler.Analytics).Methods("GET", "OPTIONS")

	// Population
	admin.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/users", userHandler.Upsert).Methods("POST", "OPTIONS")
	admin.HandleFunc("/users/sync", userHandler.Sync).Methods("POST", "OPTIONS")

	// Behavior models and templates
	admin.HandleFunc("/behavior-models", modelHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/behavior-models", modelHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/behavior-models/{id}", modelHandler.Get).Methods("GET", "OPTIONS")
	admin.HandleFunc("/behavior-models/{id}", modelHandler.Update).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/behavior-models/{id}", modelHandler.Delete).Methods("DELETE", "OPTIONS")
	admin.HandleFunc("/behavior-models/{id}/templates", modelHandler.GenerateTemplates).Methods("POST", "OPTIONS")
	admin.HandleFunc("/behavior-models/{id}/templates", modelHandler.ListTemplates).Methods("GET", "OPTIONS")

	// Question sets
	admin.HandleFunc("/question-sets", setHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/question-sets", setHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/question-sets/{id}", setHandler.Get).Methods("GET", "OPTIONS")
	admin.HandleFunc("/question-sets/{id}", setHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
