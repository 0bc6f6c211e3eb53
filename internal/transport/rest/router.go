package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"btyesteem/internal/catalog"
	"btyesteem/internal/service"
	"btyesteem/internal/transport/rest/handler"
	"btyesteem/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	ScheduleService   *service.ScheduleService
	Catalog           *catalog.Catalog
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	assessHandler := handler.NewAssessmentHandler(c.AssessmentService)
	qualityHandler := handler.NewQualityHandler(c.AssessmentService)
	catalogHandler := handler.NewCatalogHandler(c.Catalog)
	scheduleHandler := handler.NewScheduleHandler(c.ScheduleService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments", assessHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}", assessHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/items", catalogHandler.Items).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/strengths", catalogHandler.Strengths).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/themes", catalogHandler.Themes).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/quality/{submissionId}", qualityHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/schedules", scheduleHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/schedules/{submissionId}", scheduleHandler.GetBySubmission).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/schedules/{id}/cancel", scheduleHandler.Cancel).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
