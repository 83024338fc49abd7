package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sony/gobreaker"

	"github.com/psatpute/HOA-OPs-AI/config"
	"github.com/psatpute/HOA-OPs-AI/db"
	"github.com/psatpute/HOA-OPs-AI/handlers"
	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/services"
	"github.com/psatpute/HOA-OPs-AI/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Init(cfg.App.Environment)
	logging.Logger.Info("Starting HOA operations backend")

	ctx := context.Background()
	mongo, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		logging.Logger.Fatalf("Database connection failed: %v", err)
	}
	defer func() {
		if err := mongo.Close(context.Background()); err != nil {
			logging.Logger.Errorf("Failed to close MongoDB connection: %v", err)
		}
	}()
	logging.Logger.Info("Connected to MongoDB")

	if err := mongo.EnsureIndexes(ctx); err != nil {
		logging.Logger.Fatalf("Failed to create indexes: %v", err)
	}

	fileStore := &utils.FileStore{
		BaseDir:     cfg.Upload.Dir,
		MaxFileSize: cfg.Upload.MaxFileSize,
	}

	aiBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "OpenAIChat",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	userService := services.NewUserService(mongo.Database)
	projectService := services.NewProjectService(mongo.Database)
	proposalService := services.NewProposalService(mongo.Database)
	expenseService := services.NewExpenseService(mongo.Database)
	incomeService := services.NewIncomeService(mongo.Database)
	documentService := services.NewDocumentService(mongo.Database)
	dashboardService := services.NewDashboardService(mongo.Database)
	aiService := services.NewAIService(cfg.AI.OpenAIKey, aiBreaker)

	jwtSecret := []byte(cfg.Auth.JWTSecret)
	tokenTTL := time.Duration(cfg.Auth.TokenExpires) * time.Second

	authHandler := handlers.NewAuthHandler(userService, jwtSecret, tokenTTL)
	projectHandler := handlers.NewProjectHandler(projectService)
	proposalHandler := handlers.NewProposalHandler(proposalService, fileStore)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, cfg.Upload.MaxFileSize)
	documentHandler := handlers.NewDocumentHandler(documentService, fileStore)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	aiHandler := handlers.NewAIHandler(aiService)
	healthHandler := handlers.NewHealthHandler(mongo)

	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.App.CORSOrigins))

	// Public routes
	r.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/ai/chat", aiHandler.Chat).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	// Authenticated routes
	api := r.NewRoute().Subrouter()
	api.Use(middleware.JWTAuth(jwtSecret, userService))

	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Get).Methods("GET")
	api.HandleFunc("/projects/{id}/comparison", projectHandler.Comparison).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Update).Methods("PATCH")
	api.HandleFunc("/projects/{id}", projectHandler.Archive).Methods("DELETE")

	api.HandleFunc("/proposals", proposalHandler.Create).Methods("POST")
	api.HandleFunc("/proposals", proposalHandler.List).Methods("GET")
	api.HandleFunc("/proposals/{id}", proposalHandler.Get).Methods("GET")
	api.HandleFunc("/proposals/{id}", proposalHandler.Update).Methods("PATCH")
	api.HandleFunc("/proposals/{id}", proposalHandler.Archive).Methods("DELETE")

	api.HandleFunc("/expenses", expenseHandler.Create).Methods("POST")
	api.HandleFunc("/expenses", expenseHandler.List).Methods("GET")
	api.HandleFunc("/expenses/{id}", expenseHandler.Get).Methods("GET")

	api.HandleFunc("/income", incomeHandler.Create).Methods("POST")
	api.HandleFunc("/income", incomeHandler.List).Methods("GET")
	api.HandleFunc("/income/import", incomeHandler.Import).Methods("POST")

	api.HandleFunc("/documents", documentHandler.Create).Methods("POST")
	api.HandleFunc("/documents", documentHandler.List).Methods("GET")
	api.HandleFunc("/documents/{id}", documentHandler.Get).Methods("GET")
	api.HandleFunc("/documents/{id}", documentHandler.Update).Methods("PATCH")
	api.HandleFunc("/documents/{id}", documentHandler.Archive).Methods("DELETE")

	api.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods("GET")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logging.Logger.Infof("Server is running on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logging.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
