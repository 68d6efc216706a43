package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/cypress-app/cypress-api/internal/auth"
	"github.com/cypress-app/cypress-api/internal/config"
	"github.com/cypress-app/cypress-api/internal/db"
	"github.com/cypress-app/cypress-api/internal/handlers"
	mw "github.com/cypress-app/cypress-api/internal/middleware"
	"github.com/cypress-app/cypress-api/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(dbConn); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	users := store.NewUserStore(dbConn)
	reports := store.NewReportStore(dbConn)

	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	authSvc := auth.NewService(users, tokens)

	h := handlers.NewHandler(authSvc, reports)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Permissive for development; tighten before exposing publicly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public
	r.Get("/", handlers.Root)
	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Get("/reports", h.Reports.ListReports)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth(authSvc))

		r.Post("/reports", h.Reports.CreateReport)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
