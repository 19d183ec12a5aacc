package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/stocklane/stocklane-backend/internal/composite"
	"github.com/stocklane/stocklane-backend/internal/modules/auth"
	"github.com/stocklane/stocklane-backend/internal/modules/product"
	"github.com/stocklane/stocklane-backend/internal/modules/purchase"
	"github.com/stocklane/stocklane-backend/internal/modules/report"
	"github.com/stocklane/stocklane-backend/internal/modules/sale"
	"github.com/stocklane/stocklane-backend/internal/modules/supplier"
	"github.com/stocklane/stocklane-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	policy := auth.DefaultPolicy()
	authService := auth.NewService(userRepo, secret)
	authHandler := auth.NewHandler(authService, policy)
	authHandler.RegisterPublicRoutes(router)

	// ── Inventory & Trading ─────────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)

	supplierRepo := supplier.NewPostgresRepository(db)
	supplierService := supplier.NewService(supplierRepo)

	purchaseRepo := purchase.NewPostgresRepository(db)
	purchaseService := purchase.NewService(purchaseRepo)

	saleRepo := sale.NewPostgresRepository(db)
	saleService := sale.NewService(saleRepo)

	reportRepo := report.NewPostgresRepository(db)
	reportService := report.NewService(reportRepo)

	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(policy, secret))
		authHandler.RegisterProtectedRoutes(r)
		user.NewHandler(userService).RegisterRoutes(r)
		product.NewHandler(productService).RegisterRoutes(r)
		supplier.NewHandler(supplierService).RegisterRoutes(r)
		purchase.NewHandler(purchaseService).RegisterRoutes(r)
		sale.NewHandler(saleService).RegisterRoutes(r)
		report.NewHandler(reportService).RegisterRoutes(r)
	})

	// ── Orphan sweeper ──────────────────────────────────────
	sweeper := composite.NewSweeper(map[string]composite.OrphanStore{
		"purchases": purchaseRepo,
		"sales":     saleRepo,
	}, sweepInterval(), sweepGrace(), log.Default())
	go sweeper.Run(ctx)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Stocklane API server starting on :%s\n", port)

	server := &http.Server{Addr: ":" + port, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func sweepInterval() time.Duration {
	if d, err := time.ParseDuration(os.Getenv("SWEEP_INTERVAL")); err == nil && d > 0 {
		return d
	}
	return time.Hour
}

func sweepGrace() time.Duration {
	if d, err := time.ParseDuration(os.Getenv("SWEEP_GRACE")); err == nil && d > 0 {
		return d
	}
	return time.Hour
}
