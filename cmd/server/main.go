package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/guiklos/lcpc-v2/internal/api"
	"github.com/guiklos/lcpc-v2/internal/catalog"
	"github.com/guiklos/lcpc-v2/internal/config"
	"github.com/guiklos/lcpc-v2/internal/handlers"
	"github.com/guiklos/lcpc-v2/internal/middleware"
	"github.com/guiklos/lcpc-v2/internal/service"
	"github.com/guiklos/lcpc-v2/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting order desk server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"upstream", cfg.Upstream.BaseURL,
		"log_level", cfg.LogLevel,
	)

	// Upstream persistence API client
	upstream := api.New(cfg.Upstream.BaseURL, cfg.Upstream.Token, time.Duration(cfg.Upstream.Timeout)*time.Second)

	// Load the reference data the dropdowns and lookups need. A failed
	// initial load is not fatal: lookups fall back to "unknown" and the
	// catalog can be refreshed through the API once the upstream is back.
	snapshot := catalog.NewSnapshot()
	if err := snapshot.Refresh(context.Background(), upstream); err != nil {
		log.Error("initial catalog load failed", "error", err)
	} else {
		log.Info("catalog loaded", "stats", snapshot.Stats())
	}

	// Initialize services
	orderService := service.NewOrderService(upstream, snapshot)
	reportService := service.NewReportService(upstream)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService, log)
	catalogHandler := handlers.NewCatalogHandler(snapshot, upstream, log)
	reportHandler := handlers.NewReportHandler(reportService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", handlers.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.Auth.JWTSecret))

		// Reference data endpoints
		r.Get("/clients", catalogHandler.ListClients)
		r.Get("/cities", catalogHandler.ListCities)
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/users", catalogHandler.ListUsers)
		r.Post("/catalog/refresh", catalogHandler.Refresh)

		// Order endpoints
		r.Get("/orders", orderHandler.ListOrders)
		r.Post("/orders", orderHandler.CreateOrder)
		r.Post("/orders/preview", orderHandler.PreviewOrder)
		r.Put("/orders/{orderId}", orderHandler.UpdateOrder)
		r.Delete("/orders/{orderId}", orderHandler.DeleteOrder)
		r.Post("/orders/{orderId}/ship", orderHandler.ShipOrder)

		// Report endpoints
		r.Get("/reports/orders", reportHandler.Orders)
		r.Get("/reports/billing", reportHandler.Billing)
		r.Get("/reports/top-products", reportHandler.TopProducts)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
