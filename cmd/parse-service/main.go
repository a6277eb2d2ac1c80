package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/devwork/cv-pipeline/internal/extract"
	"github.com/devwork/cv-pipeline/internal/langdetect"
	"github.com/devwork/cv-pipeline/internal/ner"
	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/internal/parser/handler"
	"github.com/devwork/cv-pipeline/internal/parser/repository"
	"github.com/devwork/cv-pipeline/internal/refdata"
	"github.com/devwork/cv-pipeline/pkg/config"
	"github.com/devwork/cv-pipeline/pkg/database"
	"github.com/devwork/cv-pipeline/pkg/httputil"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("parse-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("parse-service", cfg.Server.Environment)
	log.Info().Msg("starting Parse Service")

	ctx := context.Background()

	// Probe the OCR toolchain
	ocr := extract.NewOCR(cfg.Router.OCRLanguages, log)
	ocrAvailable := true
	if err := ocr.Available(); err != nil {
		log.Warn().Err(err).Msg("OCR toolchain not available, scanned PDFs will fail")
		ocr = nil
		ocrAvailable = false
	}

	registry := extract.NewRegistry(
		extract.NewPDFExtractor(ocr, log),
		extract.NewDOCXExtractor(log),
	)
	detector := langdetect.New(cfg.Router.MinDetectRunes)

	// Load reference catalogs
	catalogs := refdata.NewClient(cfg.RefData.ProvincesURL, cfg.RefData.SkillsURL, cfg.RefData.Timeout, log).Load(ctx)

	// Per-language entity recognition
	heuristic := ner.NewHeuristicRecognizer(catalogs.ProvinceNames())
	var enRecognizer ner.Recognizer = heuristic
	if cfg.NER.EnglishURL != "" {
		enRecognizer = ner.NewChain(ner.NewHTTPRecognizer(cfg.NER.EnglishURL, cfg.NER.Timeout), heuristic)
	}
	var vnRecognizer ner.Recognizer = heuristic
	if cfg.NER.VietnameseURL != "" {
		vnRecognizer = ner.NewChain(ner.NewHTTPRecognizer(cfg.NER.VietnameseURL, cfg.NER.Timeout), heuristic)
	}

	enParser := parser.New(parser.EnglishProfile(), enRecognizer, catalogs, log)
	vnParser := parser.New(parser.VietnameseProfile(), vnRecognizer, catalogs, log)

	parseHandler := handler.NewParseHandler(registry, detector, enParser, vnParser, log)

	// Optional Postgres sink
	var db *database.DB
	if cfg.Database.Enabled {
		db, err = database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		parseHandler = parseHandler.WithStore(repository.NewRecordRepository(db))
	}

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]interface{}{
			"status":    "healthy",
			"service":   "parse-service",
			"ocr":       ocrAvailable,
			"provinces": len(catalogs.Provinces()),
		}
		if db != nil {
			health["database"] = db.Health(r.Context())
		}
		httputil.JSON(w, http.StatusOK, health)
	})

	// API routes
	r.Post("/api/v1/parse", parseHandler.Parse)

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
