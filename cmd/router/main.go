package main

import (
	"context"
	"fmt"
	"os"

	"github.com/devwork/cv-pipeline/internal/extract"
	"github.com/devwork/cv-pipeline/internal/langdetect"
	"github.com/devwork/cv-pipeline/internal/router"
	"github.com/devwork/cv-pipeline/pkg/config"
	"github.com/devwork/cv-pipeline/pkg/logger"
	"github.com/devwork/cv-pipeline/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("router")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("router", cfg.Server.Environment)
	log.Info().Str("input", cfg.Router.InputDir).Msg("starting CV router")

	// Probe the OCR toolchain; a missing toolchain only disables the
	// scanned-PDF fallback unless configuration insists on it
	ocr := extract.NewOCR(cfg.Router.OCRLanguages, log)
	if err := ocr.Available(); err != nil {
		if cfg.Router.RequireOCR {
			log.Fatal().Err(err).Msg("OCR toolchain required but not available")
		}
		log.Warn().Err(err).Msg("OCR toolchain not available, scanned PDFs will fail")
		ocr = nil
	}

	registry := extract.NewRegistry(
		extract.NewPDFExtractor(ocr, log),
		extract.NewDOCXExtractor(log),
	)
	detector := langdetect.New(cfg.Router.MinDetectRunes)

	svc := router.New(registry, detector, &cfg.Router, log)

	// Optional event publishing
	if cfg.RabbitMQ.Enabled() {
		rmq, err := messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rmq.Close()

		pub, err := messaging.NewPublisher(rmq, messaging.ExchangeCVEvents, "router", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
		svc = svc.WithPublisher(pub)
	}

	summary, err := svc.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("routing failed")
	}

	if summary.Errors > 0 {
		os.Exit(1)
	}
}
