package main

import (
	"context"
	"fmt"
	"os"

	"github.com/devwork/cv-pipeline/internal/ner"
	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/internal/parser/events"
	"github.com/devwork/cv-pipeline/internal/parser/repository"
	"github.com/devwork/cv-pipeline/internal/refdata"
	"github.com/devwork/cv-pipeline/pkg/config"
	"github.com/devwork/cv-pipeline/pkg/database"
	"github.com/devwork/cv-pipeline/pkg/logger"
	"github.com/devwork/cv-pipeline/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("parser-vn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("parser-vn", cfg.Server.Environment)
	log.Info().Str("input", cfg.Parser.InputDir).Msg("starting Vietnamese CV parser")

	ctx := context.Background()

	// Load reference catalogs; embedded defaults cover a broken or
	// unconfigured catalog service
	catalogs := refdata.NewClient(cfg.RefData.ProvincesURL, cfg.RefData.SkillsURL, cfg.RefData.Timeout, log).Load(ctx)

	// Entity recognition: remote model first when configured, built-in
	// heuristics as fallback
	heuristic := ner.NewHeuristicRecognizer(catalogs.ProvinceNames())
	var recognizer ner.Recognizer = heuristic
	if cfg.NER.VietnameseURL != "" {
		recognizer = ner.NewChain(ner.NewHTTPRecognizer(cfg.NER.VietnameseURL, cfg.NER.Timeout), heuristic)
	}

	p := parser.New(parser.VietnameseProfile(), recognizer, catalogs, log)
	batch := parser.NewBatch(p, &cfg.Parser, log)

	// Optional Postgres sink
	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		batch = batch.WithStore(repository.NewRecordRepository(db))
	}

	// Optional event publishing
	if cfg.RabbitMQ.Enabled() {
		rmq, err := messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rmq.Close()

		pub, err := events.NewPublisher(rmq, "parser-vn", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
		batch = batch.WithEvents(pub)
	}

	summary, err := batch.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
