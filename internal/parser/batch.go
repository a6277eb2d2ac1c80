package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devwork/cv-pipeline/pkg/config"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// RecordStore persists parsed records. The JSON output file is always
// written; a store is an additional sink.
type RecordStore interface {
	Save(ctx context.Context, rec *Record) error
}

// EventSink publishes pipeline events for downstream consumers
type EventSink interface {
	RecordParsed(ctx context.Context, locale string, rec *Record)
	BatchCompleted(ctx context.Context, summary *BatchSummary)
}

// BatchSummary describes one batch run
type BatchSummary struct {
	BatchID    string
	Locale     string
	Total      int
	Parsed     int
	Skipped    int
	Failed     int
	OutputFile string
	Duration   time.Duration
}

// Batch runs the parser over every text file in a language partition
// and writes one JSON array with the results.
type Batch struct {
	parser     *Parser
	inputDir   string
	outputFile string
	minRunes   int
	store      RecordStore
	events     EventSink
	log        *logger.Logger
}

// NewBatch creates a batch runner over the configured partition
func NewBatch(p *Parser, cfg *config.ParserConfig, log *logger.Logger) *Batch {
	return &Batch{
		parser:     p,
		inputDir:   cfg.InputDir,
		outputFile: cfg.OutputFile,
		minRunes:   cfg.MinRunes,
		log:        log.WithComponent("batch-" + p.Locale()),
	}
}

// WithStore adds a persistence sink for parsed records
func (b *Batch) WithStore(store RecordStore) *Batch {
	b.store = store
	return b
}

// WithEvents adds an event sink for batch progress
func (b *Batch) WithEvents(events EventSink) *Batch {
	b.events = events
	return b
}

// Run parses every .txt file in the input directory. A file that cannot
// be read or is too short is logged and skipped; the batch always runs
// to completion. The output file is replaced atomically at the end.
func (b *Batch) Run(ctx context.Context) (*BatchSummary, error) {
	start := time.Now()
	summary := &BatchSummary{
		BatchID:    uuid.New().String(),
		Locale:     b.parser.Locale(),
		OutputFile: b.outputFile,
	}
	log := b.log.WithBatchID(summary.BatchID)

	files, err := filepath.Glob(filepath.Join(b.inputDir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("scan input dir: %w", err)
	}
	if len(files) == 0 {
		log.Warn().Str("dir", b.inputDir).Msg("no text files found")
		return summary, nil
	}
	sort.Strings(files)
	summary.Total = len(files)

	records := make([]*Record, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)

		data, err := os.ReadFile(path)
		if err != nil {
			summary.Failed++
			log.Error().Err(err).Str("file", name).Msg("failed to read file")
			continue
		}

		text := strings.TrimSpace(string(data))
		if len([]rune(text)) < b.minRunes {
			summary.Skipped++
			log.Debug().Str("file", name).Msg("skipping small or empty file")
			continue
		}

		rec := b.parser.Parse(ctx, text, name)
		records = append(records, rec)
		summary.Parsed++

		if b.store != nil {
			if err := b.store.Save(ctx, rec); err != nil {
				log.Warn().Err(err).Str("file", name).Msg("failed to persist record")
			}
		}
		if b.events != nil {
			b.events.RecordParsed(ctx, summary.Locale, rec)
		}
	}

	if err := writeRecords(b.outputFile, records); err != nil {
		return nil, err
	}

	summary.Duration = time.Since(start)
	if b.events != nil {
		b.events.BatchCompleted(ctx, summary)
	}

	log.Info().
		Int("total", summary.Total).
		Int("parsed", summary.Parsed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Str("output", b.outputFile).
		Dur("duration", summary.Duration).
		Msg("batch completed")

	return summary, nil
}

// writeRecords writes the JSON array via a temp file and rename so a
// concurrent reader never sees a partial file.
func writeRecords(outputFile string, records []*Record) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	tmp := outputFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, outputFile); err != nil {
		return fmt.Errorf("replace output file: %w", err)
	}
	return nil
}
