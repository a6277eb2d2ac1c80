// Package router partitions CV documents by language. It extracts raw
// text, cleans it and writes one text file per document into the
// matching language folder, where the per-language parsers pick it up.
package router

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/devwork/cv-pipeline/internal/cleaner"
	"github.com/devwork/cv-pipeline/internal/extract"
	"github.com/devwork/cv-pipeline/internal/langdetect"
	"github.com/devwork/cv-pipeline/pkg/config"
	"github.com/devwork/cv-pipeline/pkg/logger"
	"github.com/devwork/cv-pipeline/pkg/messaging"
)

// Summary counts the outcome of one routing run
type Summary struct {
	Total      int
	Vietnamese int
	English    int
	Unknown    int
	Errors     int
}

// Service routes CV documents into language partitions
type Service struct {
	registry *extract.Registry
	detector *langdetect.Detector
	cfg      *config.RouterConfig
	pub      *messaging.Publisher
	log      *logger.Logger
}

// New creates a routing service
func New(registry *extract.Registry, detector *langdetect.Detector, cfg *config.RouterConfig, log *logger.Logger) *Service {
	return &Service{
		registry: registry,
		detector: detector,
		cfg:      cfg,
		log:      log.WithComponent("router"),
	}
}

// WithPublisher adds an optional event publisher for routed files
func (s *Service) WithPublisher(pub *messaging.Publisher) *Service {
	s.pub = pub
	return s
}

// Run routes every supported file in the input directory. Per-file
// failures are logged and counted; the run itself only fails when the
// input directory cannot be read or contains nothing to do.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	entries, err := os.ReadDir(s.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.registry.SupportedFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no supported files found in %s", s.cfg.InputDir)
	}
	sort.Strings(files)

	summary := &Summary{Total: len(files)}
	for _, name := range files {
		s.routeFile(ctx, name, summary)
	}

	s.log.Info().
		Int("total", summary.Total).
		Int("vietnamese", summary.Vietnamese).
		Int("english", summary.English).
		Int("unknown", summary.Unknown).
		Int("errors", summary.Errors).
		Str("output", s.cfg.OutputDir).
		Msg("routing completed")

	return summary, nil
}

func (s *Service) routeFile(ctx context.Context, name string, summary *Summary) {
	log := s.log.WithFile(name)
	path := filepath.Join(s.cfg.InputDir, name)

	extractor := s.registry.FindExtractor(path)
	raw, err := extractor.Extract(ctx, path)
	if err != nil {
		summary.Errors++
		log.Error().Err(err).Str("extractor", extractor.Name()).Msg("extraction failed")
		s.publishSkipped(ctx, name)
		return
	}

	text := cleaner.Clean(raw)
	if strings.TrimSpace(text) == "" {
		summary.Errors++
		log.Warn().Msg("no text extracted")
		s.publishSkipped(ctx, name)
		return
	}

	lang := s.detector.Detect(text)
	outputDir := s.partitionDir(lang)
	switch lang {
	case langdetect.Vietnamese:
		summary.Vietnamese++
	case langdetect.English:
		summary.English++
	default:
		summary.Unknown++
		log.Warn().Str("bucket", outputDir).Msg("language detection inconclusive")
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		summary.Errors++
		log.Error().Err(err).Msg("failed to create partition dir")
		return
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outputPath := filepath.Join(outputDir, stem+"_extracted.txt")

	// Plain overwrite: re-running the router on the same input is
	// idempotent and refreshes stale extractions.
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		summary.Errors++
		log.Error().Err(err).Msg("failed to write partition file")
		return
	}

	log.Info().Str("language", string(lang)).Str("output", outputPath).Msg("file routed")
	s.publishRouted(ctx, name, string(lang), outputPath)
}

// partitionDir maps a detected language to its output folder. Unknown
// documents go to the english partition unless a dedicated unknown
// bucket is configured.
func (s *Service) partitionDir(lang langdetect.Language) string {
	switch lang {
	case langdetect.Vietnamese:
		return filepath.Join(s.cfg.OutputDir, "vietnamese")
	case langdetect.English:
		return filepath.Join(s.cfg.OutputDir, "english")
	default:
		if s.cfg.UnknownDir != "" {
			return s.cfg.UnknownDir
		}
		return filepath.Join(s.cfg.OutputDir, "english")
	}
}

func (s *Service) publishRouted(ctx context.Context, name, lang, outputPath string) {
	if s.pub == nil {
		return
	}
	event := messaging.FileRoutedEvent{SourceFile: name, Language: lang, OutputPath: outputPath}
	if err := s.pub.Publish(ctx, messaging.EventFileRouted, event); err != nil {
		s.log.Warn().Err(err).Str("file", name).Msg("failed to publish routing event")
	}
}

func (s *Service) publishSkipped(ctx context.Context, name string) {
	if s.pub == nil {
		return
	}
	event := messaging.FileRoutedEvent{SourceFile: name}
	if err := s.pub.Publish(ctx, messaging.EventRoutingSkipped, event); err != nil {
		s.log.Warn().Err(err).Str("file", name).Msg("failed to publish routing event")
	}
}
