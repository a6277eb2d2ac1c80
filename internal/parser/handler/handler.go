// Package handler exposes the parsing pipeline over HTTP for the
// parse-service binary: one CV document in, one parsed record out.
package handler

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/devwork/cv-pipeline/internal/cleaner"
	"github.com/devwork/cv-pipeline/internal/extract"
	"github.com/devwork/cv-pipeline/internal/langdetect"
	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/pkg/errors"
	"github.com/devwork/cv-pipeline/pkg/httputil"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// maxUploadBytes caps CV uploads at 20 MB
const maxUploadBytes = 20 << 20

// minTextRunes mirrors the batch parser cutoff for useless documents
const minTextRunes = 20

// ParseHandler handles synchronous single-document parsing
type ParseHandler struct {
	registry *extract.Registry
	detector *langdetect.Detector
	parsers  map[langdetect.Language]*parser.Parser
	store    parser.RecordStore
	validate *validator.Validate
	log      *logger.Logger
}

// NewParseHandler creates a parse handler dispatching to per-language parsers
func NewParseHandler(registry *extract.Registry, detector *langdetect.Detector, en, vn *parser.Parser, log *logger.Logger) *ParseHandler {
	return &ParseHandler{
		registry: registry,
		detector: detector,
		parsers: map[langdetect.Language]*parser.Parser{
			langdetect.English:    en,
			langdetect.Vietnamese: vn,
		},
		validate: validator.New(),
		log:      log.WithComponent("parse-handler"),
	}
}

// WithStore adds an optional persistence sink for parsed records
func (h *ParseHandler) WithStore(store parser.RecordStore) *ParseHandler {
	h.store = store
	return h
}

// parseResponse is the payload returned for a parsed document
type parseResponse struct {
	Language string         `json:"language"`
	Record   *parser.Record `json:"record"`
}

// Parse handles POST /api/v1/parse. It accepts a multipart upload with
// a "file" part, runs the full pipeline and returns the parsed record.
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithRequestID(httputil.GetRequestID(r.Context()))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.Error(w, errors.BadRequest("invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.Error(w, errors.BadRequest("missing file upload"))
		return
	}
	defer file.Close()

	if !h.registry.SupportedFile(header.Filename) {
		httputil.Error(w, errors.UnsupportedFormat(filepath.Ext(header.Filename)))
		return
	}

	text, err := h.extractUpload(r.Context(), file, header.Filename)
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("extraction failed")
		httputil.Error(w, err)
		return
	}

	cleaned := cleaner.Clean(text)
	if len([]rune(cleaned)) < minTextRunes {
		httputil.Error(w, errors.NoText(header.Filename))
		return
	}

	lang := h.detector.Detect(cleaned)
	if lang == langdetect.Unknown {
		// Single-document callers still get an answer; the English
		// profile is the default bucket, same as the router.
		log.Warn().Str("file", header.Filename).Msg("language detection inconclusive, defaulting to english")
		lang = langdetect.English
	}

	rec := h.parsers[lang].Parse(r.Context(), cleaned, header.Filename)

	// Extraction is best effort; a record that fails validation is
	// still returned, just flagged in the logs
	if err := h.validate.Struct(rec); err != nil {
		log.Warn().Err(err).Str("file", header.Filename).Msg("parsed record failed validation")
	}

	if h.store != nil {
		if err := h.store.Save(r.Context(), rec); err != nil {
			log.Warn().Err(err).Str("file", header.Filename).Msg("failed to persist record")
		}
	}

	log.Info().Str("file", header.Filename).Str("language", string(lang)).Msg("document parsed")
	httputil.JSON(w, http.StatusOK, parseResponse{Language: string(lang), Record: rec})
}

// extractUpload spools the upload to a temp file so path-based
// extractors can run on it.
func (h *ParseHandler) extractUpload(ctx context.Context, file io.Reader, filename string) (string, error) {
	tmp, err := os.CreateTemp("", "cvpipe-*"+filepath.Ext(filename))
	if err != nil {
		return "", errors.Internal("failed to buffer upload")
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", errors.Internal("failed to buffer upload")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Internal("failed to buffer upload")
	}

	extractor := h.registry.FindExtractor(tmp.Name())
	if extractor == nil {
		return "", errors.UnsupportedFormat(filepath.Ext(filename))
	}
	return extractor.Extract(ctx, tmp.Name())
}
