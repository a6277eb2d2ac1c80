// Package extract pulls raw text out of CV documents. Extractors know
// nothing about CV fields; they only turn a file into a string.
package extract

import (
	"context"
	"path/filepath"
	"strings"
)

// Extractor defines the interface for raw text extraction.
// Implementations can be swapped in (e.g. an OCR-only extractor)
// without changing the router or service layer.
type Extractor interface {
	// CanExtract returns true if this extractor handles the given file
	CanExtract(path string) bool

	// Extract returns the raw text content of the file
	Extract(ctx context.Context, path string) (string, error)

	// Name returns the extractor name for logging
	Name() string
}

// Registry holds all registered extractors and dispatches to the right one
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates a new extractor registry
func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// FindExtractor returns the first extractor that can handle the given file,
// or nil when the format is unsupported.
func (r *Registry) FindExtractor(path string) Extractor {
	for _, e := range r.extractors {
		if e.CanExtract(path) {
			return e
		}
	}
	return nil
}

// SupportedFile reports whether any registered extractor handles the file
func (r *Registry) SupportedFile(path string) bool {
	return r.FindExtractor(path) != nil
}

func hasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
