package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/devwork/cv-pipeline/pkg/logger"
)

// PDFExtractor extracts the text layer of a PDF file. When the text layer is
// empty (scanned documents) and an OCR toolchain is available, it falls back
// to OCR.
type PDFExtractor struct {
	ocr *OCR
	log *logger.Logger
}

// NewPDFExtractor creates a PDF extractor. ocr may be nil to disable the
// OCR fallback.
func NewPDFExtractor(ocr *OCR, log *logger.Logger) *PDFExtractor {
	return &PDFExtractor{ocr: ocr, log: log}
}

func (e *PDFExtractor) Name() string { return "pdf" }

func (e *PDFExtractor) CanExtract(path string) bool {
	return hasExtension(path, ".pdf")
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	text, err := e.textLayer(path)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	if e.ocr == nil {
		return "", fmt.Errorf("no text layer in %s and OCR fallback is disabled", path)
	}

	e.log.Info().Str("path", path).Msg("no text layer, falling back to OCR")
	return e.ocr.Run(ctx, path)
}

func (e *PDFExtractor) textLayer(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A broken page should not lose the rest of the document
			e.log.Warn().Err(err).Str("path", path).Int("page", pageIndex).Msg("failed to read page")
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}
