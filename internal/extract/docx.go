package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/devwork/cv-pipeline/pkg/logger"
)

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// DOCXExtractor extracts paragraph and table text from a DOCX file.
type DOCXExtractor struct {
	log *logger.Logger
}

// NewDOCXExtractor creates a DOCX extractor
func NewDOCXExtractor(log *logger.Logger) *DOCXExtractor {
	return &DOCXExtractor{log: log}
}

func (e *DOCXExtractor) Name() string { return "docx" }

func (e *DOCXExtractor) CanExtract(path string) bool {
	return hasExtension(path, ".docx")
}

func (e *DOCXExtractor) Extract(ctx context.Context, path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := flattenDocumentXML(content)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text extracted from DOCX: %s", path)
	}

	return text, nil
}

// flattenDocumentXML turns WordprocessingML into plain text: paragraph and
// row ends become newlines, table cells are joined with " | ", all remaining
// tags are stripped.
func flattenDocumentXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "</w:tr>", "\n")
	content = strings.ReplaceAll(content, "</w:tc>", " | ")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")

	content = xmlTags.ReplaceAllString(content, "")

	// Collapse the artifacts left by the cell separators
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "|"))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
