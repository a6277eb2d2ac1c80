package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/devwork/cv-pipeline/pkg/errors"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// OCR runs the external pdftoppm + tesseract toolchain against scanned PDFs.
// The toolchain is an environment dependency, not part of this codebase;
// Available should be called once at startup so a missing installation
// surfaces before any file is processed.
type OCR struct {
	languages string
	log       *logger.Logger
}

// NewOCR creates an OCR runner. languages is a tesseract language spec
// such as "eng+vie".
func NewOCR(languages string, log *logger.Logger) *OCR {
	if languages == "" {
		languages = "eng+vie"
	}
	return &OCR{languages: languages, log: log}
}

// Available checks that the required binaries are on PATH
func (o *OCR) Available() error {
	for _, tool := range []string{"pdftoppm", "tesseract"} {
		if _, err := exec.LookPath(tool); err != nil {
			return errors.ToolchainMissing(tool)
		}
	}
	return nil
}

// Run renders each PDF page to an image and OCRs it, returning the
// concatenated text.
func (o *OCR) Run(ctx context.Context, path string) (string, error) {
	if err := o.Available(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "cvpipe-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	render := exec.CommandContext(ctx, "pdftoppm", "-r", "300", "-png", path, prefix)
	if out, err := render.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	pages, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", errors.NoText(filepath.Base(path))
	}
	sort.Strings(pages)

	var parts []string
	for i, page := range pages {
		o.log.Debug().Str("path", path).Int("page", i+1).Int("pages", len(pages)).Msg("running OCR")

		var stdout, stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, "tesseract", page, "stdout", "-l", o.languages, "--psm", "6")
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			// One unreadable page should not lose the rest
			o.log.Warn().Err(err).Str("page", page).Str("stderr", strings.TrimSpace(stderr.String())).Msg("tesseract failed")
			continue
		}

		if text := strings.TrimSpace(stdout.String()); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}
