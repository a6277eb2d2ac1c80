package router_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devwork/cv-pipeline/internal/extract"
	"github.com/devwork/cv-pipeline/internal/langdetect"
	"github.com/devwork/cv-pipeline/internal/router"
	"github.com/devwork/cv-pipeline/pkg/config"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// fakeExtractor serves canned text per file name
type fakeExtractor struct {
	texts map[string]string
}

func (f *fakeExtractor) CanExtract(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) (string, error) {
	text, ok := f.texts[filepath.Base(path)]
	if !ok {
		return "", errors.New("damaged file")
	}
	return text, nil
}

func (f *fakeExtractor) Name() string { return "fake" }

const vietnameseText = `NGUYỄN VĂN AN
Lập trình viên với nhiều năm kinh nghiệm phát triển phần mềm tại Hà Nội.
Thành thạo thiết kế hệ thống và làm việc nhóm.`

const englishText = `JOHN SMITH
Software engineer with many years of experience building backend
services and distributed systems for production workloads.`

func newService(t *testing.T, inputDir, outputDir string) *router.Service {
	t.Helper()
	registry := extract.NewRegistry(&fakeExtractor{texts: map[string]string{
		"a.pdf": vietnameseText,
		"b.pdf": englishText,
	}})
	detector := langdetect.New(50)
	cfg := &config.RouterConfig{InputDir: inputDir, OutputDir: outputDir}
	return router.New(registry, detector, cfg, logger.New("router-test", "test"))
}

func TestServiceRun(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, name), []byte("raw"), 0o644))
	}
	// Not matched by any extractor, ignored entirely
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "d.txt"), []byte("raw"), 0o644))

	svc := newService(t, inputDir, outputDir)
	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Vietnamese)
	assert.Equal(t, 1, summary.English)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 0, summary.Unknown)

	data, err := os.ReadFile(filepath.Join(outputDir, "vietnamese", "a_extracted.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lập trình viên")

	data, err = os.ReadFile(filepath.Join(outputDir, "english", "b_extracted.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Software engineer")

	// The damaged file produced no partition file anywhere
	for _, partition := range []string{"vietnamese", "english"} {
		_, err := os.Stat(filepath.Join(outputDir, partition, "c_extracted.txt"))
		assert.True(t, os.IsNotExist(err))
	}
}

func TestServiceRunIsIdempotent(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	for _, name := range []string{"a.pdf", "b.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, name), []byte("raw"), 0o644))
	}

	svc := newService(t, inputDir, outputDir)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(outputDir, "vietnamese", "a_extracted.txt"))
	require.NoError(t, err)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)

	second, err := os.ReadFile(filepath.Join(outputDir, "vietnamese", "a_extracted.txt"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(filepath.Join(outputDir, "vietnamese"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestServiceRunUnknownBucket(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	registry := extract.NewRegistry(&fakeExtractor{texts: map[string]string{
		"short.pdf": "too short to call",
	}})
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "short.pdf"), []byte("raw"), 0o644))

	cfg := &config.RouterConfig{InputDir: inputDir, OutputDir: outputDir}
	svc := router.New(registry, langdetect.New(50), cfg, logger.New("router-test", "test"))

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unknown)

	// Without a dedicated unknown bucket the file lands in english
	_, err = os.Stat(filepath.Join(outputDir, "english", "short_extracted.txt"))
	assert.NoError(t, err)
}

func TestServiceRunEmptyInput(t *testing.T) {
	svc := newService(t, t.TempDir(), t.TempDir())
	_, err := svc.Run(context.Background())
	assert.Error(t, err)
}
