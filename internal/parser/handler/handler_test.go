package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devwork/cv-pipeline/internal/extract"
	"github.com/devwork/cv-pipeline/internal/langdetect"
	"github.com/devwork/cv-pipeline/internal/ner"
	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/internal/parser/handler"
	"github.com/devwork/cv-pipeline/internal/refdata"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// textExtractor reads plain .txt uploads verbatim
type textExtractor struct{}

func (textExtractor) CanExtract(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

func (textExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

func (textExtractor) Name() string { return "text" }

func newHandler(t *testing.T) *handler.ParseHandler {
	t.Helper()
	log := logger.New("handler-test", "test")
	catalogs := refdata.Embedded()
	recognizer := ner.NewHeuristicRecognizer(catalogs.ProvinceNames())

	en := parser.New(parser.EnglishProfile(), recognizer, catalogs, log)
	vn := parser.New(parser.VietnameseProfile(), recognizer, catalogs, log)

	return handler.NewParseHandler(extract.NewRegistry(textExtractor{}), langdetect.New(50), en, vn, log)
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type parseEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Language string        `json:"language"`
		Record   parser.Record `json:"record"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestParseUpload(t *testing.T) {
	cv := `Nguyễn Văn An
Email: an.nguyen@example.com
Số điện thoại: 0912345678
Tốt nghiệp Đại học Bách Khoa Hà Nội, kinh nghiệm lập trình nhiều năm.`

	req := uploadRequest(t, "cv.txt", cv)
	rr := httptest.NewRecorder()
	newHandler(t).Parse(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var envelope parseEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, string(langdetect.Vietnamese), envelope.Data.Language)

	rec := envelope.Data.Record
	assert.Equal(t, "cv.txt", rec.SourceFile)
	require.NotNil(t, rec.Email)
	assert.Equal(t, "an.nguyen@example.com", *rec.Email)
	require.NotNil(t, rec.SoDienThoai)
	assert.Equal(t, "0912345678", *rec.SoDienThoai)
	assert.Equal(t, parser.EducationUniversity, rec.TrinhDoHocVan)
}

func TestParseUnsupportedFormat(t *testing.T) {
	req := uploadRequest(t, "cv.zip", "binary junk")
	rr := httptest.NewRecorder()
	newHandler(t).Parse(rr, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	var envelope parseEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
}

func TestParseMissingFilePart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	newHandler(t).Parse(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParseEmptyDocument(t *testing.T) {
	req := uploadRequest(t, "blank.txt", "   ")
	rr := httptest.NewRecorder()
	newHandler(t).Parse(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
