package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPRecognizer sends text to a remote transformer inference service.
// The service wraps the pretrained language model; this process never loads
// model weights itself.
type HTTPRecognizer struct {
	url        string
	httpClient *http.Client
}

// NewHTTPRecognizer creates a recognizer that calls the given inference
// service URL.
func NewHTTPRecognizer(url string, timeout time.Duration) *HTTPRecognizer {
	if timeout <= 0 {
		timeout = 30 * time.Second // model inference can take a while
	}
	return &HTTPRecognizer{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *HTTPRecognizer) Name() string { return "http" }

type entityRequest struct {
	Text string `json:"text"`
}

type entityResponse struct {
	Entities []Entity `json:"entities"`
}

// Entities windows the text into chunks and sends each to the inference
// service, concatenating the results.
func (r *HTTPRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	var all []Entity
	for _, chunk := range chunkText(text) {
		entities, err := r.recognizeChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		all = append(all, entities...)
	}
	return mergeSubwords(all), nil
}

func (r *HTTPRecognizer) recognizeChunk(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(entityRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("ner: marshal request: %w", err)
	}

	url := r.url + "/api/v1/entities"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ner: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner: inference service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ner: read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner: inference service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed entityResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("ner: parse response: %w", err)
	}

	return parsed.Entities, nil
}
