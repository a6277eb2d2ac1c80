// Package ner provides named-entity recognition over CV text. Entity
// extraction backs the name, location and organization fields; everything
// else in the parser is pattern matching.
package ner

import (
	"context"
	"strings"
)

// Label classifies an entity
type Label string

const (
	LabelPerson       Label = "PERSON"
	LabelLocation     Label = "LOCATION"
	LabelOrganization Label = "ORG"
)

// Entity is a recognized span of text
type Entity struct {
	Text  string  `json:"text"`
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Recognizer defines the interface for entity extraction.
// Implementations can be swapped in (remote transformer model, built-in
// heuristics) without changing the parser.
type Recognizer interface {
	// Entities returns all entities found in the text
	Entities(ctx context.Context, text string) ([]Entity, error)

	// Name returns the recognizer name for logging
	Name() string
}

// Chain tries recognizers in order until one succeeds. It lets a remote
// model take precedence with the heuristic recognizer as fallback.
type Chain struct {
	recognizers []Recognizer
}

// NewChain creates a recognizer chain
func NewChain(recognizers ...Recognizer) *Chain {
	return &Chain{recognizers: recognizers}
}

func (c *Chain) Name() string { return "chain" }

// Entities tries each recognizer in order; the first successful answer wins.
// The last error is returned only when every recognizer fails.
func (c *Chain) Entities(ctx context.Context, text string) ([]Entity, error) {
	var lastErr error
	for _, r := range c.recognizers {
		entities, err := r.Entities(ctx, text)
		if err == nil {
			return entities, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// FilterTexts returns the texts of all entities with the given label
func FilterTexts(entities []Entity, label Label) []string {
	var out []string
	for _, e := range entities {
		if e.Label == label {
			out = append(out, e.Text)
		}
	}
	return out
}

// chunkWords is the chunk size sent to remote models; transformer models
// truncate long inputs, so text is windowed on sentence boundaries first.
const chunkWords = 400

// chunkText splits text into chunks of at most chunkWords words, breaking
// on sentence boundaries where possible.
func chunkText(text string) []string {
	sentences := splitSentences(text)

	var chunks []string
	var current []string
	count := 0
	for _, s := range sentences {
		words := len(strings.Fields(s))
		if count+words > chunkWords && count > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			count = 0
		}
		current = append(current, s)
		count += words
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '\n' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// mergeSubwords joins tokenizer subword pieces ("Ngu" + "##yen") and
// adjacent same-label entities back into full spans.
func mergeSubwords(entities []Entity) []Entity {
	var merged []Entity
	for _, e := range entities {
		if strings.HasPrefix(e.Text, "##") && len(merged) > 0 && merged[len(merged)-1].Label == e.Label {
			prev := &merged[len(merged)-1]
			prev.Text += strings.TrimPrefix(e.Text, "##")
			if e.Score < prev.Score {
				prev.Score = e.Score
			}
			continue
		}
		merged = append(merged, e)
	}
	return merged
}
