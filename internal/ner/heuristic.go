package ner

import (
	"context"
	"regexp"
	"strings"
)

// HeuristicRecognizer recognizes entities without a model. It is always
// available and serves as the fallback when no inference endpoint is
// configured or the endpoint is down. Precision is tuned for CV layouts:
// names live near the top, locations come from a gazetteer.
type HeuristicRecognizer struct {
	gazetteer []string
}

// NewHeuristicRecognizer creates a heuristic recognizer. gazetteer is the
// list of known location names to match against.
func NewHeuristicRecognizer(gazetteer []string) *HeuristicRecognizer {
	return &HeuristicRecognizer{gazetteer: gazetteer}
}

func (r *HeuristicRecognizer) Name() string { return "heuristic" }

var (
	// Two to five capitalized words, covering "John Smith" as well as
	// "Nguyễn Văn An"
	capitalizedName = regexp.MustCompile(`^\p{Lu}[\p{Ll}\p{M}]+(?:\s+\p{Lu}[\p{Ll}\p{M}]+){1,4}$`)

	// Fully uppercase Vietnamese name lines such as "NGUYỄN VĂN AN"
	uppercaseName = regexp.MustCompile(`^[\p{Lu}\p{M}]{2,}(?:\s+[\p{Lu}\p{M}]{2,}){1,4}$`)

	organizationHint = regexp.MustCompile(`(?i)(university|academy|college|institute|đại học|học viện|cao đẳng|trung cấp|thpt|company|công ty|tập đoàn)`)
)

// Entities never fails; a heuristic with no matches returns an empty slice.
func (r *HeuristicRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	var entities []Entity

	entities = append(entities, r.personEntities(text)...)
	entities = append(entities, r.locationEntities(text)...)
	entities = append(entities, r.organizationEntities(text)...)

	return entities, nil
}

// personEntities looks at the first lines of the document: CVs carry the
// candidate name in the header.
func (r *HeuristicRecognizer) personEntities(text string) []Entity {
	var entities []Entity
	lines := strings.Split(text, "\n")
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@:/0123456789") {
			continue
		}
		if capitalizedName.MatchString(line) || uppercaseName.MatchString(line) {
			entities = append(entities, Entity{
				Text:  line,
				Label: LabelPerson,
				Score: 0.6,
			})
		}
	}
	return entities
}

func (r *HeuristicRecognizer) locationEntities(text string) []Entity {
	var entities []Entity
	lowered := strings.ToLower(text)
	for _, place := range r.gazetteer {
		if place == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(place)) {
			entities = append(entities, Entity{
				Text:  place,
				Label: LabelLocation,
				Score: 0.7,
			})
		}
	}
	return entities
}

func (r *HeuristicRecognizer) organizationEntities(text string) []Entity {
	var entities []Entity
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !organizationHint.MatchString(line) {
			continue
		}
		if len([]rune(line)) > 80 {
			continue
		}
		entities = append(entities, Entity{
			Text:  line,
			Label: LabelOrganization,
			Score: 0.5,
		})
	}
	return entities
}
