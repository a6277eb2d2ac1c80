package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devwork/cv-pipeline/internal/ner"
)

var titleCaser = cases.Title(language.Vietnamese)

// extractName picks the best person entity, or falls back to matching
// the first lines of the document against locale name patterns.
func extractName(text string, entities []ner.Entity, profile *Profile) *string {
	persons := ner.FilterTexts(entities, ner.LabelPerson)
	if len(persons) > 0 {
		best := persons[0]
		bestLen, bestUpper := nameScore(best)
		for _, candidate := range persons[1:] {
			l, u := nameScore(candidate)
			if l > bestLen || (l == bestLen && u > bestUpper) {
				best, bestLen, bestUpper = candidate, l, u
			}
		}
		return strPtr(best)
	}

	// CVs usually open with the candidate's name
	for _, segment := range firstSegments(text, 2) {
		for _, line := range strings.Split(segment, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			for _, pattern := range profile.nameFallbacks {
				if m := pattern.FindStringSubmatch(line); m != nil {
					return strPtr(titleCaser.String(strings.ToLower(m[1])))
				}
			}
		}
	}

	return nil
}

// nameScore ranks a candidate name by length and uppercase letter count
func nameScore(name string) (int, int) {
	upper := 0
	for _, r := range name {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return len([]rune(name)), upper
}

// firstSegments returns up to n leading sentence segments of the text
func firstSegments(text string, n int) []string {
	segments := strings.SplitN(text, ".", n+1)
	if len(segments) > n {
		segments = segments[:n]
	}
	return segments
}
