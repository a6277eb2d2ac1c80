// Package langdetect classifies cleaned CV text as Vietnamese or English.
package langdetect

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Language is a detected document language
type Language string

const (
	Vietnamese Language = "vietnamese"
	English    Language = "english"
	Unknown    Language = "unknown"
)

// DefaultMinRunes is the minimum text length for reliable detection
const DefaultMinRunes = 50

// Characters that only occur in Vietnamese orthography. Their presence is a
// stronger signal than any statistical model: a mixed-language CV with
// Vietnamese diacritics anywhere gets the Vietnamese parser, whose keyword
// sets are a superset of the English ones.
var vietnameseDiacritics = regexp.MustCompile(`[àáảãạăằắẳẵặâầấẩẫậđèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵ]`)

// Detector detects document language
type Detector struct {
	minRunes int
	options  whatlanggo.Options
}

// New creates a detector. minRunes <= 0 selects DefaultMinRunes.
func New(minRunes int) *Detector {
	if minRunes <= 0 {
		minRunes = DefaultMinRunes
	}
	return &Detector{
		minRunes: minRunes,
		options: whatlanggo.Options{
			Whitelist: map[whatlanggo.Lang]bool{
				whatlanggo.Vie: true,
				whatlanggo.Eng: true,
			},
		},
	}
}

// Detect classifies text. Text shorter than the configured minimum, or text
// the detector cannot place with confidence, comes back Unknown; the caller
// decides which bucket unknowns route to.
func (d *Detector) Detect(text string) Language {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < d.minRunes {
		return Unknown
	}

	lowered := strings.ToLower(trimmed)
	if vietnameseDiacritics.MatchString(lowered) {
		return Vietnamese
	}

	info := whatlanggo.DetectWithOptions(trimmed, d.options)
	switch {
	case info.Lang == whatlanggo.Vie && info.IsReliable():
		return Vietnamese
	case info.Lang == whatlanggo.Eng && info.IsReliable():
		return English
	}

	// Without diacritics and without a confident model answer there is
	// nothing Vietnamese about the text; plain ASCII letters lean English.
	if isMostlyASCIILetters(trimmed) {
		return English
	}
	return Unknown
}

func isMostlyASCIILetters(s string) bool {
	var letters, total int
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r < 128 {
			letters++
		}
	}
	if total == 0 {
		return false
	}
	return letters*10 >= total*9
}
