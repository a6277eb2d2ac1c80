package parser

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// Vietnamese numbers: +84/84 international prefix or 0 domestic
	// prefix followed by nine digits
	phonePattern = regexp.MustCompile(`\b(?:\+?84|0)(\d{9})\b`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// extractEmail returns the first email address in the text
func extractEmail(text string) *string {
	if m := emailPattern.FindString(text); m != "" {
		return strPtr(m)
	}
	return nil
}

// extractPhone returns the first Vietnamese phone number, normalized to
// the domestic leading-zero form. Separators are stripped before
// matching so "+84 987 654 321" and "0987-654-321" both resolve.
func extractPhone(text string) *string {
	compact := phoneSeparators.Replace(text)
	m := phonePattern.FindStringSubmatch(compact)
	if m == nil {
		return nil
	}
	return strPtr("0" + m[1])
}
