// Package cleaner normalizes whitespace and encoding artifacts in text
// extracted from CV documents. Extraction and OCR output is noisy: doubled
// section headers, page footers, HTML fragments, ligatures and smart quotes
// all get in the way of downstream pattern matching.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	leadingArtifact = regexp.MustCompile("^` x")

	copyrightFooter = regexp.MustCompile(`©.*\.(vn|com)`)
	pageFooterEN    = regexp.MustCompile(`Page \d+ of \d+`)
	pageFooterVN    = regexp.MustCompile(`Trang \d+ / \d+`)

	tooManyNewlines = regexp.MustCompile(`\n{3,}`)
	spaceRuns       = regexp.MustCompile(`[ \t]{2,}`)

	missingSpace = regexp.MustCompile(`([a-zA-Z])\.([A-Z])`)

	htmlTags = regexp.MustCompile(`<[^>]+>`)

	phonePattern  = regexp.MustCompile(`(Phone:\s*)?([+]\d{10,15})`)
	emailPattern  = regexp.MustCompile(`(?i)(email:\s*)?([\w.-]+@[\w.-]+\.\w{2,})`)
	githubPattern = regexp.MustCompile(`(?i)(github:\s*)?(github\.com/[\w.-]+)`)
)

// Doubled section headers come from layout-preserving PDF extraction where
// the same heading appears in both a sidebar and the main column.
var sectionHeaders = []string{
	"PERSONAL DETAILS", "PROFESSIONAL SUMMARY", "SKILLS",
	"EDUCATION", "PROJECTS", "WORK EXPERIENCE",
	"MỤC TIÊU", "HỌC VẤN", "DỰ ÁN", "KỸ NĂNG", "KINH NGHIỆM LÀM VIỆC",
}

var doubledHeaders = buildDoubledHeaders()

func buildDoubledHeaders() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(sectionHeaders))
	for _, s := range sectionHeaders {
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(s)+`\s+`+regexp.QuoteMeta(s)))
	}
	return res
}

// OCR and PDF extraction character fixes
var replacements = strings.NewReplacer(
	" ", " ", // non-breaking space
	"ﬁ", "fi",
	"ﬂ", "fl",
	"–", "-", // en-dash to hyphen
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"©", "(C)",
)

// Clean normalizes raw extracted text. It is a pure function: the same
// input always yields the same output, which keeps router re-runs idempotent.
func Clean(text string) string {
	text = leadingArtifact.ReplaceAllString(text, "")

	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	for i, re := range doubledHeaders {
		text = re.ReplaceAllString(text, sectionHeaders[i])
	}

	text = copyrightFooter.ReplaceAllString(text, "")
	text = pageFooterEN.ReplaceAllString(text, "")
	text = pageFooterVN.ReplaceAllString(text, "")

	text = htmlTags.ReplaceAllString(text, " ")

	text = tooManyNewlines.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")

	// Fix missing space after sentence period
	text = missingSpace.ReplaceAllString(text, "$1. $2")

	text = replacements.Replace(text)

	// Label contact details so section parsers can anchor on them.
	// Already-labeled values are left untouched.
	text = labelContacts(text)

	return strings.TrimSpace(text)
}

func labelContacts(text string) string {
	text = phonePattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := phonePattern.FindStringSubmatch(m)
		if sub[1] != "" {
			return m
		}
		return "Phone: " + sub[2]
	})
	text = emailPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := emailPattern.FindStringSubmatch(m)
		if sub[1] != "" {
			return m
		}
		return "Email: " + sub[2]
	})
	text = githubPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := githubPattern.FindStringSubmatch(m)
		if sub[1] != "" {
			return m
		}
		return "GitHub: " + sub[2]
	})
	return text
}
