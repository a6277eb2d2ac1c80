package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	englishMention  = regexp.MustCompile(`tiếng anh|english`)
	japaneseMention = regexp.MustCompile(`tiếng nhật|japanese`)

	ieltsScore = regexp.MustCompile(`ielts\s*(\d+(?:\.\d+)?)`)
	toeicScore = regexp.MustCompile(`toeic\s*(\d+)`)

	cefrAdvanced = regexp.MustCompile(`\b(c1|c2)\b`)
	cefrBasic    = regexp.MustCompile(`\b(a1|a2|b1|b2)\b`)

	jlptAdvanced = regexp.MustCompile(`\bn[12]\b`)
	jlptBasic    = regexp.MustCompile(`\bn[345]\b`)
)

var advancedKeywords = []string{
	"thành thạo", "bản địa", "nâng cao", "chuyên nghiệp", "thuần thục",
	"fluency", "fluent", "native", "professional", "communicate", "advanced", "proficient",
}

var basicKeywords = []string{
	"cơ bản", "căn bản", "đọc hiểu", "đơn giản", "phổ thông",
	"basic", "elementary", "beginner", "intermediate",
}

// extractLanguages detects foreign-language proficiency line by line and
// returns sorted proficiency IDs. Certification scores outrank keyword
// hints: IELTS 7.0 and TOEIC 650 are the advanced cutoffs, CEFR C-levels
// and JLPT N1/N2 count as advanced.
func extractLanguages(text string) []int {
	lowered := strings.ToLower(text)

	var english, japanese int
	for _, line := range strings.Split(lowered, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if englishMention.MatchString(line) {
			if level := englishLevel(line); level != 0 {
				english = level
			}
		}
		if japaneseMention.MatchString(line) {
			if level := japaneseLevel(line); level != 0 {
				japanese = level
			}
		}
	}

	var ids []int
	if english != 0 {
		ids = append(ids, english)
	}
	if japanese != 0 {
		ids = append(ids, japanese)
	}
	if len(ids) == 0 {
		ids = append(ids, LanguageNone)
	}
	sort.Ints(ids)
	return ids
}

func englishLevel(line string) int {
	if m := ieltsScore.FindStringSubmatch(line); m != nil {
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			if score >= 7.0 {
				return LanguageEnglish
			}
			return LanguageBasicEnglish
		}
	}
	if m := toeicScore.FindStringSubmatch(line); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			if score >= 650 {
				return LanguageEnglish
			}
			return LanguageBasicEnglish
		}
	}
	if cefrAdvanced.MatchString(line) {
		return LanguageEnglish
	}
	if cefrBasic.MatchString(line) {
		return LanguageBasicEnglish
	}
	if containsAny(line, advancedKeywords) {
		return LanguageEnglish
	}
	if containsAny(line, basicKeywords) {
		return LanguageBasicEnglish
	}
	return 0
}

func japaneseLevel(line string) int {
	if jlptAdvanced.MatchString(line) || containsAny(line, advancedKeywords) {
		return LanguageJapanese
	}
	if jlptBasic.MatchString(line) || containsAny(line, basicKeywords) {
		return LanguageBasicJapanese
	}
	return 0
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
