package refdata

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Common abbreviations seen in CV headers. Keys are diacritic-folded and
// lowercased before lookup.
var commonAbbreviations = map[string]string{
	"tp.hcm":      "Hồ Chí Minh",
	"tp. hcm":     "Hồ Chí Minh",
	"tp hcm":      "Hồ Chí Minh",
	"tphcm":       "Hồ Chí Minh",
	"hcm":         "Hồ Chí Minh",
	"hcmc":        "Hồ Chí Minh",
	"ho chi minh": "Hồ Chí Minh",
	"saigon":      "Hồ Chí Minh",
	"sai gon":     "Hồ Chí Minh",
	"hn":          "Hà Nội",
	"tp.hn":       "Hà Nội",
	"tp. hn":      "Hà Nội",
	"hanoi":       "Hà Nội",
	"ha noi":      "Hà Nội",
	"dn":          "Đà Nẵng",
	"danang":      "Đà Nẵng",
	"da nang":     "Đà Nẵng",
}

var tpPrefix = regexp.MustCompile(`(?i)^(thành phố|tp[.\s]*|tỉnh\s+)`)

// maxFuzzyDistance is the largest Levenshtein distance accepted as a
// province match, comparable to the old 90% similarity cutoff.
const maxFuzzyDistance = 2

type locationMatcher struct {
	provinces []Province
	folded    []string
}

func newLocationMatcher(provinces []Province) *locationMatcher {
	m := &locationMatcher{provinces: provinces}
	m.folded = make([]string, len(provinces))
	for i, p := range provinces {
		m.folded[i] = foldDiacritics(strings.ToLower(p.Name))
	}
	return m
}

// MatchLocation resolves a free-form location string to a province ID.
// The second return value is false when nothing matched.
func (c *Catalogs) MatchLocation(extracted string) (int, bool) {
	return c.locationMatcher.match(extracted)
}

func (m *locationMatcher) match(extracted string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(extracted))
	if normalized == "" {
		return 0, false
	}

	if official, ok := commonAbbreviations[foldDiacritics(normalized)]; ok {
		for _, p := range m.provinces {
			if p.Name == official {
				return p.ID, true
			}
		}
	}

	if id, ok := m.fuzzyMatch(normalized); ok {
		return id, true
	}

	// Retry without the "TP."/"Thành phố"/"Tỉnh" prefix
	if cleaned := strings.TrimSpace(tpPrefix.ReplaceAllString(normalized, "")); cleaned != normalized && cleaned != "" {
		return m.fuzzyMatch(cleaned)
	}

	return 0, false
}

func (m *locationMatcher) fuzzyMatch(input string) (int, bool) {
	folded := foldDiacritics(input)

	bestID := 0
	bestRank := maxFuzzyDistance + 1
	for i, name := range m.folded {
		// Containment catches "ho chi minh city" style strings
		if strings.Contains(folded, name) {
			return m.provinces[i].ID, true
		}
		rank := fuzzy.RankMatchNormalizedFold(name, folded)
		if rank >= 0 && rank < bestRank {
			bestRank = rank
			bestID = m.provinces[i].ID
		}
	}
	if bestRank <= maxFuzzyDistance {
		return bestID, true
	}
	return 0, false
}

type skillMatcher struct {
	patterns map[int]*regexp.Regexp
}

var skillNoise = regexp.MustCompile(`[^\w\s/#+.-]`)

func newSkillMatcher(skills []Skill) *skillMatcher {
	m := &skillMatcher{patterns: make(map[int]*regexp.Regexp, len(skills))}
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		m.patterns[s.ID] = regexp.MustCompile(`(?i)(^|[^\w])` + regexp.QuoteMeta(strings.ToLower(s.Name)) + `($|[^\w])`)
	}
	return m
}

// MatchSkills returns the IDs of all catalog skills mentioned in the text,
// in ascending ID order.
func (c *Catalogs) MatchSkills(text string) []int {
	return c.skillMatcher.match(text)
}

func (m *skillMatcher) match(text string) []int {
	normalized := skillNoise.ReplaceAllString(strings.ToLower(text), " ")

	var ids []int
	for id, pattern := range m.patterns {
		if pattern.MatchString(normalized) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// foldDiacritics removes combining marks so "Đà Nẵng" matches "da nang"
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	// NFD does not decompose đ/Đ
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return folded
}
