package parser

import (
	"regexp"
	"strings"

	"github.com/devwork/cv-pipeline/internal/ner"
)

// timePeriod matches year spans like "2015 - 2019" or "2020 đến nay"
var timePeriod = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|to|đến|~)\s*((?:19|20)\d{2}|nay|present|now)\b`)

// extractEducationLevel maps the highest education mentioned to an ID.
// Degree patterns are ordered highest first, so the first hit wins.
func extractEducationLevel(text string, entities []ner.Entity, profile *Profile) int {
	for _, dp := range profile.degreePatterns {
		if dp.re.MatchString(text) {
			return dp.level
		}
	}

	// School names imply the level when no degree is spelled out
	for _, org := range ner.FilterTexts(entities, ner.LabelOrganization) {
		lowered := strings.ToLower(org)
		for _, hint := range profile.orgHints {
			for _, keyword := range hint.keywords {
				if strings.Contains(lowered, keyword) {
					return hint.level
				}
			}
		}
	}

	// Last chance: scoped search inside the education section
	if m := profile.educationAnchor.FindStringSubmatch(text); m != nil {
		for _, dp := range profile.degreePatterns {
			if dp.re.MatchString(m[2]) {
				return dp.level
			}
		}
	}

	return EducationOther
}

// extractEducationEntries lists the schooling periods found in the
// education section. Each school line opens an entry; major and time
// period lines below it fill in the details.
func extractEducationEntries(sections map[sectionKind]string, profile *Profile) []EducationEntry {
	section, ok := sections[sectionEducation]
	if !ok {
		return nil
	}

	var entries []EducationEntry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if profile.schoolLine.MatchString(line) {
			entry := EducationEntry{Truong: line}
			if m := timePeriod.FindStringSubmatch(line); m != nil {
				entry.ThoiGian = m[1] + " - " + m[2]
				entry.Truong = strings.TrimSpace(strings.Trim(timePeriod.ReplaceAllString(line, ""), " -|,"))
			}
			entries = append(entries, entry)
			continue
		}

		if len(entries) == 0 {
			continue
		}
		last := &entries[len(entries)-1]

		if m := profile.majorLine.FindStringSubmatch(line); m != nil && last.ChuyenNganh == "" {
			last.ChuyenNganh = strings.TrimSpace(m[1])
			continue
		}
		if m := timePeriod.FindStringSubmatch(line); m != nil && last.ThoiGian == "" {
			last.ThoiGian = m[1] + " - " + m[2]
		}
	}

	return entries
}
