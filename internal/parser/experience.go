package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "5 years experience", "3+ năm kinh nghiệm"
	explicitYears = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:năm|years?|yrs?)\s*(?:of\s*)?(?:kinh\s*nghiệm|experience|exp)`)

	anyYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// extractExperienceYears returns the number of years of experience. An
// explicit statement wins; otherwise the year span covered by the
// experience section is used.
func extractExperienceYears(text string, sections map[sectionKind]string) *int {
	if m := explicitYears.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return intPtr(n)
		}
	}

	section, ok := sections[sectionExperience]
	if !ok {
		return nil
	}
	years := anyYear.FindAllString(section, -1)
	if len(years) < 2 {
		return nil
	}
	min, max := years[0], years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	lo, _ := strconv.Atoi(min)
	hi, _ := strconv.Atoi(max)
	if hi <= lo {
		return nil
	}
	return intPtr(hi - lo)
}

// extractExperienceEntries lists the employment periods found in the
// experience section. Company lines open entries; role and time period
// lines below fill in the details.
func extractExperienceEntries(sections map[sectionKind]string, profile *Profile) []ExperienceEntry {
	section, ok := sections[sectionExperience]
	if !ok {
		return nil
	}

	var entries []ExperienceEntry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if profile.companyLine.MatchString(line) {
			entry := ExperienceEntry{CongTy: line}
			if m := timePeriod.FindStringSubmatch(line); m != nil {
				entry.ThoiGian = m[1] + " - " + m[2]
				entry.CongTy = strings.TrimSpace(strings.Trim(timePeriod.ReplaceAllString(line, ""), " -|,"))
			}
			entries = append(entries, entry)
			continue
		}

		if len(entries) == 0 {
			continue
		}
		last := &entries[len(entries)-1]

		if m := profile.roleLine.FindStringSubmatch(line); m != nil && last.ViTri == "" {
			if m[1] != "" {
				last.ViTri = strings.TrimSpace(m[1])
			} else {
				last.ViTri = line
			}
			continue
		}
		if m := timePeriod.FindStringSubmatch(line); m != nil && last.ThoiGian == "" {
			last.ThoiGian = m[1] + " - " + m[2]
		}
	}

	return entries
}
