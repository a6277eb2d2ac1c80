package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthNames = map[string]string{
	"january": "01", "jan": "01",
	"february": "02", "feb": "02",
	"march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"may":  "05",
	"june": "06", "jun": "06",
	"july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09", "sept": "09",
	"october": "10", "oct": "10",
	"november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

var (
	ordinalSuffix = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)`)

	dobNumeric = regexp.MustCompile(`(?i)\b(?:ngày\s*sinh|dob|date\s*of\s*birth)?[:\s]*([0-3]?\d)[/-]([01]?\d)[/-](\d{2,4})\b`)

	// "31 October 1978" and "October 31, 1978"
	dobDayFirst   = regexp.MustCompile(`(?i)\b([0-3]?\d)[\s/.-]?([a-zA-Z]+)[\s/.-]?(\d{2,4})\b`)
	dobMonthFirst = regexp.MustCompile(`(?i)\b([a-zA-Z]+)[\s/.-]?([0-3]?\d),?[\s/.-]?(\d{2,4})\b`)
)

// extractDOB returns the date of birth normalized to dd/mm/yyyy. The
// English profile additionally handles month-name formats with ordinal
// suffixes ("June 1st, 94").
func extractDOB(text string, profile *Profile) *string {
	if profile.dobMonthNames {
		stripped := ordinalSuffix.ReplaceAllString(text, "$1")

		if m := dobDayFirst.FindStringSubmatch(stripped); m != nil {
			if month, ok := monthNames[strings.ToLower(m[2])]; ok {
				return strPtr(formatDOB(m[1], month, m[3]))
			}
		}
		if m := dobMonthFirst.FindStringSubmatch(stripped); m != nil {
			if month, ok := monthNames[strings.ToLower(m[1])]; ok {
				return strPtr(formatDOB(m[2], month, m[3]))
			}
		}
	}

	if m := dobNumeric.FindStringSubmatch(text); m != nil {
		return strPtr(formatDOB(m[1], m[2], m[3]))
	}

	return nil
}

// formatDOB zero-pads day and month and expands two-digit years with a
// pivot: years below 30 land in 20xx, the rest in 19xx.
func formatDOB(day, month, year string) string {
	if len(year) == 2 {
		if n, err := strconv.Atoi(year); err == nil && n < 30 {
			year = "20" + year
		} else {
			year = "19" + year
		}
	}
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s/%s/%s", day, month, year)
}
