package parser

import "strings"

// maxHeaderRunes bounds how long a line can be and still count as a
// section header. CV headers are short labels, often uppercased.
const maxHeaderRunes = 40

// splitSections segments cleaned CV text by recognized section headers.
// A section runs from its header line to the next recognized header.
// Text before the first header lands in sectionOther.
func splitSections(text string, profile *Profile) map[sectionKind]string {
	sections := make(map[sectionKind]string)
	current := sectionOther

	var buf strings.Builder
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		if prev, ok := sections[current]; ok {
			sections[current] = prev + "\n" + buf.String()
		} else {
			sections[current] = buf.String()
		}
		buf.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if kind, ok := headerKind(line, profile); ok {
			flush()
			current = kind
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	flush()

	return sections
}

// headerKind reports whether a line is a recognized section header
func headerKind(line string, profile *Profile) (sectionKind, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimRight(trimmed, ":")
	if trimmed == "" || len([]rune(trimmed)) > maxHeaderRunes {
		return sectionOther, false
	}

	lowered := strings.ToLower(trimmed)
	if kind, ok := profile.sectionHeaders[lowered]; ok {
		return kind, true
	}

	// Headers like "WORK EXPERIENCE (5 years)" still anchor a section
	for header, kind := range profile.sectionHeaders {
		if strings.HasPrefix(lowered, header+" ") || strings.HasPrefix(lowered, header+"(") {
			return kind, true
		}
	}

	return sectionOther, false
}
