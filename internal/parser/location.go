package parser

import (
	"strings"

	"github.com/devwork/cv-pipeline/internal/ner"
	"github.com/devwork/cv-pipeline/internal/refdata"
)

// extractProvince resolves the candidate's region to a province ID.
// Location entities are tried first, then a locale-specific address
// pattern. Unresolvable regions get the catch-all ID.
func extractProvince(text string, entities []ner.Entity, catalogs *refdata.Catalogs, profile *Profile) int {
	for _, loc := range ner.FilterTexts(entities, ner.LabelLocation) {
		if id, ok := catalogs.MatchLocation(loc); ok {
			return id
		}
	}

	if m := profile.locationFallback.FindString(text); m != "" {
		if id, ok := catalogs.MatchLocation(strings.TrimSpace(m)); ok {
			return id
		}
	}

	return refdata.DefaultProvinceID
}
