package parser

import (
	"context"
	"strings"

	"github.com/devwork/cv-pipeline/internal/ner"
	"github.com/devwork/cv-pipeline/internal/refdata"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// minSummaryRunes is the length below which a paragraph is not worth
// using as the profile summary
const minSummaryRunes = 80

// Parser extracts a candidate record from cleaned CV text
type Parser struct {
	profile    *Profile
	recognizer ner.Recognizer
	catalogs   *refdata.Catalogs
	log        *logger.Logger
}

// New creates a parser for one locale profile
func New(profile *Profile, recognizer ner.Recognizer, catalogs *refdata.Catalogs, log *logger.Logger) *Parser {
	return &Parser{
		profile:    profile,
		recognizer: recognizer,
		catalogs:   catalogs,
		log:        log.WithComponent("parser-" + profile.Locale),
	}
}

// Locale returns the profile locale this parser handles
func (p *Parser) Locale() string { return p.profile.Locale }

// Parse extracts all fields from cleaned CV text. A field the text does
// not yield stays empty; Parse itself never fails.
func (p *Parser) Parse(ctx context.Context, text, sourceFile string) *Record {
	entities, err := p.recognizer.Entities(ctx, text)
	if err != nil {
		p.log.Warn().Err(err).Str("file", sourceFile).Msg("entity recognition failed, pattern fallbacks only")
		entities = nil
	}

	sections := splitSections(text, p.profile)

	rec := &Record{SourceFile: sourceFile}
	rec.HoTen = extractName(text, entities, p.profile)
	rec.NgaySinh = extractDOB(text, p.profile)
	rec.Email = extractEmail(text)
	rec.SoDienThoai = extractPhone(text)
	rec.KhuVuc = intPtr(extractProvince(text, entities, p.catalogs, p.profile))
	rec.KinhNghiemNam = extractExperienceYears(text, sections)
	rec.TrinhDoHocVan = extractEducationLevel(text, entities, p.profile)
	rec.HocVan = extractEducationEntries(sections, p.profile)
	rec.KinhNghiem = extractExperienceEntries(sections, p.profile)
	rec.NgoaiNgu = extractLanguages(text)
	rec.KyNangChinh = p.catalogs.MatchSkills(text)
	rec.GioiThieu = extractSummary(text, sections)

	return rec
}

// extractSummary prefers the dedicated summary section and otherwise
// takes the first substantial paragraph.
func extractSummary(text string, sections map[sectionKind]string) *string {
	if section, ok := sections[sectionSummary]; ok {
		if s := strings.TrimSpace(section); s != "" {
			return strPtr(s)
		}
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len([]rune(paragraph)) >= minSummaryRunes {
			return strPtr(paragraph)
		}
	}

	return nil
}
