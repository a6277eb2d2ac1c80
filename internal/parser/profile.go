package parser

import "regexp"

type degreePattern struct {
	re    *regexp.Regexp
	level int
}

type orgHint struct {
	keywords []string
	level    int
}

// sectionKind identifies a recognized CV section
type sectionKind int

const (
	sectionOther sectionKind = iota
	sectionEducation
	sectionExperience
	sectionSkills
	sectionLanguages
	sectionSummary
)

// Profile holds the locale-specific patterns of a field extractor. The
// English and Vietnamese extractors share all logic and differ only in
// the patterns collected here.
type Profile struct {
	Locale string

	// nameFallbacks match a standalone name line when NER finds no person
	nameFallbacks []*regexp.Regexp

	// dobMonthNames enables English month-name date formats
	dobMonthNames bool

	degreePatterns  []degreePattern
	orgHints        []orgHint
	educationAnchor *regexp.Regexp

	locationFallback *regexp.Regexp

	sectionHeaders map[string]sectionKind

	schoolLine  *regexp.Regexp
	majorLine   *regexp.Regexp
	companyLine *regexp.Regexp
	roleLine    *regexp.Regexp
}

// EnglishProfile returns the field-extraction profile for English CVs
func EnglishProfile() *Profile {
	return &Profile{
		Locale: "en",
		nameFallbacks: []*regexp.Regexp{
			regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)$`),
			regexp.MustCompile(`^([A-Z][A-Z\s]{2,})$`),
		},
		dobMonthNames: true,
		degreePatterns: []degreePattern{
			{regexp.MustCompile(`(?i)(master|phd|doctor)`), EducationPostgraduate},
			{regexp.MustCompile(`(?i)(university|bachelor|academy|engineer|\bBSc?\b)`), EducationUniversity},
			{regexp.MustCompile(`(?i)(college|vocational)`), EducationCollege},
			{regexp.MustCompile(`(?i)(high\s?school)`), EducationHighSchool},
		},
		orgHints: []orgHint{
			{[]string{"university", "academy"}, EducationUniversity},
			{[]string{"vocational", "college"}, EducationCollege},
			{[]string{"high school", "highschool"}, EducationHighSchool},
		},
		educationAnchor:  regexp.MustCompile(`(?is)(major|education|degree)[^:\n]*:?(.*?)(\n\s*\n|$)`),
		locationFallback: regexp.MustCompile(`(?i)(City|Province)[^.,\n]+`),
		sectionHeaders: map[string]sectionKind{
			"education":          sectionEducation,
			"academic":           sectionEducation,
			"qualifications":     sectionEducation,
			"experience":         sectionExperience,
			"work experience":    sectionExperience,
			"employment history": sectionExperience,
			"work history":       sectionExperience,
			"projects":           sectionExperience,
			"skills":             sectionSkills,
			"technical skills":   sectionSkills,
			"languages":          sectionLanguages,
			"summary":            sectionSummary,
			"objective":          sectionSummary,
			"about me":           sectionSummary,
			"profile":            sectionSummary,
		},
		schoolLine:  regexp.MustCompile(`(?i)(university|college|academy|institute|school)`),
		majorLine:   regexp.MustCompile(`(?i)(?:major|degree|field)\s*[:\-]?\s*(.+)`),
		companyLine: regexp.MustCompile(`(?i)(company|corporation|corp\.?|co\.,?\s*ltd|ltd\.?|inc\.?|jsc|group)`),
		roleLine:    regexp.MustCompile(`(?i)(?:position|role|title)\s*[:\-]?\s*(.+)|(developer|engineer|manager|designer|analyst|accountant|tester|consultant|intern)`),
	}
}

// VietnameseProfile returns the field-extraction profile for Vietnamese CVs
func VietnameseProfile() *Profile {
	return &Profile{
		Locale: "vn",
		nameFallbacks: []*regexp.Regexp{
			regexp.MustCompile(`^([A-ZÀ-Ỵ][A-ZÀ-Ỵ\s]{2,})$`),
			regexp.MustCompile(`^([A-ZÀ-Ỵ][a-zà-ỹ]+(?:\s+[A-ZÀ-Ỵ][a-zà-ỹ]+)+)$`),
		},
		degreePatterns: []degreePattern{
			{regexp.MustCompile(`(?i)(thạc sĩ|tiến sĩ|master|phd|doctor)`), EducationPostgraduate},
			{regexp.MustCompile(`(?i)(đại học|đh|học viện|university|bachelor|cử nhân|kỹ sư|academy)`), EducationUniversity},
			{regexp.MustCompile(`(?i)(cao đẳng|college|trung cấp|vocational)`), EducationCollege},
			{regexp.MustCompile(`(?i)(trung học|thpt|high\s?school)`), EducationHighSchool},
		},
		orgHints: []orgHint{
			{[]string{"đại học", "đh", "học viện"}, EducationUniversity},
			{[]string{"cao đẳng", "trung cấp"}, EducationCollege},
			{[]string{"trung học", "thpt"}, EducationHighSchool},
		},
		educationAnchor:  regexp.MustCompile(`(?is)(học vấn|giáo dục|trình độ|bằng cấp|education|bằng)[^:\n]*:?(.*?)(\n\s*\n|$)`),
		locationFallback: regexp.MustCompile(`(?i)(Thành phố|Tỉnh|TP)[^.,\n]+`),
		sectionHeaders: map[string]sectionKind{
			"học vấn":             sectionEducation,
			"trình độ học vấn":    sectionEducation,
			"bằng cấp":            sectionEducation,
			"education":           sectionEducation,
			"kinh nghiệm":         sectionExperience,
			"kinh nghiệm làm việc": sectionExperience,
			"quá trình làm việc":  sectionExperience,
			"dự án":               sectionExperience,
			"experience":          sectionExperience,
			"kỹ năng":             sectionSkills,
			"skills":              sectionSkills,
			"ngoại ngữ":           sectionLanguages,
			"languages":           sectionLanguages,
			"giới thiệu":          sectionSummary,
			"mục tiêu":            sectionSummary,
			"mục tiêu nghề nghiệp": sectionSummary,
			"summary":             sectionSummary,
		},
		schoolLine:  regexp.MustCompile(`(?i)(đại học|học viện|cao đẳng|trung cấp|trường|university|college|academy)`),
		majorLine:   regexp.MustCompile(`(?i)(?:chuyên ngành|ngành)\s*[:\-]?\s*(.+)`),
		companyLine: regexp.MustCompile(`(?i)(công ty|tập đoàn|cty|tnhh|cổ phần|company|corp\.?|jsc|ltd\.?)`),
		roleLine:    regexp.MustCompile(`(?i)(?:vị trí|chức danh|chức vụ|position)\s*[:\-]?\s*(.+)|(nhân viên|lập trình viên|trưởng phòng|kỹ sư|chuyên viên|developer|engineer|manager)`),
	}
}
