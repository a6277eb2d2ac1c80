package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devwork/cv-pipeline/internal/ner"
	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/internal/refdata"
	"github.com/devwork/cv-pipeline/pkg/logger"
)

// stubRecognizer returns a fixed entity list
type stubRecognizer struct {
	entities []ner.Entity
}

func (s stubRecognizer) Name() string { return "stub" }

func (s stubRecognizer) Entities(ctx context.Context, text string) ([]ner.Entity, error) {
	return s.entities, nil
}

func newEnglishParser(entities []ner.Entity) *parser.Parser {
	log := logger.New("parser-test", "test")
	return parser.New(parser.EnglishProfile(), stubRecognizer{entities: entities}, refdata.Embedded(), log)
}

func newVietnameseParser(entities []ner.Entity) *parser.Parser {
	log := logger.New("parser-test", "test")
	return parser.New(parser.VietnameseProfile(), stubRecognizer{entities: entities}, refdata.Embedded(), log)
}

func TestParseEnglishCV(t *testing.T) {
	text := `John Smith
Software Engineer

Email: john.smith@example.com
Phone: 0987654321
Address: Hanoi

SUMMARY
Backend engineer focused on distributed systems, message queues and observability tooling for production services.

EDUCATION
Hanoi University of Science and Technology
Major: Computer Science
2015 - 2019

WORK EXPERIENCE
FPT Software Company
Position: Backend Developer
2019 - 2023

SKILLS
Go, Python, Docker, PostgreSQL

LANGUAGES
English: IELTS 7.5`

	p := newEnglishParser([]ner.Entity{
		{Text: "John Smith", Label: ner.LabelPerson, Score: 0.99},
		{Text: "Hanoi", Label: ner.LabelLocation, Score: 0.9},
	})

	rec := p.Parse(context.Background(), text, "john_smith_extracted.txt")

	require.NotNil(t, rec.HoTen)
	assert.Equal(t, "John Smith", *rec.HoTen)

	require.NotNil(t, rec.Email)
	assert.Equal(t, "john.smith@example.com", *rec.Email)

	require.NotNil(t, rec.SoDienThoai)
	assert.Equal(t, "0987654321", *rec.SoDienThoai)

	require.NotNil(t, rec.KhuVuc)
	assert.Equal(t, 1, *rec.KhuVuc) // Hà Nội

	assert.Equal(t, parser.EducationUniversity, rec.TrinhDoHocVan)

	require.Len(t, rec.HocVan, 1)
	assert.Equal(t, "Hanoi University of Science and Technology", rec.HocVan[0].Truong)
	assert.Equal(t, "Computer Science", rec.HocVan[0].ChuyenNganh)
	assert.Equal(t, "2015 - 2019", rec.HocVan[0].ThoiGian)

	require.Len(t, rec.KinhNghiem, 1)
	assert.Equal(t, "FPT Software Company", rec.KinhNghiem[0].CongTy)
	assert.Equal(t, "Backend Developer", rec.KinhNghiem[0].ViTri)
	assert.Equal(t, "2019 - 2023", rec.KinhNghiem[0].ThoiGian)

	// No explicit statement, so the experience section span is used
	require.NotNil(t, rec.KinhNghiemNam)
	assert.Equal(t, 4, *rec.KinhNghiemNam)

	assert.Equal(t, []int{parser.LanguageEnglish}, rec.NgoaiNgu)
	assert.NotEmpty(t, rec.KyNangChinh)
	require.NotNil(t, rec.GioiThieu)
	assert.Contains(t, *rec.GioiThieu, "distributed systems")
	assert.Equal(t, "john_smith_extracted.txt", rec.SourceFile)
}

func TestParseVietnameseCV(t *testing.T) {
	text := `NGUYỄN VĂN AN
Lập trình viên

Email: an.nguyen@example.com
Phone: 0912345678
Ngày sinh: 15/03/1994
Địa chỉ: Quận 1, TP. Hồ Chí Minh

HỌC VẤN
Đại học Bách Khoa Hà Nội
Chuyên ngành: Khoa học máy tính
2012 - 2016

KINH NGHIỆM LÀM VIỆC
Công ty TNHH ABC
Vị trí: Lập trình viên backend
3 năm kinh nghiệm

NGOẠI NGỮ
Tiếng Anh cơ bản
Tiếng Nhật N2`

	p := newVietnameseParser([]ner.Entity{
		{Text: "Nguyễn Văn An", Label: ner.LabelPerson, Score: 0.98},
		{Text: "Hồ Chí Minh", Label: ner.LabelLocation, Score: 0.95},
	})

	rec := p.Parse(context.Background(), text, "an_extracted.txt")

	require.NotNil(t, rec.HoTen)
	assert.Equal(t, "Nguyễn Văn An", *rec.HoTen)

	require.NotNil(t, rec.NgaySinh)
	assert.Equal(t, "15/03/1994", *rec.NgaySinh)

	require.NotNil(t, rec.SoDienThoai)
	assert.Equal(t, "0912345678", *rec.SoDienThoai)

	require.NotNil(t, rec.KhuVuc)
	assert.Equal(t, 79, *rec.KhuVuc) // Hồ Chí Minh

	assert.Equal(t, parser.EducationUniversity, rec.TrinhDoHocVan)

	require.NotNil(t, rec.KinhNghiemNam)
	assert.Equal(t, 3, *rec.KinhNghiemNam)

	require.Len(t, rec.HocVan, 1)
	assert.Equal(t, "Đại học Bách Khoa Hà Nội", rec.HocVan[0].Truong)
	assert.Equal(t, "Khoa học máy tính", rec.HocVan[0].ChuyenNganh)

	require.Len(t, rec.KinhNghiem, 1)
	assert.Equal(t, "Công ty TNHH ABC", rec.KinhNghiem[0].CongTy)

	// Basic English (3) and advanced Japanese (2), sorted
	assert.Equal(t, []int{parser.LanguageJapanese, parser.LanguageBasicEnglish}, rec.NgoaiNgu)
}

func TestParseContactFields(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail *string
		wantPhone *string
	}{
		{
			name:      "labeled email",
			text:      "Email: a@b.com",
			wantEmail: ptr("a@b.com"),
		},
		{
			name:      "domestic phone",
			text:      "Số điện thoại: 0987654321",
			wantPhone: ptr("0987654321"),
		},
		{
			name:      "international phone with spaces",
			text:      "Phone: +84 987 654 321",
			wantPhone: ptr("0987654321"),
		},
		{
			name: "no contact info",
			text: "Kỹ sư phần mềm tại Hà Nội",
		},
	}

	p := newVietnameseParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(context.Background(), tt.text, "cv.txt")

			if tt.wantEmail != nil {
				require.NotNil(t, rec.Email)
				assert.Equal(t, *tt.wantEmail, *rec.Email)
			} else {
				assert.Nil(t, rec.Email)
			}
			if tt.wantPhone != nil {
				require.NotNil(t, rec.SoDienThoai)
				assert.Equal(t, *tt.wantPhone, *rec.SoDienThoai)
			} else {
				assert.Nil(t, rec.SoDienThoai)
			}
		})
	}
}

func TestParseDOBFormats(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		text   string
		want   string
	}{
		{"numeric vn", "vn", "Ngày sinh: 15/03/1994", "15/03/1994"},
		{"numeric dashes", "vn", "DOB: 3-12-1988", "03/12/1988"},
		{"month name", "en", "Date of Birth: 15 March 1994", "15/03/1994"},
		{"month first with ordinal", "en", "Born June 1st, 94", "01/06/1994"},
		{"two digit year pivot forward", "vn", "Ngày sinh: 01/02/04", "01/02/2004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p *parser.Parser
			if tt.locale == "en" {
				p = newEnglishParser(nil)
			} else {
				p = newVietnameseParser(nil)
			}

			rec := p.Parse(context.Background(), tt.text, "cv.txt")
			require.NotNil(t, rec.NgaySinh)
			assert.Equal(t, tt.want, *rec.NgaySinh)
		})
	}
}

func TestParseEducationLevelDefaults(t *testing.T) {
	p := newVietnameseParser(nil)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"postgraduate outranks university", "Thạc sĩ Khoa học máy tính, Đại học Quốc gia", parser.EducationPostgraduate},
		{"university", "Tốt nghiệp Đại học Bách Khoa", parser.EducationUniversity},
		{"college", "Cao đẳng nghề Hà Nội", parser.EducationCollege},
		{"high school", "Tốt nghiệp THPT Chu Văn An", parser.EducationHighSchool},
		{"nothing mentioned", "Một đoạn văn không nói gì về trường lớp", parser.EducationOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(context.Background(), tt.text, "cv.txt")
			assert.Equal(t, tt.want, rec.TrinhDoHocVan)
		})
	}
}

func TestParseEducationLevelFromOrgEntities(t *testing.T) {
	p := newVietnameseParser([]ner.Entity{
		{Text: "Học viện Công nghệ Bưu chính", Label: ner.LabelOrganization, Score: 0.9},
	})

	rec := p.Parse(context.Background(), "Một bản lý lịch không ghi rõ bằng cấp", "cv.txt")
	assert.Equal(t, parser.EducationUniversity, rec.TrinhDoHocVan)
}

func TestParseLanguageLevels(t *testing.T) {
	p := newEnglishParser(nil)

	tests := []struct {
		name string
		text string
		want []int
	}{
		{"high ielts", "English: IELTS 7.5", []int{parser.LanguageEnglish}},
		{"low ielts", "English: IELTS 5.5", []int{parser.LanguageBasicEnglish}},
		{"high toeic", "English TOEIC 800", []int{parser.LanguageEnglish}},
		{"low toeic", "English TOEIC 500", []int{parser.LanguageBasicEnglish}},
		{"cefr advanced", "English level C1", []int{parser.LanguageEnglish}},
		{"cefr basic", "English B2 certificate", []int{parser.LanguageBasicEnglish}},
		{"jlpt advanced", "Japanese JLPT N1", []int{parser.LanguageJapanese}},
		{"jlpt basic", "Japanese N4", []int{parser.LanguageBasicJapanese}},
		{"keyword fluent", "Fluent English speaker", []int{parser.LanguageEnglish}},
		{"none", "No foreign tongue mentioned here", []int{parser.LanguageNone}},
		{
			"both languages sorted",
			"English: IELTS 8.0\nJapanese N5",
			[]int{parser.LanguageEnglish, parser.LanguageBasicJapanese},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(context.Background(), tt.text, "cv.txt")
			assert.Equal(t, tt.want, rec.NgoaiNgu)
		})
	}
}

func TestParseNameFallback(t *testing.T) {
	// No person entities: the first lines are matched directly
	p := newEnglishParser(nil)

	rec := p.Parse(context.Background(), "John Smith\nSoftware Engineer with ten years of experience.", "cv.txt")
	require.NotNil(t, rec.HoTen)
	assert.Equal(t, "John Smith", *rec.HoTen)
}

func TestParseNamePicksBestEntity(t *testing.T) {
	p := newVietnameseParser([]ner.Entity{
		{Text: "An", Label: ner.LabelPerson, Score: 0.8},
		{Text: "Nguyễn Văn An", Label: ner.LabelPerson, Score: 0.7},
		{Text: "Văn An", Label: ner.LabelPerson, Score: 0.9},
	})

	rec := p.Parse(context.Background(), "nội dung hồ sơ", "cv.txt")
	require.NotNil(t, rec.HoTen)
	assert.Equal(t, "Nguyễn Văn An", *rec.HoTen)
}

func TestParseDefaultProvince(t *testing.T) {
	p := newEnglishParser(nil)

	rec := p.Parse(context.Background(), "A resume without any location information", "cv.txt")
	require.NotNil(t, rec.KhuVuc)
	assert.Equal(t, refdata.DefaultProvinceID, *rec.KhuVuc)
}

func ptr(s string) *string { return &s }
