// Package parser extracts structured candidate records from cleaned CV
// text. The record schema keeps the Vietnamese field names used by the
// downstream recruitment system.
package parser

// EducationEntry is one schooling period listed in a CV
type EducationEntry struct {
	Truong      string `json:"truong"`
	ChuyenNganh string `json:"chuyen_nganh,omitempty"`
	ThoiGian    string `json:"thoi_gian,omitempty"`
}

// ExperienceEntry is one employment period listed in a CV
type ExperienceEntry struct {
	CongTy   string `json:"cong_ty"`
	ViTri    string `json:"vi_tri,omitempty"`
	ThoiGian string `json:"thoi_gian,omitempty"`
}

// Record is the extraction result for one CV. Pointer fields stay nil
// when the corresponding information could not be found; extraction
// misses are not errors.
type Record struct {
	HoTen         *string           `json:"ho_ten"`
	NgaySinh      *string           `json:"ngay_sinh"`
	SoDienThoai   *string           `json:"so_dien_thoai"`
	Email         *string           `json:"email" validate:"omitempty,email"`
	KhuVuc        *int              `json:"khu_vuc"`
	KinhNghiemNam *int              `json:"kinh_nghiem_nam"`
	TrinhDoHocVan int               `json:"trinh_do_hoc_van" validate:"min=1,max=5"`
	HocVan        []EducationEntry  `json:"hoc_van"`
	KinhNghiem    []ExperienceEntry `json:"kinh_nghiem"`
	NgoaiNgu      []int             `json:"ngoai_ngu"`
	KyNangChinh   []int             `json:"ky_nang_chinh"`
	GioiThieu     *string           `json:"gioi_thieu"`
	SourceFile    string            `json:"source_file"`
}

// Education level IDs
const (
	EducationHighSchool   = 1
	EducationCollege      = 2
	EducationUniversity   = 3
	EducationPostgraduate = 4
	EducationOther        = 5
)

// Language proficiency IDs
const (
	LanguageEnglish       = 1
	LanguageJapanese      = 2
	LanguageBasicEnglish  = 3
	LanguageBasicJapanese = 4
	LanguageNone          = 5
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
