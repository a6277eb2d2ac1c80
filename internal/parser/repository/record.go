// Package repository persists parsed CV records to Postgres. The JSON
// output file stays the primary sink; the database is an optional one
// enabled by configuration.
package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/pkg/database"
)

// RecordRepository handles parsed record persistence
type RecordRepository struct {
	db *database.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *database.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Save upserts a parsed record keyed by its source file. Re-running a
// batch overwrites the previous extraction for the same file.
func (r *RecordRepository) Save(ctx context.Context, rec *parser.Record) error {
	hocVan, err := json.Marshal(rec.HocVan)
	if err != nil {
		hocVan = []byte("[]")
	}
	kinhNghiem, err := json.Marshal(rec.KinhNghiem)
	if err != nil {
		kinhNghiem = []byte("[]")
	}
	ngoaiNgu, err := json.Marshal(rec.NgoaiNgu)
	if err != nil {
		ngoaiNgu = []byte("[]")
	}
	kyNang, err := json.Marshal(rec.KyNangChinh)
	if err != nil {
		kyNang = []byte("[]")
	}

	query := `
		INSERT INTO cv_records (id, ho_ten, ngay_sinh, so_dien_thoai, email, khu_vuc,
		                        kinh_nghiem_nam, trinh_do_hoc_van, hoc_van, kinh_nghiem,
		                        ngoai_ngu, ky_nang_chinh, gioi_thieu, source_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (source_file) DO UPDATE SET
			ho_ten = EXCLUDED.ho_ten,
			ngay_sinh = EXCLUDED.ngay_sinh,
			so_dien_thoai = EXCLUDED.so_dien_thoai,
			email = EXCLUDED.email,
			khu_vuc = EXCLUDED.khu_vuc,
			kinh_nghiem_nam = EXCLUDED.kinh_nghiem_nam,
			trinh_do_hoc_van = EXCLUDED.trinh_do_hoc_van,
			hoc_van = EXCLUDED.hoc_van,
			kinh_nghiem = EXCLUDED.kinh_nghiem,
			ngoai_ngu = EXCLUDED.ngoai_ngu,
			ky_nang_chinh = EXCLUDED.ky_nang_chinh,
			gioi_thieu = EXCLUDED.gioi_thieu,
			updated_at = NOW()
	`

	_, err = r.db.ExecContext(ctx, query,
		uuid.New().String(),
		rec.HoTen,
		rec.NgaySinh,
		rec.SoDienThoai,
		rec.Email,
		rec.KhuVuc,
		rec.KinhNghiemNam,
		rec.TrinhDoHocVan,
		hocVan,
		kinhNghiem,
		ngoaiNgu,
		kyNang,
		rec.GioiThieu,
		rec.SourceFile,
	)
	return err
}

// GetBySource returns the stored record for one source file
func (r *RecordRepository) GetBySource(ctx context.Context, sourceFile string) (*parser.Record, error) {
	query := `
		SELECT ho_ten, ngay_sinh, so_dien_thoai, email, khu_vuc, kinh_nghiem_nam,
		       trinh_do_hoc_van, hoc_van, kinh_nghiem, ngoai_ngu, ky_nang_chinh,
		       gioi_thieu, source_file
		FROM cv_records
		WHERE source_file = $1
	`

	row := r.db.QueryRowxContext(ctx, query, sourceFile)

	var rec parser.Record
	var hocVan, kinhNghiem, ngoaiNgu, kyNang []byte
	if err := row.Scan(
		&rec.HoTen, &rec.NgaySinh, &rec.SoDienThoai, &rec.Email, &rec.KhuVuc,
		&rec.KinhNghiemNam, &rec.TrinhDoHocVan, &hocVan, &kinhNghiem,
		&ngoaiNgu, &kyNang, &rec.GioiThieu, &rec.SourceFile,
	); err != nil {
		return nil, err
	}

	json.Unmarshal(hocVan, &rec.HocVan)
	json.Unmarshal(kinhNghiem, &rec.KinhNghiem)
	json.Unmarshal(ngoaiNgu, &rec.NgoaiNgu)
	json.Unmarshal(kyNang, &rec.KyNangChinh)

	return &rec, nil
}
