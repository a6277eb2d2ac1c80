package refdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devwork/cv-pipeline/internal/refdata"
)

func TestMatchLocation(t *testing.T) {
	catalogs := refdata.Embedded()

	tests := []struct {
		name    string
		input   string
		wantID  int
		matched bool
	}{
		{"exact name", "Hà Nội", 1, true},
		{"folded ascii", "ha noi", 1, true},
		{"abbreviation tp.hcm", "TP.HCM", 79, true},
		{"abbreviation hn", "HN", 1, true},
		{"english exonym", "Hanoi", 1, true},
		{"city suffix", "ho chi minh city", 79, true},
		{"administrative prefix", "Thành phố Đà Nẵng", 48, true},
		{"embedded in address", "Quận 1, TP. Hồ Chí Minh", 79, true},
		{"unknown place", "Atlantis", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := catalogs.MatchLocation(tt.input)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestMatchSkills(t *testing.T) {
	catalogs := refdata.NewCatalogs(nil, []refdata.Skill{
		{ID: 1, Name: "Java"},
		{ID: 2, Name: "Python"},
		{ID: 5, Name: "Go"},
		{ID: 7, Name: "C++"},
		{ID: 21, Name: "Node.js"},
		{ID: 33, Name: "Docker"},
	})

	tests := []struct {
		name string
		text string
		want []int
	}{
		{
			name: "plain mentions",
			text: "Thành thạo Java, Python và Docker.",
			want: []int{1, 2, 33},
		},
		{
			name: "symbol-heavy names",
			text: "Backend development with C++ and Node.js",
			want: []int{7, 21},
		},
		{
			name: "word boundaries respected",
			text: "Javascript and Pythonista are not enough",
			want: nil,
		},
		{
			name: "no skills",
			text: "Giao tiếp tốt, làm việc nhóm",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalogs.MatchSkills(tt.text))
		})
	}
}
