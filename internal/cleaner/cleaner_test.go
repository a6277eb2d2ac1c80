package cleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devwork/cv-pipeline/internal/cleaner"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalizes line endings",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "strips leading artifact",
			input: "` xNguyen Van An",
			want:  "Nguyen Van An",
		},
		{
			name:  "collapses doubled section headers",
			input: "EDUCATION EDUCATION\nBachelor of Science",
			want:  "EDUCATION\nBachelor of Science",
		},
		{
			name:  "removes page footers",
			input: "some text Page 1 of 3 more text",
			want:  "some text more text",
		},
		{
			name:  "collapses whitespace runs",
			input: "name:    An\n\n\n\n\nnext",
			want:  "name: An\n\nnext",
		},
		{
			name:  "inserts missing space after period",
			input: "Hanoi University.Worked at FPT",
			want:  "Hanoi University. Worked at FPT",
		},
		{
			name:  "strips html tags",
			input: "skills: <b>Java</b>",
			want:  "skills: Java",
		},
		{
			name:  "fixes ligatures and smart quotes",
			input: "ﬁnance “expert”",
			want:  `finance "expert"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleaner.Clean(tt.input))
		})
	}
}

func TestCleanLabelsContacts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "labels bare email",
			input: "reach me at an.nguyen@example.com anytime",
			want:  "reach me at Email: an.nguyen@example.com anytime",
		},
		{
			name:  "leaves labeled email alone",
			input: "Email: an.nguyen@example.com",
			want:  "Email: an.nguyen@example.com",
		},
		{
			name:  "labels international phone",
			input: "call +84987654321 today",
			want:  "call Phone: +84987654321 today",
		},
		{
			name:  "labels github profile",
			input: "see github.com/annguyen for code",
			want:  "see GitHub: github.com/annguyen for code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleaner.Clean(tt.input))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	input := "EDUCATION EDUCATION\nHanoi  University.Worked   at FPT\n\n\n\nEmail: a@b.com"

	once := cleaner.Clean(input)
	twice := cleaner.Clean(once)

	assert.Equal(t, once, twice)
}
