package langdetect_test

import (
	"strings"
	"testing"

	"github.com/devwork/cv-pipeline/internal/langdetect"
)

func TestDetect(t *testing.T) {
	d := langdetect.New(50)

	vietnamese := "Tôi là kỹ sư phần mềm với năm năm kinh nghiệm làm việc tại các công ty công nghệ lớn ở Hà Nội và Thành phố Hồ Chí Minh."
	english := "I am a software engineer with five years of experience building web services and data pipelines for technology companies."

	tests := []struct {
		name string
		text string
		want langdetect.Language
	}{
		{"vietnamese with diacritics", vietnamese, langdetect.Vietnamese},
		{"plain english", english, langdetect.English},
		{"empty text", "", langdetect.Unknown},
		{"too short for detection", "Nguyen Van An, Hanoi", langdetect.Unknown},
		{
			// One diacritic is enough even in a mostly English document
			"mixed language leans vietnamese",
			english + " Địa chỉ: Hà Nội.",
			langdetect.Vietnamese,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectMinRunesBoundary(t *testing.T) {
	d := langdetect.New(50)

	// 49 letters of English content stays unknown, one more flips it
	short := strings.Repeat("work exp ", 5) + "engi" // 49 runes
	if got := d.Detect(short); got != langdetect.Unknown {
		t.Errorf("Detect(short) = %q, want unknown", got)
	}

	long := "I build and maintain distributed backend services in production environments."
	if got := d.Detect(long); got != langdetect.English {
		t.Errorf("Detect(long) = %q, want english", got)
	}
}
