package core

import "testing"

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		in   string
		want SourceType
	}{
		{"image", SourceImage},
		{"disc", SourceDisc},
		{"none", SourceNone},
		{"", SourceNone},
		{"bogus", SourceNone},
	}
	for _, tt := range tests {
		if got := ParseSourceType(tt.in); got != tt.want {
			t.Errorf("ParseSourceType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMediaSourceIsImage(t *testing.T) {
	if !(MediaSource{Type: SourceImage, Path: "/games/a.iso"}).IsImage() {
		t.Error("IsImage() = false, want true for image with path")
	}
	if (MediaSource{Type: SourceImage}).IsImage() {
		t.Error("IsImage() = true, want false for image without path")
	}
	if (MediaSource{Type: SourceDisc, Path: "/dev/sr0"}).IsImage() {
		t.Error("IsImage() = true, want false for disc source")
	}
}
