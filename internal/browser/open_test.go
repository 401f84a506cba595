package browser

import (
	"reflect"
	"runtime"
	"testing"
)

func TestOpenSupported(t *testing.T) {
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		// These are supported platforms
	default:
		t.Skipf("Unsupported platform: %s", runtime.GOOS)
	}
	if _, _, err := command(runtime.GOOS, "/tmp"); err != nil {
		t.Errorf("command() error = %v", err)
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"/images"}},
		{"linux", "xdg-open", []string{"/images"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "/images"}},
	}
	for _, tt := range tests {
		name, args, err := command(tt.goos, "/images")
		if err != nil {
			t.Errorf("command(%s) error = %v", tt.goos, err)
			continue
		}
		if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
			t.Errorf("command(%s) = %s %v, want %s %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
		}
	}

	if _, _, err := command("plan9", "/images"); err == nil {
		t.Error("command(plan9) error = nil, want unsupported platform")
	}
}
