// Package browser opens files and folders with the desktop's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open opens target with the platform's default application.
func Open(target string) error {
	name, args, err := command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// Reveal opens the folder containing path.
func Reveal(path string) error {
	return Open(filepath.Dir(path))
}

func command(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
