package platform

import (
	"os"
	"runtime"
)

// Exists reports whether path can be stat'ed. Missing and unreadable paths
// are both reported as absent.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Chmod sets permission bits. It is a no-op on Windows.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
