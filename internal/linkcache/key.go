package linkcache

import "path/filepath"

// Key returns the cache key for a shortcut file: its absolute path with
// symlinks resolved, or the cleaned absolute path when resolution fails.
func Key(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
