package userdata

import (
	"fmt"
	"io"
	"os"

	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/mapping"
)

// Files names the user files a health check looks at.
type Files struct {
	Mapping string
	Cache   string
}

// DefaultFiles returns the XDG locations.
func DefaultFiles() Files {
	return Files{Mapping: MappingFile(), Cache: CacheFile()}
}

// Check reports on the config and cache directories, the mapping file and
// the link cache. When fix is true, missing directories are created. It
// returns the number of problems found.
func Check(w io.Writer, files Files, fix bool) int {
	fmt.Fprintln(w, "Userdata check:")

	problems := 0
	if !checkDir(w, ConfigDir(), fix) {
		problems++
	}
	if !checkDir(w, CacheDir(), fix) {
		problems++
	}
	if !checkMappingFile(w, files.Mapping) {
		problems++
	}
	if !checkCacheFile(w, files.Cache) {
		problems++
	}
	return problems
}

func checkDir(w io.Writer, path string, fix bool) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPermNormal); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return false
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		}
		// A missing directory is created on first write.
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", path)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return true
}

func checkMappingFile(w io.Writer, path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (no mapping rules)\n", path)
		return true
	}
	table, err := mapping.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	for _, skipped := range table.Skipped {
		fmt.Fprintf(w, "  [WARN] %s %v: %s\n", path, skipped, skipped.Text)
	}
	fmt.Fprintf(w, "  [ OK ] %s (%d rules)\n", path, table.Len())
	return len(table.Skipped) == 0
}

func checkCacheFile(w io.Writer, path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (empty cache)\n", path)
		return true
	}
	entries, err := linkcache.New(path).Entries()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s (%d entries)\n", path, len(entries))
	return true
}
