package userdata

import (
	"fmt"
	"io"
	"os"

	"github.com/open-lnk/open-lnk/internal/platform"
)

// Default content for mappings.conf.
const defaultMappingContent = `# Windows prefix to Linux prefix rules, one per line.
# Drive rules map a letter, UNC rules map a share root:
#
# M:=/mnt/media
# //fileserver/projects=/mnt/projects
`

// Default content for config.yaml.
const defaultConfigContent = `# assist: true
# debug: false
# notify: true
# ansi_codepage: windows-1252
# mount_min_margin: 2
`

// Init creates the config and cache directories plus a commented mapping
// file and config file. Existing items are skipped with a message.
func Init(w io.Writer) error {
	if err := ensureDir(w, ConfigDir(), DirPermNormal); err != nil {
		return err
	}
	if err := ensureDir(w, CacheDir(), DirPermNormal); err != nil {
		return err
	}
	if err := ensureFile(w, MappingFile(), defaultMappingContent, FilePermNormal); err != nil {
		return err
	}
	return ensureFile(w, ConfigFile(), defaultConfigContent, FilePermNormal)
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
