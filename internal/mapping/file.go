package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

// LineError describes a mapping file line that was skipped.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// ParseEntry parses a single "KEY=PREFIX" rule.
func ParseEntry(line string) (Entry, error) {
	key, prefix, found := strings.Cut(line, "=")
	if !found {
		return Entry{}, fmt.Errorf("%w: missing '='", ErrInvalidRule)
	}
	key = strings.TrimSpace(key)
	prefix = strings.TrimSpace(prefix)

	if winpath.IsDriveShaped(key) && len(key) == 3 {
		key = key[:2]
	}

	var e Entry
	switch {
	case winpath.IsDriveRoot(key):
		e = DriveEntry(key[0], prefix)
	case strings.HasPrefix(key, `\\`) || strings.HasPrefix(key, "//"):
		e = UNCEntry(key, prefix)
	default:
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidRule, key)
	}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Parse reads rules from r. Blank lines and # comments are ignored;
// invalid lines are recorded in Table.Skipped.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			t.Skipped = append(t.Skipped, LineError{Line: n, Text: line, Err: err})
			continue
		}
		t.entries = append(t.entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mapping rules: %w", err)
	}
	return t, nil
}

// Load reads the mapping file at path. A missing file yields an empty table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening mapping file %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// AppendDrive appends a drive rule to the mapping file, creating it and
// its parent directory as needed.
func AppendDrive(path string, letter byte, prefix string) error {
	return Append(path, DriveEntry(letter, prefix))
}

// AppendUNC appends a UNC rule to the mapping file.
func AppendUNC(path, root, prefix string) error {
	return Append(path, UNCEntry(root, prefix))
}

// Append validates e and appends it as a line to the mapping file.
func Append(path string, e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating mapping directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening mapping file %s: %w", path, err)
	}
	defer f.Close()

	line := e.String() + "\n"
	if needsNewline(f) {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("writing mapping file %s: %w", path, err)
	}
	return nil
}

// needsNewline reports whether the file is non-empty and lacks a final newline.
func needsNewline(f *os.File) bool {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return false
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false
	}
	return last[0] != '\n'
}
