package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/open-lnk/open-lnk/internal/lnk"
	"github.com/open-lnk/open-lnk/internal/winpath"
)

// ErrNoTarget is returned when a shortcut holds no usable target path.
var ErrNoTarget = errors.New("no target path found in .lnk file")

// Target is one shortcut to resolve.
type Target struct {
	// Shortcut is the shortcut path as given by the user.
	Shortcut string
	// Key identifies the shortcut in the link cache. Empty disables the
	// cache and the assistant.
	Key string
	// Windows is the raw Windows-style target.
	Windows string
	// Record is the decoded shortcut.
	Record *lnk.Record
}

// NewTarget builds the Windows target of rec.
func NewTarget(shortcut, key string, rec *lnk.Record) (Target, error) {
	win, ok := lnk.BuildTarget(rec)
	if !ok {
		return Target{}, ErrNoTarget
	}
	return Target{Shortcut: shortcut, Key: key, Windows: win, Record: rec}, nil
}

// Path returns the classified, slash-normalized target.
func (t Target) Path() winpath.Path {
	return winpath.ClassifyWindows(t.Windows)
}

// Result is the outcome for one shortcut.
type Result struct {
	State State `json:"state" yaml:"state"`
	Stage Stage `json:"stage" yaml:"stage"`
	// Path is a local path, or an smb:// URI when State is UriFallback.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Prefix is the POSIX prefix the path was built on, when known.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// IsURI reports whether Path is a URI rather than a local path.
func (r Result) IsURI() bool { return r.State == UriFallback }

// UnresolvedError reports a shortcut no stage could resolve.
type UnresolvedError struct {
	Target Target
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("could not resolve %s (%s)", e.Target.Windows, e.Target.Shortcut)
}

// Report renders the diagnostic block shown to the user.
func (e *UnresolvedError) Report() string {
	var b strings.Builder
	b.WriteString("Could not resolve this shortcut target.\n\n")
	fmt.Fprintf(&b, "LNK file:\n%s\n\n", e.Target.Shortcut)
	fmt.Fprintf(&b, "Windows target (raw):\n%s\n\n", orNull(e.Target.Windows))
	b.WriteString("Extracted fields:\n")
	if e.Target.Record != nil {
		for _, f := range e.Target.Record.DiagnosticFields() {
			v := "(null)"
			if f.Value != nil {
				v = *f.Value
			}
			fmt.Fprintf(&b, "  %s: %s\n", f.Label, v)
		}
	}
	return b.String()
}

func orNull(s string) string {
	if s == "" {
		return "(null)"
	}
	return s
}
