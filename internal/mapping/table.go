package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

var (
	// ErrDeniedPrefix is returned for "/" and prefixes under system roots.
	ErrDeniedPrefix = errors.New("prefix is under a system mount root")
	// ErrRelativePrefix is returned for prefixes that are not absolute.
	ErrRelativePrefix = errors.New("prefix is not an absolute path")
	// ErrInvalidRule is returned for keys that are neither a drive nor a UNC root.
	ErrInvalidRule = errors.New("rule key is neither a drive letter nor a UNC root")
)

// Kind tells drive rules from UNC rules.
type Kind int

const (
	DriveRule Kind = iota + 1
	UNCRule
)

// Entry is one mapping rule. Drive is set for drive rules, Root (canonical
// "//server[/share[/sub]]") for UNC rules. A server-only root covers every
// share on that server.
type Entry struct {
	Kind   Kind
	Drive  byte
	Root   string
	Prefix string
}

// DriveEntry builds a drive rule. The letter is upper-cased.
func DriveEntry(letter byte, prefix string) Entry {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return Entry{Kind: DriveRule, Drive: letter, Prefix: winpath.TrimTrailingSlashes(prefix)}
}

// UNCEntry builds a UNC rule with a canonicalized root.
func UNCEntry(root, prefix string) Entry {
	return Entry{Kind: UNCRule, Root: winpath.NormalizeUNC(root), Prefix: winpath.TrimTrailingSlashes(prefix)}
}

// Key is the left-hand side of the rule as written to the mapping file.
func (e Entry) Key() string {
	if e.Kind == DriveRule {
		return string(e.Drive) + ":"
	}
	return e.Root
}

// String renders the rule as a mapping file line.
func (e Entry) String() string {
	return e.Key() + "=" + e.Prefix
}

// Validate checks the rule shape and its prefix.
func (e Entry) Validate() error {
	switch e.Kind {
	case DriveRule:
		if e.Drive < 'A' || e.Drive > 'Z' {
			return fmt.Errorf("%w: drive %q", ErrInvalidRule, e.Drive)
		}
	case UNCRule:
		if !validRoot(e.Root) {
			return fmt.Errorf("%w: %q", ErrInvalidRule, e.Root)
		}
	default:
		return ErrInvalidRule
	}
	return CheckPrefix(e.Prefix)
}

// validRoot accepts "//server" and "//server/share[/sub]" with no empty
// segments.
func validRoot(root string) bool {
	if !strings.HasPrefix(root, "//") || len(root) == 2 {
		return false
	}
	for _, seg := range strings.Split(root[2:], "/") {
		if seg == "" {
			return false
		}
	}
	return true
}

// CheckPrefix reports whether prefix may be stored or matched.
func CheckPrefix(prefix string) error {
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("%w: %q", ErrRelativePrefix, prefix)
	}
	if IsPrefixDenied(prefix) {
		return fmt.Errorf("%w: %q", ErrDeniedPrefix, prefix)
	}
	return nil
}

// Table is an ordered rule set. It is read-only once loaded for a run.
type Table struct {
	entries []Entry

	// Skipped lists lines that were ignored while loading.
	Skipped []LineError
}

// NewTable builds a table from entries, dropping invalid ones.
func NewTable(entries ...Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		_ = t.Add(e)
	}
	return t
}

// Add appends a rule after validating it.
func (t *Table) Add(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	t.entries = append(t.entries, e)
	return nil
}

// Entries returns the rules in load order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.entries) }

// DriveEntries returns every rule for letter, in load order.
func (t *Table) DriveEntries(letter byte) []Entry {
	letter = DriveEntry(letter, "").Drive
	var out []Entry
	for _, e := range t.entries {
		if e.Kind == DriveRule && e.Drive == letter {
			out = append(out, e)
		}
	}
	return out
}

// MatchDrive returns the first rule for letter.
func (t *Table) MatchDrive(letter byte) (Entry, bool) {
	if es := t.DriveEntries(letter); len(es) > 0 {
		return es[0], true
	}
	return Entry{}, false
}

// MatchUNC returns the rule whose root is the longest segment-boundary
// prefix of path, and the part of path after that root. Roots compare
// without regard to case.
func (t *Table) MatchUNC(path string) (Entry, string, bool) {
	path = winpath.NormalizeUNC(path)
	var best Entry
	found := false
	for _, e := range t.entries {
		if e.Kind != UNCRule || len(e.Root) <= len(best.Root) {
			continue
		}
		if winpath.HasPathPrefix(path, e.Root, true) {
			best, found = e, true
		}
	}
	if !found {
		return Entry{}, "", false
	}
	return best, path[len(best.Root):], true
}

// ResolveDrive tries each rule for the path's drive in load order and
// returns the first joined candidate that exists.
func (t *Table) ResolveDrive(p winpath.Path, exists func(string) bool) (string, bool) {
	if p.Kind != winpath.DriveLetter {
		return "", false
	}
	for _, e := range t.DriveEntries(p.Drive) {
		cand := winpath.JoinPrefix(e.Prefix, p.Rest)
		if exists(cand) {
			return cand, true
		}
	}
	return "", false
}

// ResolveUNC joins the longest matching rule's prefix with the remainder
// and returns it if it exists.
func (t *Table) ResolveUNC(unc string, exists func(string) bool) (string, bool) {
	e, rest, ok := t.MatchUNC(unc)
	if !ok {
		return "", false
	}
	cand := winpath.JoinPrefix(e.Prefix, rest)
	if !exists(cand) {
		return "", false
	}
	return cand, true
}
