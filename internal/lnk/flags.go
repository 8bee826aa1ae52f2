package lnk

import "strings"

// LinkFlags is the header bitmask gating the optional sections.
type LinkFlags uint32

const (
	HasLinkTargetIDList LinkFlags = 1 << iota
	HasLinkInfo
	HasName
	HasRelativePath
	HasWorkingDir
	HasArguments
	HasIconLocation
	IsUnicode
)

var flagNames = []struct {
	flag LinkFlags
	name string
}{
	{HasLinkTargetIDList, "HasLinkTargetIDList"},
	{HasLinkInfo, "HasLinkInfo"},
	{HasName, "HasName"},
	{HasRelativePath, "HasRelativePath"},
	{HasWorkingDir, "HasWorkingDir"},
	{HasArguments, "HasArguments"},
	{HasIconLocation, "HasIconLocation"},
	{IsUnicode, "IsUnicode"},
}

// Has reports whether every bit of f is set.
func (l LinkFlags) Has(f LinkFlags) bool { return l&f == f }

func (l LinkFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if l.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// MarshalText renders the flag names, so YAML and JSON output stay readable.
func (l LinkFlags) MarshalText() ([]byte, error) { return []byte(l.String()), nil }
