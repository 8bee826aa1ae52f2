package winpath

import "strings"

// IsDriveShaped reports whether s starts with a drive letter, a colon and a
// separator of either kind, e.g. `C:\` or "c:/".
func IsDriveShaped(s string) bool {
	return len(s) >= 3 && isAlpha(s[0]) && s[1] == ':' && isSep(s[2])
}

// IsDriveRoot reports whether s is a bare drive designator such as "M:".
func IsDriveRoot(s string) bool {
	return len(s) == 2 && isAlpha(s[0]) && s[1] == ':'
}

// IsUNCShaped reports whether s starts with two separators of the same kind
// and is long enough to hold a server and a share.
func IsUNCShaped(s string) bool {
	return len(s) >= 5 && (strings.HasPrefix(s, `\\`) || strings.HasPrefix(s, "//"))
}

// ToSlash converts every backslash to a forward slash.
func ToSlash(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// ToBackslash converts every forward slash to a backslash.
func ToBackslash(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isSep(c byte) bool { return c == '\\' || c == '/' }

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
