package winpath

import "strings"

// NormalizeUNC canonicalizes a UNC string to "//server/share[/rest]":
// backslashes become slashes, exactly two leading slashes, no trailing
// slash.
func NormalizeUNC(s string) string {
	s = ToSlash(s)
	s = strings.TrimPrefix(s, "//")
	s = "//" + s
	for len(s) > 2 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// ParseUNCShare splits a canonical UNC string. rest keeps its leading
// slash, or is empty when the path names the share itself.
func ParseUNCShare(unc string) (server, share, rest string, ok bool) {
	if !strings.HasPrefix(unc, "//") {
		return "", "", "", false
	}
	p := unc[2:]
	server, after, found := strings.Cut(p, "/")
	if !found || server == "" {
		return "", "", "", false
	}
	share = after
	if i := strings.IndexByte(after, '/'); i >= 0 {
		share, rest = after[:i], after[i:]
	}
	if share == "" {
		return "", "", "", false
	}
	return server, share, rest, true
}

// NormalizeUNCRoot turns a share root as stored in a shell link into the
// Windows form `\\server\share`. Missing leading backslashes are added.
func NormalizeUNCRoot(s string) string {
	if s == "" {
		return ""
	}
	s = ToBackslash(s)
	switch {
	case strings.HasPrefix(s, `\\`):
		return s
	case strings.HasPrefix(s, `\`):
		return `\` + s
	}
	return `\\` + s
}

// SMBURI builds "smb://server/share/rest" from a canonical UNC string,
// percent-encoding everything in the path except RFC 3986 unreserved
// characters and "/".
func SMBURI(unc string) (string, bool) {
	server, share, rest, ok := ParseUNCShare(unc)
	if !ok {
		return "", false
	}
	return "smb://" + server + encodePath("/"+share+rest), true
}

func encodePath(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '/' || isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xF])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '-' || c == '.' || c == '_' || c == '~'
}

// HasPathPrefix reports whether path starts with prefix on a segment
// boundary: the next byte is absent or "/". Comparison ignores ASCII case
// when fold is set.
func HasPathPrefix(path, prefix string, fold bool) bool {
	if len(path) < len(prefix) {
		return false
	}
	head := path[:len(prefix)]
	if fold {
		if !strings.EqualFold(head, prefix) {
			return false
		}
	} else if head != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/' || strings.HasSuffix(prefix, "/")
}
