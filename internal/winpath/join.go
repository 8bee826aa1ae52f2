package winpath

import "strings"

// JoinPrefix appends a "/"-rooted remainder to a POSIX prefix with exactly
// one separator between them. An empty rest returns prefix unchanged.
func JoinPrefix(prefix, rest string) string {
	if rest == "" {
		return prefix
	}
	ps := strings.HasSuffix(prefix, "/")
	rs := strings.HasPrefix(rest, "/")
	switch {
	case ps && rs:
		return prefix + rest[1:]
	case !ps && !rs:
		return prefix + "/" + rest
	}
	return prefix + rest
}

// JoinWindows joins a Windows base and suffix with one backslash. When base
// already ends with suffix (ignoring case) base is returned alone, since some
// links store the suffix twice.
func JoinWindows(base, suffix string) string {
	if base == "" {
		return ""
	}
	if suffix == "" {
		return base
	}
	if len(base) >= len(suffix) && strings.EqualFold(base[len(base)-len(suffix):], suffix) {
		return base
	}
	if isSep(base[len(base)-1]) || isSep(suffix[0]) {
		return base + suffix
	}
	return base + `\` + suffix
}

// TrimTrailingSlashes removes trailing "/" from a POSIX path, keeping "/".
func TrimTrailingSlashes(p string) string {
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}
