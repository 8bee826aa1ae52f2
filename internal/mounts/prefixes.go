package mounts

import (
	"sort"
	"strings"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

// Preference orders prefixes offered to a human: user-facing roots first,
// shorter paths before longer ones.
func Preference(prefix string) int {
	n := len(prefix)
	if n == 0 {
		return 0
	}
	if n > 64 {
		n = 64
	}
	return PrefixBonus(prefix) + 64/n
}

// RankPrefixes returns the non-system prefixes under which rest exists,
// ordered by Preference and de-duplicated. When none qualifies every
// non-system prefix is returned instead.
func RankPrefixes(prefixes []string, rest string, exists func(string) bool) []string {
	var all, hits []string
	seen := make(map[string]bool)
	for _, p := range prefixes {
		p = winpath.TrimTrailingSlashes(p)
		if IsSystemMount(p) && !isSessionShare(p) || seen[p] {
			continue
		}
		seen[p] = true
		all = append(all, p)
		if rest != "" && exists(winpath.JoinPrefix(p, rest)) {
			hits = append(hits, p)
		}
	}
	out := hits
	if len(out) == 0 {
		out = all
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := Preference(out[i]), Preference(out[j])
		if pi != pj {
			return pi > pj
		}
		return out[i] < out[j]
	})
	return out
}

// Mountpoints extracts the mount points of ms.
func Mountpoints(ms []Mount) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Mountpoint)
	}
	return out
}

// isSessionShare keeps per-user GVFS entries, which live under /run/user.
func isSessionShare(p string) bool {
	return winpath.HasPathPrefix(p, "/run/user", false) && strings.Contains(p+"/", "/gvfs/")
}
