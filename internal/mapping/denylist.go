package mapping

import (
	"strings"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

// DeniedRoots are system mount roots a prefix may never live under.
var DeniedRoots = []string{"/proc", "/sys", "/dev", "/run", "/snap", "/var/lib/snapd"}

// removableMediaRoot is allowed even though it sits under /run.
const removableMediaRoot = "/run/media/"

// IsPrefixDenied reports whether prefix is empty, "/", or under one of
// DeniedRoots. Paths under /run/media/ are always allowed.
func IsPrefixDenied(prefix string) bool {
	if prefix == "" || prefix == "/" {
		return true
	}
	if strings.HasPrefix(prefix, removableMediaRoot) {
		return false
	}
	for _, root := range DeniedRoots {
		if winpath.HasPathPrefix(prefix, root, false) {
			return true
		}
	}
	return false
}
