package shares

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

const gvfsSharePrefix = "smb-share:"

// DefaultGVFSDir returns the session share directory of the current user.
func DefaultGVFSDir() string {
	return filepath.Join("/run/user", strconv.Itoa(os.Getuid()), "gvfs")
}

// GVFS locates shares mounted by the desktop session.
type GVFS struct {
	Dir    string
	Exists func(string) bool
}

// ShareEntry is one "smb-share:" directory.
type ShareEntry struct {
	Path   string
	Server string
	Share  string
}

// ParseShareName extracts server and share from a GVFS entry name such as
// "smb-share:server=nas,share=public,user=bob". Keys are case-insensitive.
func ParseShareName(name string) (server, share string, ok bool) {
	body, found := strings.CutPrefix(name, gvfsSharePrefix)
	if !found {
		return "", "", false
	}
	for _, kv := range strings.Split(body, ",") {
		k, v, found := strings.Cut(kv, "=")
		if !found || v == "" {
			continue
		}
		if u, err := url.PathUnescape(v); err == nil {
			v = u
		}
		switch strings.ToLower(k) {
		case "server":
			server = v
		case "share":
			share = v
		}
	}
	return server, share, server != "" && share != ""
}

// Entries lists the SMB share directories in Dir.
func (g GVFS) Entries() ([]ShareEntry, error) {
	des, err := os.ReadDir(g.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading session share directory %s: %w", g.Dir, err)
	}
	var out []ShareEntry
	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}
		server, share, ok := ParseShareName(de.Name())
		if !ok {
			continue
		}
		out = append(out, ShareEntry{Path: filepath.Join(g.Dir, de.Name()), Server: server, Share: share})
	}
	return out, nil
}

// ShareRoot returns the entry directory for server and share.
func (g GVFS) ShareRoot(server, share string) (string, bool) {
	entries, err := g.Entries()
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Server, server) && strings.EqualFold(e.Share, share) {
			return e.Path, true
		}
	}
	return "", false
}

// Locate maps unc onto a matching session mount. The result must exist.
func (g GVFS) Locate(unc string) (string, bool) {
	server, share, rest, ok := winpath.ParseUNCShare(winpath.NormalizeUNC(unc))
	if !ok {
		return "", false
	}
	entries, err := g.Entries()
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !strings.EqualFold(e.Server, server) || !strings.EqualFold(e.Share, share) {
			continue
		}
		cand := winpath.JoinPrefix(e.Path, rest)
		if g.Exists(cand) {
			return cand, true
		}
	}
	return "", false
}
