package shares

import (
	"context"
	"strings"

	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/winpath"
)

var smbFS = map[string]bool{"cifs": true, "smbfs": true, "smb3": true}

// CIFS locates shares mounted by the kernel SMB client.
type CIFS struct {
	Source mounts.Source
	Exists func(string) bool
}

// matching returns the SMB mounts whose device names server and share.
func (c CIFS) matching(ctx context.Context, server, share string) []mounts.Mount {
	ms, err := c.Source.Mounts(ctx)
	if err != nil {
		return nil
	}
	var out []mounts.Mount
	for _, m := range ms {
		if !smbFS[m.Fstype] {
			continue
		}
		dserver, dshare, _, ok := winpath.ParseUNCShare(winpath.NormalizeUNC(m.Device))
		if !ok || !strings.EqualFold(dserver, server) || !strings.EqualFold(dshare, share) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ShareRoot returns the first mount point of server and share.
func (c CIFS) ShareRoot(ctx context.Context, server, share string) (string, bool) {
	ms := c.matching(ctx, server, share)
	if len(ms) == 0 {
		return "", false
	}
	return ms[0].Mountpoint, true
}

// Locate maps unc onto a CIFS mount. When the joined path is missing but
// the mount point exists, the mount point is returned.
func (c CIFS) Locate(ctx context.Context, unc string) (string, bool) {
	server, share, rest, ok := winpath.ParseUNCShare(winpath.NormalizeUNC(unc))
	if !ok {
		return "", false
	}
	for _, m := range c.matching(ctx, server, share) {
		if cand := winpath.JoinPrefix(m.Mountpoint, rest); c.Exists(cand) {
			return cand, true
		}
		if c.Exists(m.Mountpoint) {
			return m.Mountpoint, true
		}
	}
	return "", false
}
