package shares

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-lnk/open-lnk/internal/mounts"
)

func existsIn(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func TestCIFSLocate(t *testing.T) {
	src := mounts.Static{
		{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		{Device: "//nas/public", Mountpoint: "/mnt/nfs-lookalike", Fstype: "nfs"},
		{Device: `\\NAS\Public`, Mountpoint: "/mnt/public", Fstype: "cifs"},
		{Device: "//nas/other", Mountpoint: "/mnt/other", Fstype: "cifs"},
	}
	ctx := context.Background()

	c := CIFS{Source: src, Exists: existsIn("/mnt/public", "/mnt/public/Docs/a.txt", "/mnt/nfs-lookalike/Docs/a.txt")}

	got, ok := c.Locate(ctx, "//nas/public/Docs/a.txt")
	require.True(t, ok)
	assert.Equal(t, "/mnt/public/Docs/a.txt", got)

	got, ok = c.Locate(ctx, "//nas/public/Docs/missing.txt")
	require.True(t, ok, "falls back to the mount point")
	assert.Equal(t, "/mnt/public", got)

	_, ok = c.Locate(ctx, "//nas/absent/x")
	assert.False(t, ok)

	root, ok := c.ShareRoot(ctx, "nas", "public")
	require.True(t, ok)
	assert.Equal(t, "/mnt/public", root)
}

func TestCIFSLocate_MountPointGone(t *testing.T) {
	src := mounts.Static{{Device: "//nas/public", Mountpoint: "/mnt/public", Fstype: "smb3"}}
	c := CIFS{Source: src, Exists: existsIn()}
	_, ok := c.Locate(context.Background(), "//nas/public/x")
	assert.False(t, ok)
}
