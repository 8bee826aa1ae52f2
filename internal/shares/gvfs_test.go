package shares

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func TestParseShareName(t *testing.T) {
	tests := []struct {
		name   string
		server string
		share  string
		ok     bool
	}{
		{"smb-share:server=nas,share=public", "nas", "public", true},
		{"smb-share:domain=WG,server=NAS,share=Docs,user=bob", "NAS", "Docs", true},
		{"smb-share:SERVER=nas,Share=my%20files", "nas", "my files", true},
		{"smb-share:server=nas", "", "", false},
		{"sftp:host=nas", "", "", false},
		{"smb-share:server=share=x,share=y", "share=x", "y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, share, ok := ParseShareName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.server, server)
				assert.Equal(t, tt.share, share)
			}
		})
	}
}

func TestGVFSLocate(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "smb-share:server=nas,share=public")
	require.NoError(t, os.MkdirAll(filepath.Join(entry, "Docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(entry, "Docs", "a.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sftp:host=nas"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755))

	g := GVFS{Dir: dir, Exists: statExists}

	got, ok := g.Locate(`\\NAS\Public\Docs\a.txt`)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(entry, "Docs", "a.txt"), got)

	got, ok = g.Locate("//nas/public")
	require.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok = g.Locate("//nas/public/missing.txt")
	assert.False(t, ok)

	_, ok = g.Locate("//other/public/Docs")
	assert.False(t, ok)

	root, ok := g.ShareRoot("NAS", "PUBLIC")
	require.True(t, ok)
	assert.Equal(t, entry, root)

	entries, err := g.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGVFSMissingDir(t *testing.T) {
	g := GVFS{Dir: filepath.Join(t.TempDir(), "none"), Exists: statExists}
	_, ok := g.Locate("//nas/public/x")
	assert.False(t, ok)
	_, err := g.Entries()
	assert.Error(t, err)
}
