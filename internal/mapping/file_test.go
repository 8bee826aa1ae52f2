package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := `# drives
M:=/mnt/media
d: = /mnt/data/

//nas/share=/mnt/nas
\\NAS\share\sub=/mnt/sub
X:=/proc
garbage line
Q=/mnt/q
N:\=/mnt/n
o:/=/mnt/o
\\backup\=/mnt/backup
`
	tbl, err := Parse(strings.NewReader(content))
	require.NoError(t, err)

	entries := tbl.Entries()
	require.Len(t, entries, 7)
	assert.Equal(t, "M:=/mnt/media", entries[0].String())
	assert.Equal(t, "D:=/mnt/data", entries[1].String())
	assert.Equal(t, "//nas/share=/mnt/nas", entries[2].String())
	assert.Equal(t, "//NAS/share/sub=/mnt/sub", entries[3].String())
	assert.Equal(t, "N:=/mnt/n", entries[4].String())
	assert.Equal(t, "O:=/mnt/o", entries[5].String())
	assert.Equal(t, "//backup=/mnt/backup", entries[6].String())

	require.Len(t, tbl.Skipped, 3)
	assert.Equal(t, 7, tbl.Skipped[0].Line)
	assert.ErrorIs(t, tbl.Skipped[0], ErrDeniedPrefix)
	assert.Equal(t, 8, tbl.Skipped[1].Line)
	assert.ErrorIs(t, tbl.Skipped[1], ErrInvalidRule)
	assert.ErrorIs(t, tbl.Skipped[2], ErrInvalidRule)
}

func TestLoad_MissingFile(t *testing.T) {
	tbl, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
}

func TestAppend_CreatesAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "drive-mappings.conf")

	require.NoError(t, AppendDrive(path, 'm', "/mnt/media"))
	require.NoError(t, AppendUNC(path, `\\nas\share`, "/mnt/nas/"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "M:=/mnt/media\n//nas/share=/mnt/nas\n", string(data))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Empty(t, tbl.Skipped)
}

func TestAppend_AddsMissingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.conf")
	require.NoError(t, os.WriteFile(path, []byte("M:=/mnt/media"), 0o644))

	require.NoError(t, AppendDrive(path, 'N', "/mnt/n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "M:=/mnt/media\nN:=/mnt/n\n", string(data))
}

func TestAppend_RejectsDenied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.conf")
	err := AppendDrive(path, 'C', "/sys")
	assert.ErrorIs(t, err, ErrDeniedPrefix)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
