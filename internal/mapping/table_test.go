package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

func existsIn(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func TestMatchUNC_LongestPrefixWins(t *testing.T) {
	tbl := NewTable(
		UNCEntry("//srv/share", "/mnt/a"),
		UNCEntry("//srv/share/sub", "/mnt/b"),
	)
	require.Equal(t, 2, tbl.Len())

	e, rest, ok := tbl.MatchUNC("//srv/share/sub/x.txt")
	require.True(t, ok)
	assert.Equal(t, "/mnt/b", e.Prefix)
	assert.Equal(t, "/x.txt", rest)

	got, ok := tbl.ResolveUNC("//srv/share/sub/x.txt", existsIn("/mnt/b/x.txt"))
	require.True(t, ok)
	assert.Equal(t, "/mnt/b/x.txt", got)

	e, rest, ok = tbl.MatchUNC("//srv/share/other.txt")
	require.True(t, ok)
	assert.Equal(t, "/mnt/a", e.Prefix)
	assert.Equal(t, "/other.txt", rest)
}

func TestMatchUNC_CaseAndBoundary(t *testing.T) {
	tbl := NewTable(UNCEntry(`\\NAS\Public`, "/mnt/nas"))

	_, rest, ok := tbl.MatchUNC(`\\nas\public\Docs\a.pdf`)
	require.True(t, ok)
	assert.Equal(t, "/Docs/a.pdf", rest)

	_, _, ok = tbl.MatchUNC("//nas/publicity/a.pdf")
	assert.False(t, ok, "share name must match on a segment boundary")

	_, rest, ok = tbl.MatchUNC("//nas/public")
	require.True(t, ok)
	assert.Empty(t, rest)
}

func TestMatchUNC_ServerRoot(t *testing.T) {
	tbl := NewTable(
		UNCEntry(`\\backup`, "/mnt/backup"),
		UNCEntry("//backup/home", "/home/shared"),
	)
	require.Equal(t, 2, tbl.Len())

	e, rest, ok := tbl.MatchUNC("//BACKUP/media/a.mkv")
	require.True(t, ok)
	assert.Equal(t, "/mnt/backup", e.Prefix)
	assert.Equal(t, "/media/a.mkv", rest)

	e, rest, ok = tbl.MatchUNC("//backup/home/me/a.txt")
	require.True(t, ok)
	assert.Equal(t, "/home/shared", e.Prefix)
	assert.Equal(t, "/me/a.txt", rest)

	_, _, ok = tbl.MatchUNC("//backups/media/a.mkv")
	assert.False(t, ok)
}

func TestResolveUNC_MissingTarget(t *testing.T) {
	tbl := NewTable(UNCEntry("//srv/share", "/mnt/a"))
	_, ok := tbl.ResolveUNC("//srv/share/x", existsIn())
	assert.False(t, ok)
}

func TestResolveDrive_FirstExistingRuleWins(t *testing.T) {
	tbl := NewTable(
		DriveEntry('m', "/mnt/m1"),
		DriveEntry('M', "/mnt/m2/"),
		DriveEntry('N', "/mnt/n"),
	)
	p := winpath.Classify("M:/Music/a.mp3")

	got, ok := tbl.ResolveDrive(p, existsIn("/mnt/m2/Music/a.mp3"))
	require.True(t, ok)
	assert.Equal(t, "/mnt/m2/Music/a.mp3", got)

	got, ok = tbl.ResolveDrive(p, existsIn("/mnt/m1/Music/a.mp3", "/mnt/m2/Music/a.mp3"))
	require.True(t, ok)
	assert.Equal(t, "/mnt/m1/Music/a.mp3", got)

	_, ok = tbl.ResolveDrive(p, existsIn())
	assert.False(t, ok)

	_, ok = tbl.ResolveDrive(winpath.Classify("//srv/share/x"), existsIn("/mnt/m1"))
	assert.False(t, ok)
}

func TestMatchDrive(t *testing.T) {
	tbl := NewTable(DriveEntry('D', "/mnt/d"))

	e, ok := tbl.MatchDrive('d')
	require.True(t, ok)
	assert.Equal(t, "D:", e.Key())
	assert.Equal(t, "D:=/mnt/d", e.String())

	_, ok = tbl.MatchDrive('E')
	assert.False(t, ok)
}

func TestAdd_RejectsDeniedAndRelative(t *testing.T) {
	tbl := &Table{}
	assert.ErrorIs(t, tbl.Add(DriveEntry('C', "/")), ErrDeniedPrefix)
	assert.ErrorIs(t, tbl.Add(DriveEntry('C', "/proc/self")), ErrDeniedPrefix)
	assert.ErrorIs(t, tbl.Add(DriveEntry('C', "mnt/c")), ErrRelativePrefix)
	assert.ErrorIs(t, tbl.Add(UNCEntry("//", "/mnt/x")), ErrInvalidRule)
	assert.ErrorIs(t, tbl.Add(Entry{Kind: UNCRule, Root: "//srv//x", Prefix: "/mnt/x"}), ErrInvalidRule)
	assert.ErrorIs(t, tbl.Add(Entry{Kind: DriveRule, Drive: '1', Prefix: "/mnt"}), ErrInvalidRule)
	assert.NoError(t, tbl.Add(DriveEntry('C', "/run/media/me/DISK")))
	assert.Equal(t, 1, tbl.Len())
}

func TestIsPrefixDenied(t *testing.T) {
	tests := []struct {
		prefix string
		denied bool
	}{
		{"", true},
		{"/", true},
		{"/proc", true},
		{"/sys/fs", true},
		{"/dev/sda1", true},
		{"/run/user/1000/gvfs", true},
		{"/snap/core", true},
		{"/var/lib/snapd/x", true},
		{"/run/media/alice/USB", false},
		{"/mnt/nas", false},
		{"/procedures", false},
		{"/home/alice", false},
		{"/var/lib/other", false},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.denied, IsPrefixDenied(tt.prefix))
		})
	}
}
