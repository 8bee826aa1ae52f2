package winpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in     string
		kind   Kind
		drive  byte
		server string
		share  string
		rest   string
	}{
		{in: "/home/me/x", kind: PosixAbsolute},
		{in: "c:/Users/me", kind: DriveLetter, drive: 'C', rest: "/Users/me"},
		{in: "Z:/", kind: DriveLetter, drive: 'Z', rest: "/"},
		{in: "//srv/share/a/b", kind: UNC, server: "srv", share: "share", rest: "/a/b"},
		{in: "//srv/share", kind: UNC, server: "srv", share: "share"},
		{in: "//srv", kind: UNC},
		{in: "C:", kind: Unrecognized},
		{in: "C:relative", kind: Unrecognized},
		{in: "docs/a.txt", kind: Unrecognized},
		{in: "", kind: Unrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := Classify(tt.in)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.drive, p.Drive)
			assert.Equal(t, tt.server, p.Server)
			assert.Equal(t, tt.share, p.Share)
			assert.Equal(t, tt.rest, p.Rest)
		})
	}
}

func TestClassifyWindows(t *testing.T) {
	p := ClassifyWindows(`\\SERVER\Share\Docs\a.txt`)
	assert.Equal(t, UNC, p.Kind)
	assert.Equal(t, "//SERVER/Share", p.Root())
	assert.Equal(t, "/Docs/a.txt", p.Rest)

	d := ClassifyWindows(`m:\Music`)
	assert.Equal(t, "M:", d.Root())
	assert.False(t, d.HasShare())
}

func TestShapes(t *testing.T) {
	assert.True(t, IsDriveShaped(`C:\`))
	assert.True(t, IsDriveShaped("c:/x"))
	assert.False(t, IsDriveShaped("C:"))
	assert.True(t, IsDriveRoot("M:"))
	assert.False(t, IsDriveRoot(`M:\`))
	assert.True(t, IsUNCShaped(`\\a\b`))
	assert.True(t, IsUNCShaped("//a/b"))
	assert.False(t, IsUNCShaped(`\\ab`))
	assert.False(t, IsUNCShaped(`\/a/b`))
}
