package winpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinPrefix(t *testing.T) {
	tests := []struct{ prefix, rest, want string }{
		{"/mnt/a", "/x.txt", "/mnt/a/x.txt"},
		{"/mnt/a/", "/x.txt", "/mnt/a/x.txt"},
		{"/mnt/a", "x.txt", "/mnt/a/x.txt"},
		{"/mnt/a/", "x.txt", "/mnt/a/x.txt"},
		{"/mnt/a", "", "/mnt/a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPrefix(tt.prefix, tt.rest))
	}
}

func TestJoinWindows(t *testing.T) {
	assert.Equal(t, `C:\Users\me\Documents\file.txt`, JoinWindows(`C:\Users\me`, `Documents\file.txt`))
	assert.Equal(t, `C:\x`, JoinWindows(`C:\`, `x`))
	assert.Equal(t, `C:\a\x`, JoinWindows(`C:\a`, `\x`))
	assert.Equal(t, `C:\a\B.txt`, JoinWindows(`C:\a\B.txt`, `b.TXT`))
	assert.Equal(t, `C:\a`, JoinWindows(`C:\a`, ""))
	assert.Equal(t, "", JoinWindows("", "x"))
}

func TestTrimTrailingSlashes(t *testing.T) {
	assert.Equal(t, "/", TrimTrailingSlashes("/"))
	assert.Equal(t, "/mnt/a", TrimTrailingSlashes("/mnt/a//"))
}
