package lnk

import (
	"testing"

	"github.com/open-lnk/open-lnk/internal/lnk/lnktest"
	"github.com/stretchr/testify/assert"
)

func TestScoreCandidate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`\\srv\share`, 50 + 11/8},
		{`\\srv\share\a\b`, 200 + 50 + 15/8},
		{`C:\`, 40},
		{`C:\Users\me\x.txt`, 300 + 40 + 17/8},
		{`C:`, -1},
		{`relative\path`, -1},
		{`\\ab`, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreCandidate(tt.in), tt.in)
	}
}

func TestIDListScanner(t *testing.T) {
	sc := &IDListScanner{}

	t.Run("picks deepest path", func(t *testing.T) {
		blob := []byte("\x10\x00C:\\Users\x00\x01\x02C:\\Users\\me\\notes.txt\x00\x03")
		got, ok := sc.ExtractPath(blob)
		assert.True(t, ok)
		assert.Equal(t, `C:\Users\me\notes.txt`, got)
	})

	t.Run("utf16 candidate", func(t *testing.T) {
		blob := append([]byte{0x1F, 0x00, 0x07}, lnktest.UTF16Z(`\\nas\share\dir\f.pdf`)...)
		got, ok := sc.ExtractPath(blob)
		assert.True(t, ok)
		assert.Equal(t, `\\nas\share\dir\f.pdf`, got)
	})

	t.Run("control byte ends candidate", func(t *testing.T) {
		got, ok := sc.ExtractPath([]byte("D:\\a\\b\x05junk"))
		assert.True(t, ok)
		assert.Equal(t, `D:\a\b`, got)
	})

	t.Run("tab is kept", func(t *testing.T) {
		got, _ := sc.ExtractPath([]byte("D:\\a\tb\x00"))
		assert.Equal(t, "D:\\a\tb", got)
	})

	t.Run("ties keep the first found", func(t *testing.T) {
		got, _ := sc.ExtractPath([]byte("A:\\x\x00B:\\y\x00"))
		assert.Equal(t, `A:\x`, got)
	})

	t.Run("nothing path shaped", func(t *testing.T) {
		_, ok := sc.ExtractPath([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8})
		assert.False(t, ok)
	})

	t.Run("candidate capped", func(t *testing.T) {
		long := make([]byte, 0, MaxCandidateLen+100)
		long = append(long, "E:\\"...)
		for len(long) < MaxCandidateLen+100 {
			long = append(long, 'a')
		}
		got, ok := sc.ExtractPath(long)
		assert.True(t, ok)
		assert.Len(t, got, MaxCandidateLen)
	})
}
