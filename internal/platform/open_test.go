package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOpeners(t *testing.T) (urls, files *[]string) {
	t.Helper()
	origURL, origFile := openURL, openFile
	t.Cleanup(func() { openURL, openFile = origURL, origFile })

	urls, files = new([]string), new([]string)
	openURL = func(s string) error { *urls = append(*urls, s); return nil }
	openFile = func(s string) error { *files = append(*files, s); return nil }
	return urls, files
}

func TestDesktopOpen_Dispatch(t *testing.T) {
	urls, files := stubOpeners(t)
	d := Desktop{}

	require.NoError(t, d.Open("/mnt/nas/Docs/a=b.pdf"))
	require.NoError(t, d.Open("smb://nas/share/Docs/a%20b.pdf"))

	assert.Equal(t, []string{"/mnt/nas/Docs/a=b.pdf"}, *files)
	assert.Equal(t, []string{"smb://nas/share/Docs/a%20b.pdf"}, *urls)
}

func TestDesktopOpen_WrapsError(t *testing.T) {
	stubOpeners(t)
	openFile = func(string) error { return errors.New("xdg-open: exit status 4") }

	err := Desktop{}.Open("/mnt/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening /mnt/x")
}

func TestIsURI(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"smb://nas/share", true},
		{"file:///tmp/x", true},
		{"svn+ssh://host/repo", true},
		{"/mnt/a://b", false},
		{"://nas", false},
		{"/mnt/nas", false},
		{"1ab://x", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, isURI(tt.in))
		})
	}
}
