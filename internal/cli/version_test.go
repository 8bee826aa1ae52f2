package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuildInfo() buildInfo {
	return buildInfo{
		Name:      "open-lnk",
		Version:   "1.4.0",
		Commit:    "abc1234",
		Date:      "2026-10-01",
		GoVersion: "go1.25.7",
		ConfigDir: "/home/me/.config/windows-link-reader",
		CacheDir:  "/home/me/.cache/windows-link-reader",
	}
}

func TestWriteBuildInfo_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBuildInfo(&buf, "text", sampleBuildInfo()))

	out := buf.String()
	assert.Contains(t, out, "open-lnk 1.4.0\n")
	assert.Contains(t, out, "  commit:  abc1234\n")
	assert.Contains(t, out, "  config:  /home/me/.config/windows-link-reader\n")
	assert.Contains(t, out, "  cache:   /home/me/.cache/windows-link-reader\n")
}

func TestWriteBuildInfo_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBuildInfo(&buf, "json", sampleBuildInfo()))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1.4.0", got["version"])
	assert.Equal(t, "go1.25.7", got["go"])
	assert.Equal(t, "/home/me/.cache/windows-link-reader", got["cache_dir"])
}

func TestWriteBuildInfo_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeBuildInfo(&buf, "xml", sampleBuildInfo()))
}

func TestCurrentBuildInfo_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")
	saved := []string{buildVersion, buildCommit, buildDate}
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = saved[0], saved[1], saved[2] })
	buildVersion, buildCommit, buildDate = "", "", ""

	b := currentBuildInfo()
	assert.Equal(t, "open-lnk", b.Name)
	assert.Equal(t, "dev", b.Version)
	assert.Equal(t, "unknown", b.Commit)
	assert.Equal(t, "/tmp/cfg/windows-link-reader", b.ConfigDir)
	assert.Equal(t, "/tmp/cache/windows-link-reader", b.CacheDir)
}
