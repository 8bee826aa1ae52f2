//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/open-lnk/open-lnk/internal/config"
	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/lnk"
	"github.com/open-lnk/open-lnk/internal/lnk/lnktest"
	"github.com/open-lnk/open-lnk/internal/mapping"
	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/resolve"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigHome string // XDG_CONFIG_HOME
	CacheHome  string // XDG_CACHE_HOME
	DataDir    string // stands in for mounted volumes and shares
	LinkDir    string // where shortcut files are written
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so every read and write is sandboxed. The env vars and the
// global config state are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigHome: t.TempDir(),
		CacheHome:  t.TempDir(),
		DataDir:    t.TempDir(),
		LinkDir:    t.TempDir(),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CACHE_HOME", env.CacheHome)
	t.Setenv("WINDOWS_LINK_READER_MAP", "")
	t.Setenv("OPEN_LNK_GVFS_DIR", filepath.Join(env.DataDir, "gvfs"))
	t.Setenv("OPEN_LNK_LOG", "")

	viper.Reset()
	t.Cleanup(viper.Reset)
	return env
}

// newEngine loads the sandboxed config and builds an engine the way the
// CLI does, minus the live mount table and the assistant.
func newEngine(t *testing.T) (*resolve.Engine, config.Settings) {
	t.Helper()
	if err := config.Load(""); err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	s, err := config.Current()
	if err != nil {
		t.Fatalf("config.Current: %v", err)
	}
	table, err := mapping.Load(s.MappingFile)
	if err != nil {
		t.Fatalf("mapping.Load: %v", err)
	}

	e := resolve.New(s.EngineOptions())
	e.Table = table
	e.Cache = linkcache.New(s.CacheFile)
	e.Mounts = mounts.Static{}
	return e, s
}

// writeLink serializes l under the link directory.
func writeLink(t *testing.T, env *testEnv, name string, l lnktest.Link) string {
	t.Helper()
	p := filepath.Join(env.LinkDir, name)
	if err := os.WriteFile(p, l.Bytes(), 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

// loadTarget decodes a shortcut file and builds its target.
func loadTarget(t *testing.T, path string) resolve.Target {
	t.Helper()
	rec, err := lnk.NewDecoder().DecodeFile(path)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	target, err := resolve.NewTarget(path, linkcache.Key(path), rec)
	if err != nil {
		t.Fatalf("building target of %s: %v", path, err)
	}
	return target
}

// touchFile creates an empty file and its parent directories.
func touchFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q:\n%s", path, substr, data)
	}
}
