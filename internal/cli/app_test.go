package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/lnk"
	"github.com/open-lnk/open-lnk/internal/lnk/lnktest"
	"github.com/open-lnk/open-lnk/internal/logging"
	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/platform"
	"github.com/open-lnk/open-lnk/internal/resolve"
)

type harness struct {
	root    string
	app     *app
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	opened  []string
	openErr error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{root: t.TempDir()}

	opts := resolve.DefaultOptions()
	opts.GVFSDir = filepath.Join(h.root, "gvfs")
	engine := resolve.New(opts)
	engine.Mounts = mounts.Static{}
	engine.Cache = linkcache.New(filepath.Join(h.root, "cache", "links.conf"))

	h.app = &app{
		log:     logging.Nop(),
		decoder: lnk.NewDecoder(),
		engine:  engine,
		opener: platform.OpenerFunc(func(target string) error {
			h.opened = append(h.opened, target)
			return h.openErr
		}),
		reporter: &reporter{stderr: &h.stderr, log: logging.Nop()},
		stdout:   &h.stdout,
	}
	return h
}

func (h *harness) writeLink(t *testing.T, name string, l lnktest.Link) string {
	t.Helper()
	p := filepath.Join(h.root, name)
	require.NoError(t, os.WriteFile(p, l.Bytes(), 0o644))
	return p
}

func (h *harness) touch(t *testing.T, rel string) string {
	t.Helper()
	p := filepath.Join(h.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	return p
}

func localLink(path string) lnktest.Link {
	return lnktest.Link{LinkInfo: &lnktest.LinkInfo{LocalBasePath: path}}
}

func TestHandle_OpensLocalTarget(t *testing.T) {
	h := newHarness(t)
	target := h.touch(t, "docs/report.txt")
	link := h.writeLink(t, "report.lnk", localLink(target))

	rc := h.app.handle(context.Background(), link, h.app.open)
	assert.Equal(t, ExitOK, rc)
	assert.Equal(t, []string{target}, h.opened)
	assert.Empty(t, h.stderr.String())
}

func TestHandle_FileURIArgument(t *testing.T) {
	h := newHarness(t)
	target := h.touch(t, "docs/report.txt")
	link := h.writeLink(t, "my report.lnk", localLink(target))

	uri := "file://" + strings.ReplaceAll(link, " ", "%20")
	rc := h.app.handle(context.Background(), uri, h.app.print)
	assert.Equal(t, ExitOK, rc)
	assert.Equal(t, target+"\n", h.stdout.String())
	assert.Empty(t, h.opened)
}

func TestHandle_ExitCodes(t *testing.T) {
	h := newHarness(t)
	garbage := filepath.Join(h.root, "garbage.lnk")
	require.NoError(t, os.WriteFile(garbage, []byte("not a shortcut"), 0o644))
	empty := h.writeLink(t, "empty.lnk", lnktest.Link{})
	unresolved := h.writeLink(t, "drive.lnk", localLink(`Q:\nowhere\file.txt`))

	tests := []struct {
		name   string
		arg    string
		code   int
		report string
	}{
		{"missing file", filepath.Join(h.root, "absent.lnk"), ExitFailure, "Failed to open .lnk file: "},
		{"not a shortcut", garbage, ExitFailure, "Failed to parse .lnk file: "},
		{"no target", empty, ExitFailure, "No target path found in .lnk file."},
		{"unresolved", unresolved, ExitUnresolved, "Could not resolve this shortcut target."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.stderr.Reset()
			rc := h.app.handle(context.Background(), tt.arg, h.app.open)
			assert.Equal(t, tt.code, rc)
			assert.Contains(t, h.stderr.String(), tt.report)
		})
	}
	assert.Empty(t, h.opened)
}

func TestHandle_UnresolvedReportListsFields(t *testing.T) {
	h := newHarness(t)
	link := h.writeLink(t, "drive.lnk", localLink(`Q:\nowhere\file.txt`))

	h.app.handle(context.Background(), link, h.app.open)
	out := h.stderr.String()
	assert.Contains(t, out, "LNK file:\n"+link)
	assert.Contains(t, out, "Windows target (raw):\nQ:\\nowhere\\file.txt")
	assert.Contains(t, out, `  LocalBasePath: Q:\nowhere\file.txt`)
	assert.Contains(t, out, "  NetName (CNRL): (null)")
}

func TestHandle_OpenFailure(t *testing.T) {
	h := newHarness(t)
	target := h.touch(t, "a.txt")
	link := h.writeLink(t, "a.lnk", localLink(target))
	h.openErr = errors.New("no handler")

	rc := h.app.handle(context.Background(), link, h.app.open)
	assert.Equal(t, ExitUnresolved, rc)
	assert.Contains(t, h.stderr.String(), "Failed to open:\n"+target)
}

func TestHandleAll_LastNonZeroWins(t *testing.T) {
	h := newHarness(t)
	ok := h.writeLink(t, "ok.lnk", localLink(h.touch(t, "ok.txt")))
	unresolved := h.writeLink(t, "drive.lnk", localLink(`Q:\x`))
	missing := filepath.Join(h.root, "absent.lnk")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"all ok", []string{ok, ok}, ExitOK},
		{"unresolved last", []string{missing, ok, unresolved}, ExitUnresolved},
		{"failure last", []string{unresolved, missing, ok}, ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.app.handleAll(context.Background(), tt.args, h.app.open))
		})
	}
}

func TestShortcutPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/home/me/a.lnk", "/home/me/a.lnk"},
		{"relative/a.lnk", "relative/a.lnk"},
		{"file:///home/me/My%20Docs/a.lnk", "/home/me/My Docs/a.lnk"},
		{"file://localhost/home/me/a%C3%A9.lnk", "/home/me/aé.lnk"},
		{"file://server/share/a.lnk", "file://server/share/a.lnk"},
		{"file:///bad%zzescape.lnk", "/bad%zzescape.lnk"},
		{"smb://nas/share/a.lnk", "smb://nas/share/a.lnk"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, shortcutPath(tt.in))
		})
	}
}
