package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/open-lnk/open-lnk/internal/mounts"
)

type failingSource struct{}

func (failingSource) Mounts(context.Context) ([]mounts.Mount, error) {
	return nil, errors.New("permission denied")
}

func lookPathOnly(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCheckEnvironment_Healthy(t *testing.T) {
	var buf bytes.Buffer
	problems := checkEnvironment(context.Background(), &buf, environment{
		mounts:   mounts.Static{{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"}},
		gvfsDir:  t.TempDir(),
		lookPath: lookPathOnly("zenity", "xdg-open"),
		bus:      func() bool { return true },
	})

	out := buf.String()
	assert.Equal(t, 0, problems, out)
	assert.Contains(t, out, "[ OK ] mount table readable (1 mounts)")
	assert.Contains(t, out, "[ OK ] zenity (/usr/bin/zenity)")
	assert.Contains(t, out, "[MISS] kdialog not on PATH")
	assert.Contains(t, out, "[ OK ] session bus reachable")
	assert.NotContains(t, out, "[WARN]")
}

func TestCheckEnvironment_Problems(t *testing.T) {
	var buf bytes.Buffer
	problems := checkEnvironment(context.Background(), &buf, environment{
		mounts:   failingSource{},
		gvfsDir:  "/nonexistent/gvfs",
		lookPath: lookPathOnly(),
		bus:      func() bool { return false },
	})

	out := buf.String()
	assert.Equal(t, 2, problems, out)
	assert.Contains(t, out, "[FAIL] mount table: permission denied")
	assert.Contains(t, out, "[WARN] no graphical picker")
	assert.Contains(t, out, "[FAIL] xdg-open not on PATH")
	assert.Contains(t, out, "[MISS] session bus unreachable")
}
