package platform

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
)

var (
	openURL  = browser.OpenURL
	openFile = browser.OpenFile
)

// Opener hands a resolved path or URI to the desktop.
type Opener interface {
	Open(target string) error
}

// Desktop dispatches targets to the platform default handler (xdg-open on
// Linux, open on macOS). Output of the handler goes to Stdout and Stderr.
type Desktop struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Open dispatches target. It reports only whether the handler started and
// exited cleanly, not whether the opened application succeeded.
func (d Desktop) Open(target string) error {
	if d.Stdout != nil {
		browser.Stdout = d.Stdout
	}
	if d.Stderr != nil {
		browser.Stderr = d.Stderr
	}
	open := openFile
	if isURI(target) {
		open = openURL
	}
	if err := open(target); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}

// isURI reports whether target carries a scheme such as "smb://".
func isURI(target string) bool {
	scheme, _, ok := strings.Cut(target, "://")
	if !ok || scheme == "" {
		return false
	}
	for i := 0; i < len(scheme); i++ {
		c := scheme[i]
		alpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !alpha && (i == 0 || !(c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.')) {
			return false
		}
	}
	return true
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(target string) error

// Open calls f.
func (f OpenerFunc) Open(target string) error { return f(target) }
