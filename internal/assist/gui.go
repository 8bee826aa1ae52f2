package assist

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a picker and returns its standard output. A non-zero exit
// is reported as *exec.ExitError.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// run treats a non-zero exit status as cancellation.
func run(ctx context.Context, r Runner, name string, args ...string) (string, bool, error) {
	out, err := r(ctx, name, args...)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("running %s: %w", name, err)
	}
	out = strings.TrimRight(out, "\r\n")
	return out, out != "", nil
}

func toChoice(out string, ok bool) Choice {
	switch {
	case !ok:
		return Choice{Action: Cancel}
	case out == manualID:
		return Choice{Action: Manual}
	}
	return Choice{Action: Pick, Prefix: out}
}

// escapeText doubles backslashes, which both pickers treat as escapes.
func escapeText(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Zenity uses the GNOME zenity dialogs.
type Zenity struct {
	Run Runner
}

// Name implements Assistant.
func (z Zenity) Name() string { return "zenity" }

// Choose implements Assistant with a single-column list dialog.
func (z Zenity) Choose(ctx context.Context, req Request) (Choice, error) {
	args := []string{
		"--list",
		"--title", Title,
		"--text", escapeText(req.Text()),
		"--column=ID", "--column=Mount",
		"--hide-column=1", "--hide-header", "--print-column=1",
		"--height=420", "--width=800",
		manualID, "Manual path…",
	}
	for _, c := range req.Candidates {
		args = append(args, c, c)
	}
	out, ok, err := run(ctx, z.Run, "zenity", args...)
	if err != nil {
		return Choice{}, err
	}
	return toChoice(out, ok), nil
}

// PickDirectory implements Assistant with a directory chooser.
func (z Zenity) PickDirectory(ctx context.Context, title string) (string, bool, error) {
	return run(ctx, z.Run, "zenity", "--file-selection", "--directory", "--title", title)
}

// KDialog uses the KDE kdialog dialogs.
type KDialog struct {
	Run Runner
}

// Name implements Assistant.
func (k KDialog) Name() string { return "kdialog" }

// Choose implements Assistant with a menu dialog.
func (k KDialog) Choose(ctx context.Context, req Request) (Choice, error) {
	args := []string{"--title", Title, "--menu", escapeText(req.Text()), manualID, "Manual path"}
	for _, c := range req.Candidates {
		args = append(args, c, c)
	}
	out, ok, err := run(ctx, k.Run, "kdialog", args...)
	if err != nil {
		return Choice{}, err
	}
	return toChoice(out, ok), nil
}

// PickDirectory implements Assistant with a directory chooser rooted at "/".
func (k KDialog) PickDirectory(ctx context.Context, title string) (string, bool, error) {
	return run(ctx, k.Run, "kdialog", "--title", title, "--getexistingdirectory", "/")
}
