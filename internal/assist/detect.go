package assist

import (
	"io"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// Env describes what the session offers.
type Env struct {
	// Graphical is true when DISPLAY or WAYLAND_DISPLAY is set.
	Graphical bool
	// Terminal is true when stdin is a terminal.
	Terminal bool
	// LookPath finds a program on PATH.
	LookPath func(string) (string, error)
}

// CurrentEnv inspects the running process.
func CurrentEnv() Env {
	return Env{
		Graphical: os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "",
		Terminal:  IsTerminal(os.Stdin),
		LookPath:  exec.LookPath,
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Detect returns the first usable backend: zenity, kdialog, then the
// terminal menu. It returns nil when nothing can ask the human.
func Detect(env Env, in io.Reader, out io.Writer) Assistant {
	if env.Graphical && env.LookPath != nil {
		if _, err := env.LookPath("zenity"); err == nil {
			return Zenity{Run: ExecRunner}
		}
		if _, err := env.LookPath("kdialog"); err == nil {
			return KDialog{Run: ExecRunner}
		}
	}
	if env.Terminal {
		return NewTTY(in, out)
	}
	return nil
}
