// Package assist asks a human where a Windows share or drive is mounted.
//
// It is used only after every automatic strategy has failed. A backend
// shows the known candidate prefixes and returns a pick, a request for
// manual entry, or a cancellation. Backends exist for zenity, kdialog and
// a numbered menu on the terminal.
package assist
