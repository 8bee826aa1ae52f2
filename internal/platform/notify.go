package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod = "org.freedesktop.Notifications.Notify"
)

// Notifier shows a desktop message.
type Notifier interface {
	Notify(summary, body string) error
}

// SessionNotifier sends notifications through the freedesktop
// notification service on the session bus.
type SessionNotifier struct {
	AppName string
	Icon    string
	// Timeout in milliseconds; -1 lets the server decide.
	Timeout int32
}

// Notify sends one notification.
func (n SessionNotifier) Notify(summary, body string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notifyDest, notifyPath)
	call := obj.Call(notifyMethod, 0,
		n.AppName, uint32(0), n.Icon, summary, body,
		[]string{}, map[string]dbus.Variant{}, n.Timeout)
	if call.Err != nil {
		return fmt.Errorf("sending notification: %w", call.Err)
	}
	return nil
}

// SessionBusAvailable reports whether a session bus connection can be made.
func SessionBusAvailable() bool {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
