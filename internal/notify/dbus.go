//go:build linux

package notify

import "github.com/godbus/dbus/v5"

const (
	busDest  = "org.freedesktop.Notifications"
	busPath  = dbus.ObjectPath("/org/freedesktop/Notifications")
	busIface = "org.freedesktop.Notifications"

	appName       = "fitbar"
	musicCategory = "x-gnome.music"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one it returns a notifier
// that does nothing.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return stubNotifier{}, nil //nolint:nilerr // no session bus, notifications off
	}
	return &dbusNotifier{obj: conn.Object(busDest, busPath)}, nil
}

func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	var id uint32
	err := d.obj.Call(busIface+".Notify", 0, notifyArgs(n)...).Store(&id)
	return id, err
}

func (d *dbusNotifier) Close(id uint32) error {
	return d.obj.Call(busIface+".CloseNotification", 0, id).Err
}

// notifyArgs builds the Notify call arguments:
// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout.
// Low-urgency notifications are transient so they skip the history.
func notifyArgs(n Notification) []any {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
		"category":      dbus.MakeVariant(musicCategory),
	}
	if n.Urgency == UrgencyLow {
		hints["transient"] = dbus.MakeVariant(true)
	}
	return []any{appName, n.ReplacesID, n.Icon, n.Title, n.Body, []string{}, hints, n.Timeout}
}
