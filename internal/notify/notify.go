// Package notify announces completed syncs over org.freedesktop.Notifications.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/accentsync/internal/syncer"
)

const (
	// DBusInterface is the notification interface name.
	DBusInterface = "org.freedesktop.Notifications"
	// DBusPath is the notification object path.
	DBusPath = "/org/freedesktop/Notifications"
	// DBusBusName is the bus name of the notification daemon.
	DBusBusName = "org.freedesktop.Notifications"

	appName = "accentsync"
	appIcon = "preferences-desktop-theme"
)

// Notifier sends desktop notifications through a notification daemon.
type Notifier struct {
	obj    dbus.BusObject
	conn   *dbus.Conn
	logger *slog.Logger
}

// Connect opens a private session bus connection to the notification daemon.
func Connect(logger *slog.Logger) (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	n := NewNotifier(conn.Object(DBusBusName, dbus.ObjectPath(DBusPath)), logger)
	n.conn = conn
	return n, nil
}

// NewNotifier creates a Notifier that calls obj.
func NewNotifier(obj dbus.BusObject, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{obj: obj, logger: logger}
}

// Notify shows a notification and returns the id the daemon assigned.
// A zero timeout lets the daemon decide how long to show it.
func (n *Notifier) Notify(ctx context.Context, summary, body string, timeout time.Duration) (uint32, error) {
	expire := int32(-1)
	if timeout > 0 {
		expire = int32(timeout.Milliseconds())
	}

	call := n.obj.CallWithContext(ctx, DBusInterface+".Notify", 0,
		appName,
		uint32(0), // replaces_id
		appIcon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(0)),
		},
		expire,
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notify call failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("failed to read notification id: %w", err)
	}

	n.logger.Debug("sent notification", "id", id, "summary", summary)
	return id, nil
}

// NotifyReport announces a finished sync.
func (n *Notifier) NotifyReport(ctx context.Context, report *syncer.Report, timeout time.Duration) error {
	summary, body := Message(report)
	_, err := n.Notify(ctx, summary, body, timeout)
	return err
}

// Close closes the bus connection opened by Connect.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

// Message builds the notification text for a report.
func Message(report *syncer.Report) (summary, body string) {
	summary = fmt.Sprintf("Accent colour set to %s", report.Palette.Accent)

	names := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		if r.Changed {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return summary, "All dotfiles were already up to date"
	}
	return summary, fmt.Sprintf("Updated %s (derived %s)", strings.Join(names, ", "), report.Palette.Derived)
}
