//go:build linux

package platform

import (
	"fmt"
	"log"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsService   = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	notificationsInterface = "org.freedesktop.Notifications"
	notificationTimeoutMs  = int32(5000)
)

type dbusNotifier struct {
	mu        sync.Mutex
	conn      *dbus.Conn
	appName   string
	replaceID uint32
}

func newNotifier(appName string, fallback Notifier) Notifier {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Printf("notifications: session bus unavailable, using fallback: %v", err)
		return fallback
	}
	return &dbusNotifier{conn: conn, appName: appName}
}

// Notify replaces the previous notification so a cycle does not pile up
// stale phase messages.
func (notifier *dbusNotifier) Notify(notification Notification) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	obj := notifier.conn.Object(notificationsService, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsInterface+".Notify", 0,
		notifier.appName,
		notifier.replaceID,
		"dialog-information",
		notification.Title,
		notification.Body,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(notification.Urgency)),
		},
		notificationTimeoutMs,
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("read notification id: %w", err)
	}
	notifier.replaceID = id
	return nil
}

func (notifier *dbusNotifier) Close() error {
	return notifier.conn.Close()
}
