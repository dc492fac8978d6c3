package platform

import "fyne.io/fyne/v2"

// Urgency follows the freedesktop notification urgency levels.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is a single desktop notification.
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
}

// Notifier shows desktop notifications.
type Notifier interface {
	Notify(notification Notification) error
	Close() error
}

// NewNotifier returns the best notifier for this system. On Linux it talks
// to the session bus directly so urgency is honoured; elsewhere, or when no
// bus is reachable, fallback is used.
func NewNotifier(appName string, fallback Notifier) Notifier {
	return newNotifier(appName, fallback)
}

type appNotifier struct {
	app fyne.App
}

// NewAppNotifier sends notifications through the fyne application.
func NewAppNotifier(app fyne.App) Notifier {
	return &appNotifier{app: app}
}

func (notifier *appNotifier) Notify(notification Notification) error {
	notifier.app.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	return nil
}

func (notifier *appNotifier) Close() error {
	return nil
}
