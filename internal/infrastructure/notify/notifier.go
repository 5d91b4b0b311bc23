// Package notify defines the notification sink the stores signal on every
// mutating operation. How (or whether) notifications are displayed is up to
// the delivery shell; the core only publishes them.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Severity classifies a notification for the display layer
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

// Notification is one user-facing message
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier accepts notifications published by the stores
type Notifier interface {
	Publish(n Notification)
}

// LogNotifier publishes notifications to a zap logger
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

// Publish implements Notifier
func (n *LogNotifier) Publish(notification Notification) {
	fields := []zap.Field{
		zap.String("description", notification.Description),
		zap.String("severity", string(notification.Severity)),
	}
	if notification.Severity == SeverityDestructive {
		n.logger.Warn(notification.Title, fields...)
		return
	}
	n.logger.Info(notification.Title, fields...)
}

// Recorder collects published notifications for assertions in tests
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish implements Notifier
func (r *Recorder) Publish(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications in publish order
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make([]Notification, len(r.items))
	copy(copied, r.items)
	return copied
}

// Last returns the most recently published notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset discards all recorded notifications
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
