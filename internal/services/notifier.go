package services

import (
	"encoding/json"
	"fmt"
	"log"

	"ecoshare/pkg/rabbitmq"
)

// Notification is a transient message shown to the user. Notifications are
// fire-and-forget and never persisted.
type Notification struct {
	Message string `json:"message"`
	Streaks int    `json:"streaks,omitempty"`
	User    string `json:"user,omitempty"`
}

// Notifier delivers transient notifications. Delivery failures must not
// affect application state; callers log and move on.
type Notifier interface {
	Notify(n Notification) error
}

// LogNotifier writes notifications to the standard logger. It is the default
// when no message broker is configured.
type LogNotifier struct{}

// Notify logs the notification.
func (LogNotifier) Notify(n Notification) error {
	log.Printf("[notification] %s", n.Message)
	return nil
}

// AMQPNotifier publishes notifications as streak events through RabbitMQ so
// other consumers (mail, push) can react to them.
type AMQPNotifier struct {
	client *rabbitmq.Client
}

// NewAMQPNotifier creates a new AMQPNotifier on top of an established client.
func NewAMQPNotifier(client *rabbitmq.Client) *AMQPNotifier {
	return &AMQPNotifier{client: client}
}

// Notify marshals the notification and publishes it to the streak queue.
func (a *AMQPNotifier) Notify(n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := a.client.Publish("", rabbitmq.StreakQueue, body); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
