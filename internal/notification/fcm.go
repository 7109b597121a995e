package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	"firebase.google.com/go/v4/messaging"
)

// Channel delivers a notification to its device.
type Channel interface {
	Send(ctx context.Context, n Notification) error
}

// MessageSender is the subset of *messaging.Client used by FCMChannel.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

var ErrFCMDisabled = errors.New("FCM client not initialized")

// FCMChannel implements Channel for Firebase Cloud Messaging
type FCMChannel struct {
	client MessageSender
}

// NewFCMChannel accepts a nil client; Send then fails with ErrFCMDisabled.
func NewFCMChannel(client MessageSender) *FCMChannel {
	return &FCMChannel{client: client}
}

// Send pushes the notification to the device topic
func (f *FCMChannel) Send(ctx context.Context, n Notification) error {
	if f.client == nil {
		return ErrFCMDisabled
	}

	message := &messaging.Message{
		Topic: TopicForDevice(n.DeviceID),
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"id":   n.ID,
			"kind": n.Kind,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID:    "event_notifications",
				Priority:     messaging.PriorityHigh,
				DefaultSound: true,
			},
		},
	}

	response, err := f.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	log.Printf("✅ FCM message sent: %s", response)
	return nil
}
