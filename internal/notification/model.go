package notification

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Notification kinds
const (
	KindRolePromoted = "role_promoted"
)

// Notification is a transient user-visible message addressed to one device.
type Notification struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func New(deviceID, kind, title, body string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		DeviceID:  deviceID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// TopicForDevice returns the FCM topic a device subscribes to.
// Device ids are opaque, so the topic carries a digest instead of the raw id.
func TopicForDevice(deviceID string) string {
	sum := blake2b.Sum256([]byte(deviceID))
	return "device-" + hex.EncodeToString(sum[:16])
}
