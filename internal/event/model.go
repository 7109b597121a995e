package event

import (
	"time"
)

// ============================
// 🟡 Form fields as typed by the organizer
type Fields struct {
	Name                string `json:"name"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Description         string `json:"description"`
	MaxAttendees        string `json:"max_attendees"`
	MaxWaitlist         string `json:"max_waitlist"`
	GeolocationRequired bool   `json:"geolocation_required"`
}

// ============================
// 🔷 Event record built from one submission
type Record struct {
	Name                string `json:"name"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Description         string `json:"description"`
	MaxAttendees        int    `json:"max_attendees"`
	MaxWaitlist         *int   `json:"max_waitlist,omitempty"` // nil when left blank
	GeolocationRequired bool   `json:"geolocation_required"`
	QRCodeLink          string `json:"qr_code_link"`
}

// ============================
// 🟠 Form session
type FormState string

const (
	FormOpen      FormState = "open"
	FormDismissed FormState = "dismissed"
)

type FormSession struct {
	ID        string    `json:"form_id"`
	State     FormState `json:"state"`
	ExpiresAt time.Time `json:"expires_at"`
}

// QRLinkRequest is the body of the generate-link action
type QRLinkRequest struct {
	Name string `json:"name"`
}

// SubmitResponse is returned on a successful submission
type SubmitResponse struct {
	EventName string  `json:"event_name"`
	Event     *Record `json:"event"`
	Message   string  `json:"message"`
}
