package event

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidNumber marks numeric form fields that are not base-10 integers.
var ErrInvalidNumber = errors.New("invalid number")

// ParseError reports which numeric field failed to parse.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid integer", e.Field, e.Value)
}

// Unwrap exposes both ErrInvalidNumber and the strconv cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidNumber}
	}
	return []error{ErrInvalidNumber, e.Err}
}

// QRCodeLink appends the raw event name to base. The name is not escaped.
func QRCodeLink(base, name string) string {
	return base + name
}

// BuildRecord turns form fields into an event record. Only the numeric
// fields can fail; nothing is built when they do.
func BuildRecord(f Fields, qrBase string) (*Record, error) {
	maxAttendees, err := parseCount("max_attendees", f.MaxAttendees)
	if err != nil {
		return nil, err
	}

	var maxWaitlist *int
	if f.MaxWaitlist != "" {
		n, err := parseCount("max_waitlist", f.MaxWaitlist)
		if err != nil {
			return nil, err
		}
		maxWaitlist = &n
	}

	return &Record{
		Name:                f.Name,
		Date:                f.Date,
		Time:                f.Time,
		Description:         f.Description,
		MaxAttendees:        maxAttendees,
		MaxWaitlist:         maxWaitlist,
		GeolocationRequired: f.GeolocationRequired,
		QRCodeLink:          QRCodeLink(qrBase, f.Name),
	}, nil
}

// parseCount accepts 32-bit base-10 integers with an optional sign.
func parseCount(field, value string) (int, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return int(n), nil
}
