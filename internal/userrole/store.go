package userrole

import (
	"context"
	"errors"
)

// Field names stored on each users/{deviceId} document.
const (
	FieldIsAdmin     = "isAdmin"
	FieldIsOrganizer = "isOrganizer"
)

// ErrNotFound is returned by a Store when the user document does not exist.
var ErrNotFound = errors.New("user document not found")

// Document is the raw field map of a user document.
type Document map[string]interface{}

// Bool reads a boolean field. Missing or non-boolean values are false.
func (d Document) Bool(field string) bool {
	v, ok := d[field].(bool)
	return ok && v
}

// Store is the data access the resolver needs from the document database.
type Store interface {
	Get(ctx context.Context, deviceID string) (Document, error)
	Update(ctx context.Context, deviceID string, fields map[string]interface{}) error
}

// UnavailableStore fails every call with Err. It stands in for Firestore when
// Firebase could not be initialized, so lookups degrade to entrant.
type UnavailableStore struct {
	Err error
}

func (s UnavailableStore) Get(ctx context.Context, deviceID string) (Document, error) {
	return nil, s.err()
}

func (s UnavailableStore) Update(ctx context.Context, deviceID string, fields map[string]interface{}) error {
	return s.err()
}

func (s UnavailableStore) err() error {
	if s.Err != nil {
		return s.Err
	}
	return errors.New("document store unavailable")
}
