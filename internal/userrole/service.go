package userrole

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/eventlottery/eventlottery-backend/internal/auditlog"
	"github.com/eventlottery/eventlottery-backend/internal/notification"
)

// ErrIdentityMissing is returned when a call carries no device identifier.
var ErrIdentityMissing = errors.New("device id not found")

// Status says how a role was reached. Every status other than StatusFound
// reports RoleEntrant.
type Status string

const (
	StatusFound           Status = "found"
	StatusNotFound        Status = "not_found"
	StatusTransportError  Status = "transport_error"
	StatusIdentityMissing Status = "identity_missing"
)

// Outcome is the result of one role lookup.
type Outcome struct {
	Role   Role
	Status Status
	Err    error
}

// Known reports whether the role came from a stored document rather than the
// entrant fallback.
func (o Outcome) Known() bool {
	return o.Status == StatusFound
}

// Message is the user-facing notice for a fallback outcome.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusIdentityMissing:
		return "Device ID not found."
	case StatusNotFound:
		return "User data not found."
	case StatusTransportError:
		return "Failed to fetch user data."
	default:
		return ""
	}
}

type Service interface {
	ResolveRole(ctx context.Context, deviceID string) Outcome
	ResolveRoleAsync(ctx context.Context, deviceID string) <-chan Outcome
	Promote(ctx context.Context, deviceID string, ip string) error
	Route(role string) Destination
}

type service struct {
	store    Store
	auditSvc auditlog.Service
	notifier notification.Publisher
	timeout  time.Duration
}

// NewService wires the resolver. A zero timeout leaves remote calls bounded
// only by the caller's context.
func NewService(store Store, auditSvc auditlog.Service, notifier notification.Publisher, timeout time.Duration) Service {
	if notifier == nil {
		notifier = notification.NopPublisher{}
	}
	return &service{
		store:    store,
		auditSvc: auditSvc,
		notifier: notifier,
		timeout:  timeout,
	}
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// ResolveRole reads users/{deviceID} and derives the role. Remote failures
// fall back to entrant; the Status tells them apart.
func (s *service) ResolveRole(ctx context.Context, deviceID string) Outcome {
	if deviceID == "" {
		log.Println("⚠️ Role lookup without device ID, defaulting to entrant")
		return Outcome{Role: RoleEntrant, Status: StatusIdentityMissing, Err: ErrIdentityMissing}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc, err := s.store.Get(ctx, deviceID)
	switch {
	case errors.Is(err, ErrNotFound):
		log.Printf("⚠️ User document does not exist for device ID: %s", deviceID)
		return Outcome{Role: RoleEntrant, Status: StatusNotFound, Err: err}
	case err != nil:
		log.Printf("❌ Error fetching user role for %s: %v", deviceID, err)
		return Outcome{Role: RoleEntrant, Status: StatusTransportError, Err: err}
	}

	role := RoleFromFlags(doc.Bool(FieldIsAdmin), doc.Bool(FieldIsOrganizer))
	return Outcome{Role: role, Status: StatusFound}
}

// ResolveRoleAsync runs ResolveRole in the background. The channel yields
// exactly one Outcome and is then closed.
func (s *service) ResolveRoleAsync(ctx context.Context, deviceID string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		out <- s.ResolveRole(ctx, deviceID)
	}()
	return out
}

// Promote sets isOrganizer=true on the caller's document. It is not retried.
func (s *service) Promote(ctx context.Context, deviceID string, ip string) error {
	if deviceID == "" {
		return ErrIdentityMissing
	}

	rctx, cancel := s.withTimeout(ctx)
	err := s.store.Update(rctx, deviceID, map[string]interface{}{FieldIsOrganizer: true})
	cancel()

	if err != nil {
		log.Printf("❌ Error promoting %s to organizer: %v", deviceID, err)
		s.audit(ctx, deviceID, map[string]interface{}{"error": err.Error()}, ip, auditlog.StatusFailure)
		return fmt.Errorf("promote %s: %w", deviceID, err)
	}

	log.Printf("✅ Device %s promoted to organizer", deviceID)
	s.audit(ctx, deviceID, map[string]interface{}{"field": FieldIsOrganizer, "value": true}, ip, auditlog.StatusSuccess)

	n := notification.New(deviceID, notification.KindRolePromoted, "Organizer access", PromotedMessage)
	if err := s.notifier.Publish(ctx, n); err != nil {
		log.Printf("⚠️ Promotion notification not published: %v", err)
	}
	return nil
}

// PromotedMessage is shown to a device after a successful promotion.
const PromotedMessage = "You are now an organizer!"

func (s *service) Route(role string) Destination {
	return Route(role)
}

func (s *service) audit(ctx context.Context, deviceID string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.LogAction(ctx, deviceID, auditlog.ActionRolePromoted, details, ip, status); err != nil {
		log.Printf("❌ Audit log error: %v", err)
	}
}
