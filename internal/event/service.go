package event

import (
	"context"
	"errors"
	"log"

	"github.com/eventlottery/eventlottery-backend/internal/auditlog"
)

const (
	QRGeneratedMessage = "QR Code Generated"
	SavedMessage       = "Event saved"
)

// Service wraps the event form workflow
type Service struct {
	Forms    FormStore
	AuditSvc auditlog.Service // optional
	QRBase   string
}

// NewService initializes a new Service with audit logging
func NewService(forms FormStore, auditSvc auditlog.Service, qrBase string) *Service {
	return &Service{
		Forms:    forms,
		AuditSvc: auditSvc,
		QRBase:   qrBase,
	}
}

// ===========================
// 📝 Open a form session
func (s *Service) OpenForm(ctx context.Context, deviceID, ip string) (*FormSession, error) {
	session, err := s.Forms.Open(ctx)
	if err != nil {
		s.audit(ctx, deviceID, auditlog.ActionEventFormOpened, map[string]interface{}{
			"error": err.Error(),
		}, ip, auditlog.StatusFailure)
		return nil, err
	}

	s.audit(ctx, deviceID, auditlog.ActionEventFormOpened, map[string]interface{}{
		"form_id": session.ID,
	}, ip, auditlog.StatusSuccess)
	return session, nil
}

// ===========================
// 🎯 Submit through a form session. A parse failure leaves the form open;
// a successful submit dismisses it.
func (s *Service) SubmitForm(ctx context.Context, formID string, fields Fields, deviceID, ip string) (*Record, error) {
	session, err := s.Forms.Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	if session.State == FormDismissed {
		return nil, ErrFormDismissed
	}

	record, err := s.build(ctx, fields, deviceID, ip, formID)
	if err != nil {
		return nil, err
	}

	if err := s.Forms.Dismiss(ctx, formID); err != nil {
		s.audit(ctx, deviceID, auditlog.ActionEventSubmitted, map[string]interface{}{
			"name":    record.Name,
			"form_id": formID,
			"error":   err.Error(),
		}, ip, auditlog.StatusFailure)
		return nil, err
	}

	s.auditSubmitted(ctx, record, deviceID, ip, formID)
	return record, nil
}

// ===========================
// 🎯 Stateless submit
func (s *Service) Submit(ctx context.Context, fields Fields, deviceID, ip string) (*Record, error) {
	record, err := s.build(ctx, fields, deviceID, ip, "")
	if err != nil {
		return nil, err
	}
	s.auditSubmitted(ctx, record, deviceID, ip, "")
	return record, nil
}

// ===========================
// 🔗 Generate QR link
func (s *Service) GenerateQRLink(ctx context.Context, name string) (string, string) {
	return QRCodeLink(s.QRBase, name), QRGeneratedMessage
}

// build audits parse failures only; callers audit success once the
// submission is final.
func (s *Service) build(ctx context.Context, fields Fields, deviceID, ip, formID string) (*Record, error) {
	record, err := BuildRecord(fields, s.QRBase)
	if err != nil {
		details := map[string]interface{}{
			"name":  fields.Name,
			"error": err.Error(),
		}
		var perr *ParseError
		if errors.As(err, &perr) {
			details["field"] = perr.Field
		}
		if formID != "" {
			details["form_id"] = formID
		}
		s.audit(ctx, deviceID, auditlog.ActionEventSubmitted, details, ip, auditlog.StatusFailure)
		return nil, err
	}
	return record, nil
}

func (s *Service) auditSubmitted(ctx context.Context, record *Record, deviceID, ip, formID string) {
	details := map[string]interface{}{
		"name":          record.Name,
		"max_attendees": record.MaxAttendees,
		"qr_code_link":  record.QRCodeLink,
	}
	if formID != "" {
		details["form_id"] = formID
	}
	s.audit(ctx, deviceID, auditlog.ActionEventSubmitted, details, ip, auditlog.StatusSuccess)
}

func (s *Service) audit(ctx context.Context, deviceID, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc == nil {
		return
	}
	if err := s.AuditSvc.LogAction(ctx, deviceID, action, details, ip, status); err != nil {
		log.Printf("⚠️ audit %s failed: %v", action, err)
	}
}
