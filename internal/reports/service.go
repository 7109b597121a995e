package reports

import (
	"context"
	"log"

	"github.com/eventlottery/eventlottery-backend/internal/auditlog"
)

type ReportService interface {
	GetAuditLogsReport(ctx context.Context, req AuditLogReportRequest) ([]AuditLogReportRow, error)
	ExportAuditLogsReport(ctx context.Context, req AuditLogReportRequest, deviceID, ip string) ([]byte, string, string, error)
}

type reportService struct {
	auditSvc auditlog.Service
	exporter ReportExporter
}

func NewReportService(auditSvc auditlog.Service, exporter ReportExporter) ReportService {
	return &reportService{
		auditSvc: auditSvc,
		exporter: exporter,
	}
}

func (s *reportService) GetAuditLogsReport(ctx context.Context, req AuditLogReportRequest) ([]AuditLogReportRow, error) {
	filter := auditlog.AuditLogFilter{
		DeviceID: req.DeviceID,
		Action:   req.Action,
		Status:   req.Status,
	}
	if !req.StartDate.IsZero() {
		filter.FromDate = &req.StartDate
	}
	if !req.EndDate.IsZero() {
		filter.ToDate = &req.EndDate
	}

	logs, err := s.auditSvc.ListForExport(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]AuditLogReportRow, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, AuditLogReportRow{
			ID:        l.ID,
			DeviceID:  l.DeviceID,
			Action:    l.Action,
			Status:    l.Status,
			IPAddress: l.IPAddress,
			Timestamp: l.CreatedAt,
			Details:   string(l.Details),
		})
	}
	return rows, nil
}

func (s *reportService) ExportAuditLogsReport(ctx context.Context, req AuditLogReportRequest, deviceID, ip string) ([]byte, string, string, error) {
	details := map[string]interface{}{
		"report_type": "audit_logs",
		"format":      req.Format,
		"date_range":  req.DateRange,
	}

	rows, err := s.GetAuditLogsReport(ctx, req)
	if err != nil {
		details["error"] = err.Error()
		s.audit(ctx, deviceID, details, ip, auditlog.StatusFailure)
		return nil, "", "", err
	}

	data, filename, mime, err := s.exporter.Export(req.Format, rows)
	if err != nil {
		details["error"] = err.Error()
		s.audit(ctx, deviceID, details, ip, auditlog.StatusFailure)
		return nil, "", "", err
	}

	details["record_count"] = len(rows)
	details["filename"] = filename
	s.audit(ctx, deviceID, details, ip, auditlog.StatusSuccess)
	return data, filename, mime, nil
}

func (s *reportService) audit(ctx context.Context, deviceID string, details map[string]interface{}, ip, status string) {
	if err := s.auditSvc.LogAction(ctx, deviceID, auditlog.ActionReportExported, details, ip, status); err != nil {
		log.Printf("⚠️ audit report export failed: %v", err)
	}
}
