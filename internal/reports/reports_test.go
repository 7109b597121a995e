package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"github.com/eventlottery/eventlottery-backend/internal/auditlog"
)

type fakeAudit struct {
	logs    []auditlog.AuditLogResponse
	listErr error
	filter  auditlog.AuditLogFilter
	logged  []string
}

func (f *fakeAudit) LogAction(ctx context.Context, deviceID, action string, details map[string]interface{}, ip, status string) error {
	f.logged = append(f.logged, action+":"+status)
	return nil
}

func (f *fakeAudit) GetAuditLogs(ctx context.Context, filter auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

func (f *fakeAudit) GetAuditLogByID(ctx context.Context, id uint) (*auditlog.AuditLogResponse, error) {
	return nil, nil
}

func (f *fakeAudit) ListForExport(ctx context.Context, filter auditlog.AuditLogFilter) ([]auditlog.AuditLogResponse, error) {
	f.filter = filter
	return f.logs, f.listErr
}

func sampleRows() []AuditLogReportRow {
	return []AuditLogReportRow{
		{ID: 1, DeviceID: "dev-1", Action: auditlog.ActionRolePromoted, Status: "success", IPAddress: "10.0.0.1",
			Timestamp: time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC), Details: `{"field":"isOrganizer"}`},
		{ID: 2, DeviceID: "dev-2", Action: auditlog.ActionEventSubmitted, Status: "failure", IPAddress: "10.0.0.2",
			Timestamp: time.Date(2024, 10, 2, 18, 0, 0, 0, time.UTC), Details: `{"field":"max_attendees"}`},
	}
}

func TestExportCSV(t *testing.T) {
	data, name, mime, err := NewReportExporter().Export(FormatCSV, sampleRows())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if mime != "text/csv" || !strings.HasSuffix(name, ".csv") {
		t.Fatalf("unexpected file %s (%s)", name, mime)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][1] != "Device ID" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][2] != auditlog.ActionRolePromoted || records[1][5] != "2024-10-01 09:30:00" {
		t.Fatalf("unexpected row %v", records[1])
	}
	if records[2][6] != `{"field":"max_attendees"}` {
		t.Fatalf("details not preserved: %v", records[2])
	}
}

func TestExportExcel(t *testing.T) {
	data, name, _, err := NewReportExporter().Export(FormatExcel, sampleRows())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unexpected filename %s", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Audit Logs")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[2][1] != "dev-2" {
		t.Fatalf("unexpected sheet contents %v", rows)
	}
}

func TestExportEscapesFormulaCells(t *testing.T) {
	rows := []AuditLogReportRow{
		{ID: 1, DeviceID: "=HYPERLINK(\"http://evil\")", Action: "+cmd", Status: "-1", IPAddress: "@SUM(A1)",
			Timestamp: time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC), Details: `{"name":"Picnic"}`},
	}
	want := []string{"1", "'=HYPERLINK(\"http://evil\")", "'+cmd", "'-1", "'@SUM(A1)", "2024-10-01 09:30:00", `{"name":"Picnic"}`}

	data, _, _, err := NewReportExporter().Export(FormatCSV, rows)
	if err != nil {
		t.Fatalf("csv export: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	for i, v := range want {
		if records[1][i] != v {
			t.Fatalf("csv column %d = %q, want %q", i, records[1][i], v)
		}
	}

	data, _, _, err = NewReportExporter().Export(FormatExcel, rows)
	if err != nil {
		t.Fatalf("excel export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	sheet, err := f.GetRows("Audit Logs")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	for i, v := range want {
		if sheet[1][i] != v {
			t.Fatalf("excel column %d = %q, want %q", i, sheet[1][i], v)
		}
	}

	// PDF cells are not evaluated and keep the raw value.
	if got := rowValues(rows[0])[1]; got != rows[0].DeviceID {
		t.Fatalf("raw row value changed: %q", got)
	}
}

func TestEscapeFormula(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"dev-1":    "dev-1",
		"=1+1":     "'=1+1",
		"\tx":      "'\tx",
		"10.0.0.1": "10.0.0.1",
	}
	for in, want := range cases {
		if got := escapeFormula(in); got != want {
			t.Errorf("escapeFormula(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExportPDF(t *testing.T) {
	data, _, mime, err := NewReportExporter().Export(FormatPDF, sampleRows())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if mime != "application/pdf" || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a pdf: %s %q", mime, data[:8])
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	if _, _, _, err := NewReportExporter().Export("docx", nil); err == nil {
		t.Fatal("expected an error for unsupported format")
	}
}

func TestDateRangePresets(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		preset     string
		start, end string
	}{
		{DateRangeDaily, "2024-03-15 00:00:00", "2024-03-15 23:59:59"},
		{DateRangeWeekly, "2024-03-09 00:00:00", "2024-03-15 23:59:59"},
		{DateRangeMonthly, "2024-03-01 00:00:00", "2024-03-31 23:59:59"},
		{DateRangeYearly, "2024-01-01 00:00:00", "2024-12-31 23:59:59"},
		{"bogus", "2024-03-09 00:00:00", "2024-03-15 23:59:59"},
	}
	for _, tc := range cases {
		start, end, err := dateRangeAt(now, tc.preset, "", "")
		if err != nil {
			t.Fatalf("%s: %v", tc.preset, err)
		}
		if got := start.Format("2006-01-02 15:04:05"); got != tc.start {
			t.Fatalf("%s start = %s, want %s", tc.preset, got, tc.start)
		}
		if got := end.Format("2006-01-02 15:04:05"); got != tc.end {
			t.Fatalf("%s end = %s, want %s", tc.preset, got, tc.end)
		}
	}
}

func TestDateRangeCustom(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	start, end, err := dateRangeAt(now, DateRangeCustom, "2024-01-10", "2024-01-12")
	if err != nil {
		t.Fatalf("custom: %v", err)
	}
	if start.Day() != 10 || end.Format("15:04:05") != "23:59:59" || end.Day() != 12 {
		t.Fatalf("unexpected window %s - %s", start, end)
	}

	if _, _, err := dateRangeAt(now, DateRangeCustom, "", "2024-01-12"); err == nil {
		t.Fatal("missing start should fail")
	}
	if _, _, err := dateRangeAt(now, DateRangeCustom, "2024-02-10", "2024-01-12"); err == nil {
		t.Fatal("reversed range should fail")
	}
	if _, _, err := dateRangeAt(now, DateRangeCustom, "10/01/2024", "2024-01-12"); err == nil {
		t.Fatal("bad layout should fail")
	}
}

func TestExportAuditLogsReportIsAudited(t *testing.T) {
	audit := &fakeAudit{logs: []auditlog.AuditLogResponse{
		{ID: 7, DeviceID: "dev-9", Action: auditlog.ActionRolePromoted, Status: "success", Details: datatypes.JSON(`{}`)},
	}}
	svc := NewReportService(audit, NewReportExporter())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	req := AuditLogReportRequest{Format: FormatCSV, StartDate: start, Status: "success"}
	if _, _, _, err := svc.ExportAuditLogsReport(context.Background(), req, "admin", "127.0.0.1"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if audit.filter.FromDate == nil || !audit.filter.FromDate.Equal(start) || audit.filter.ToDate != nil || audit.filter.Status != "success" {
		t.Fatalf("filter not forwarded: %+v", audit.filter)
	}
	if len(audit.logged) != 1 || audit.logged[0] != auditlog.ActionReportExported+":success" {
		t.Fatalf("unexpected audit entries %v", audit.logged)
	}

	audit.listErr = errors.New("db down")
	if _, _, _, err := svc.ExportAuditLogsReport(context.Background(), req, "admin", ""); err == nil {
		t.Fatal("expected error")
	}
	if audit.logged[1] != auditlog.ActionReportExported+":failure" {
		t.Fatalf("failure not audited: %v", audit.logged)
	}
}

func TestAuditLogsReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewReportService(&fakeAudit{}, NewReportExporter()))
	r := gin.New()
	r.GET("/report", h.GetAuditLogsReport)

	cases := []struct {
		query string
		code  int
		ctype string
	}{
		{"", http.StatusOK, "application/json"},
		{"?format=csv", http.StatusOK, "text/csv"},
		{"?format=pdf&date_range=monthly", http.StatusOK, "application/pdf"},
		{"?format=docx", http.StatusBadRequest, ""},
		{"?date_range=custom&start_date=2024-01-01", http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report"+tc.query, nil))
		if rec.Code != tc.code {
			t.Fatalf("%q: expected %d, got %d", tc.query, tc.code, rec.Code)
		}
		if tc.ctype != "" && !strings.HasPrefix(rec.Header().Get("Content-Type"), tc.ctype) {
			t.Fatalf("%q: content type %s", tc.query, rec.Header().Get("Content-Type"))
		}
	}
}
