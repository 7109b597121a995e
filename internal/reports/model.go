package reports

import "time"

const (
	DateRangeDaily   = "daily"
	DateRangeWeekly  = "weekly"
	DateRangeMonthly = "monthly"
	DateRangeYearly  = "yearly"
	DateRangeCustom  = "custom"

	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// AuditLogReportRequest carries the export query
type AuditLogReportRequest struct {
	DeviceID  string    `json:"device_id"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	DateRange string    `json:"date_range"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Format    string    `json:"format"`
}

// AuditLogReportRow is one flattened audit entry
type AuditLogReportRow struct {
	ID        uint      `json:"id"`
	DeviceID  string    `json:"device_id"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}
