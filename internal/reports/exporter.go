package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders audit rows; it returns content, filename and MIME type.
type ReportExporter interface {
	Export(format string, rows []AuditLogReportRow) ([]byte, string, string, error)
}

type reportExporter struct {
	now func() time.Time
}

func NewReportExporter() ReportExporter {
	return &reportExporter{now: time.Now}
}

var auditHeaders = []string{"ID", "Device ID", "Action", "Status", "IP Address", "Timestamp", "Details"}

func (e *reportExporter) Export(format string, rows []AuditLogReportRow) ([]byte, string, string, error) {
	timestamp := e.now().Format("20060102_150405")

	switch format {
	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("audit_logs_report_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("audit_logs_report_%s.csv", timestamp), "text/csv", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("audit_logs_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for audit logs: %s", format)
	}
}

func rowValues(r AuditLogReportRow) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.DeviceID,
		r.Action,
		r.Status,
		r.IPAddress,
		r.Timestamp.Format("2006-01-02 15:04:05"),
		r.Details,
	}
}

// spreadsheetValues quotes cells a spreadsheet would read as a formula.
func spreadsheetValues(r AuditLogReportRow) []string {
	values := rowValues(r)
	for i, v := range values {
		values[i] = escapeFormula(v)
	}
	return values
}

func escapeFormula(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + v
	}
	return v
}

func (e *reportExporter) exportCSV(rows []AuditLogReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(auditHeaders); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := writer.Write(spreadsheetValues(r)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportExcel(rows []AuditLogReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Audit Logs"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range auditHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range rows {
		for j, v := range spreadsheetValues(r) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportPDF(rows []AuditLogReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Audit Logs Report")
	pdf.Ln(20)

	widths := []float64{14, 45, 35, 20, 30, 38, 95}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range auditHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		for i, v := range rowValues(r) {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
