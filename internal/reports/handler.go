package reports

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/middleware"
)

type Handler struct {
	service ReportService
}

func NewHandler(svc ReportService) *Handler {
	return &Handler{service: svc}
}

// GetAuditLogsReport handles requests for audit logs report
// @Summary Audit log report
// @Description JSON preview when format is empty, otherwise a csv, excel or pdf download.
// @Tags Reports
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param X-Device-ID header string true "Admin device identifier"
// @Param date_range query string false "daily, weekly, monthly, yearly or custom"
// @Param start_date query string false "YYYY-MM-DD, custom range only"
// @Param end_date query string false "YYYY-MM-DD, custom range only"
// @Param action query string false "Action filter"
// @Param status query string false "success or failure"
// @Param device_id query string false "Device filter"
// @Param format query string false "csv, excel or pdf"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/reports/audit-logs [get]
func (h *Handler) GetAuditLogsReport(c *gin.Context) {
	dateRange := c.DefaultQuery("date_range", DateRangeWeekly)
	start, end, err := GetDateRange(dateRange, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := AuditLogReportRequest{
		DeviceID:  c.Query("device_id"),
		Action:    c.Query("action"),
		Status:    c.Query("status"),
		DateRange: dateRange,
		StartDate: start,
		EndDate:   end,
		Format:    c.Query("format"),
	}

	if req.Format == "" {
		rows, err := h.service.GetAuditLogsReport(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": rows})
		return
	}

	switch req.Format {
	case FormatCSV, FormatExcel, FormatPDF:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format"})
		return
	}

	data, fname, mime, err := h.service.ExportAuditLogsReport(c.Request.Context(), req,
		middleware.GetDeviceID(c), middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fname))
	c.Data(http.StatusOK, mime, data)
}
