package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📝 Open Form - POST /events/forms
// @Summary Open an event form
// @Tags Events
// @Produce json
// @Param X-Device-ID header string false "Caller device identifier"
// @Success 201 {object} FormSession
// @Failure 500 {object} map[string]string
// @Router /events/forms [post]
func (h *Handler) OpenForm(c *gin.Context) {
	session, err := h.Service.OpenForm(c.Request.Context(), middleware.GetDeviceID(c), middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open form"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ===========================
// 🎯 Submit Form - POST /events/forms/:id/submit
// @Summary Submit an open event form
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param fields body Fields true "Event form fields"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/forms/{id}/submit [post]
func (h *Handler) SubmitForm(c *gin.Context) {
	var fields Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	record, err := h.Service.SubmitForm(c.Request.Context(), c.Param("id"), fields,
		middleware.GetDeviceID(c), middleware.GetIPFromContext(c))
	if err != nil {
		respondSubmitError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmitResponse{EventName: record.Name, Event: record, Message: SavedMessage})
}

// ===========================
// 🎯 Submit - POST /events/submit
// @Summary Submit event fields without a form session
// @Tags Events
// @Accept json
// @Produce json
// @Param fields body Fields true "Event form fields"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} map[string]string
// @Router /events/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var fields Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	record, err := h.Service.Submit(c.Request.Context(), fields,
		middleware.GetDeviceID(c), middleware.GetIPFromContext(c))
	if err != nil {
		respondSubmitError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmitResponse{EventName: record.Name, Event: record, Message: SavedMessage})
}

// ===========================
// 🔗 QR Link - POST /events/qr-link
// @Summary Generate the QR link for an event name
// @Tags Events
// @Accept json
// @Produce json
// @Param body body QRLinkRequest true "Event name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /events/qr-link [post]
func (h *Handler) GenerateQRLink(c *gin.Context) {
	var req QRLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	link, message := h.Service.GenerateQRLink(c.Request.Context(), req.Name)
	c.JSON(http.StatusOK, gin.H{"qr_code_link": link, "message": message})
}

func respondSubmitError(c *gin.Context, err error) {
	var perr *ParseError
	switch {
	case errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error(), "field": perr.Field, "value": perr.Value})
	case errors.Is(err, ErrFormNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrFormDismissed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit event"})
	}
}
