package userrole

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/internal/notification"
	"github.com/eventlottery/eventlottery-backend/middleware"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// RoleResponse is returned by GET /me/role. NotificationTopic is the FCM
// topic the device subscribes to for promotion notices; it is empty without
// a device id.
type RoleResponse struct {
	DeviceID          string      `json:"device_id"`
	Role              Role        `json:"role" swaggertype:"string" enums:"admin,organizer,entrant"`
	Status            Status      `json:"status"`
	Destination       Destination `json:"destination"`
	Path              string      `json:"path"`
	Message           string      `json:"message,omitempty"`
	NotificationTopic string      `json:"notification_topic,omitempty"`
}

// RouteResponse is returned by GET /route
type RouteResponse struct {
	Role        Role        `json:"role" swaggertype:"string" enums:"admin,organizer,entrant"`
	Destination Destination `json:"destination"`
	Path        string      `json:"path"`
}

// GetMyRole handles GET /me/role
// @Summary Resolve the caller's role
// @Description Reads users/{deviceId}. Missing documents and lookup failures resolve to entrant; status tells them apart.
// @Tags Roles
// @Produce json
// @Param X-Device-ID header string false "Caller device identifier"
// @Success 200 {object} RoleResponse
// @Router /me/role [get]
func (h *Handler) GetMyRole(c *gin.Context) {
	deviceID := middleware.GetDeviceID(c)

	outcome := <-h.Service.ResolveRoleAsync(c.Request.Context(), deviceID)
	destination := DestinationFor(outcome.Role)

	resp := RoleResponse{
		DeviceID:    deviceID,
		Role:        outcome.Role,
		Status:      outcome.Status,
		Destination: destination,
		Path:        destination.Path(),
		Message:     outcome.Message(),
	}
	if deviceID != "" {
		resp.NotificationTopic = notification.TopicForDevice(deviceID)
	}
	c.JSON(http.StatusOK, resp)
}

// PromoteMe handles POST /me/promote
// @Summary Promote the caller to organizer
// @Description On success a promotion notice is sent to the FCM topic returned as notification_topic by GET /me/role.
// @Tags Roles
// @Produce json
// @Param X-Device-ID header string true "Caller device identifier"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /me/promote [post]
func (h *Handler) PromoteMe(c *gin.Context) {
	deviceID := middleware.GetDeviceID(c)
	ip := middleware.GetIPFromContext(c)

	err := h.Service.Promote(c.Request.Context(), deviceID, ip)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": PromotedMessage})
	case errors.Is(err, ErrIdentityMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device ID not found."})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User data not found."})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to promote user to organizer."})
	}
}

// RouteRole handles GET /route?role=
// @Summary Map a role name to its profile destination
// @Description Case-insensitive; unknown roles map to the entrant destination.
// @Tags Roles
// @Produce json
// @Param role query string true "Role name"
// @Success 200 {object} RouteResponse
// @Router /route [get]
func (h *Handler) RouteRole(c *gin.Context) {
	name := c.Query("role")
	role, _ := ParseRole(name)
	destination := h.Service.Route(name)

	c.JSON(http.StatusOK, RouteResponse{
		Role:        role,
		Destination: destination,
		Path:        destination.Path(),
	})
}
