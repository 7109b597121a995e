package userrole

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/internal/notification"
	"github.com/eventlottery/eventlottery-backend/middleware"
)

func newRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.DeviceIdentity(), middleware.AuditMiddleware())
	h := NewHandler(svc)
	r.GET("/me/role", h.GetMyRole)
	r.POST("/me/promote", h.PromoteMe)
	r.GET("/route", h.RouteRole)
	r.GET("/admin/ping", RequireRole(svc, RoleAdmin), func(c *gin.Context) {
		role, _ := RoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func doRequest(r http.Handler, method, path, deviceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if deviceID != "" {
		req.Header.Set(middleware.DeviceIDHeader, deviceID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetMyRole(t *testing.T) {
	store := &fakeStore{docs: map[string]Document{"org": {"isOrganizer": true}}}
	r := newRouter(NewService(store, nil, nil, time.Second))

	cases := []struct {
		deviceID    string
		role        string
		status      Status
		destination Destination
		message     string
	}{
		{"org", "organizer", StatusFound, DestinationOrganizerProfile, ""},
		{"nobody", "entrant", StatusNotFound, DestinationEditProfile, "User data not found."},
		{"", "entrant", StatusIdentityMissing, DestinationEditProfile, "Device ID not found."},
	}
	for _, tc := range cases {
		rec := doRequest(r, http.MethodGet, "/me/role", tc.deviceID)
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d", tc.deviceID, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["role"] != tc.role || body["status"] != string(tc.status) ||
			body["destination"] != string(tc.destination) || body["message"] != tc.message {
			t.Fatalf("%q: unexpected body %v", tc.deviceID, body)
		}
	}
}

func TestGetMyRoleNotificationTopic(t *testing.T) {
	store := &fakeStore{docs: map[string]Document{"org": {"isOrganizer": true}}}
	r := newRouter(NewService(store, nil, nil, time.Second))

	for _, deviceID := range []string{"org", "nobody"} {
		var body RoleResponse
		rec := doRequest(r, http.MethodGet, "/me/role", deviceID)
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.NotificationTopic != notification.TopicForDevice(deviceID) {
			t.Fatalf("%q: topic = %q", deviceID, body.NotificationTopic)
		}
	}

	rec := doRequest(r, http.MethodGet, "/me/role", "")
	var raw map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["notification_topic"]; ok {
		t.Fatalf("no topic expected without a device id, got %v", raw)
	}
}

func TestPromoteMeStatusCodes(t *testing.T) {
	store := &fakeStore{docs: map[string]Document{"dev-1": {}}}
	r := newRouter(NewService(store, nil, nil, time.Second))

	if rec := doRequest(r, http.MethodPost, "/me/promote", "dev-1"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := doRequest(r, http.MethodPost, "/me/promote", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := doRequest(r, http.MethodPost, "/me/promote", "ghost"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	broken := newRouter(NewService(&fakeStore{updateErr: errors.New("unavailable")}, nil, nil, time.Second))
	if rec := doRequest(broken, http.MethodPost, "/me/promote", "dev-1"); rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestRouteRoleEndpoint(t *testing.T) {
	r := newRouter(NewService(&fakeStore{}, nil, nil, time.Second))

	upper := doRequest(r, http.MethodGet, "/route?role=ADMIN", "")
	lower := doRequest(r, http.MethodGet, "/route?role=admin", "")
	if upper.Body.String() != lower.Body.String() {
		t.Fatalf("expected identical responses, got %s vs %s", upper.Body, lower.Body)
	}

	var body RouteResponse
	if err := json.Unmarshal(lower.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Destination != DestinationAdminProfile || body.Path != "/admin/profile" {
		t.Fatalf("unexpected body %+v", body)
	}

	unknown := doRequest(r, http.MethodGet, "/route?role=wizard", "")
	if err := json.Unmarshal(unknown.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Destination != DestinationEditProfile {
		t.Fatalf("unknown role should route to edit profile, got %s", body.Destination)
	}
}

func TestRequireRole(t *testing.T) {
	store := &fakeStore{docs: map[string]Document{
		"admin": {"isAdmin": true},
		"org":   {"isOrganizer": true},
	}}
	r := newRouter(NewService(store, nil, nil, time.Second))

	if rec := doRequest(r, http.MethodGet, "/admin/ping", "admin"); rec.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", rec.Code)
	}
	for _, id := range []string{"org", "ghost", ""} {
		if rec := doRequest(r, http.MethodGet, "/admin/ping", id); rec.Code != http.StatusForbidden {
			t.Fatalf("%q should be forbidden, got %d", id, rec.Code)
		}
	}
}
