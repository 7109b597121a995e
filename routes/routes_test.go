package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventlottery/eventlottery-backend/config"
	"github.com/eventlottery/eventlottery-backend/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		UsersCollection:    "users",
		QRBaseURL:          config.DefaultQRBaseURL,
		RoleFetchTimeout:   time.Second,
		FormTTL:            time.Hour,
		RateLimitPerMinute: 1000,
		AllowedOrigins:     []string{"http://localhost:5173"},
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig()
	r.Use(CORS(cfg))
	Setup(r, cfg, Dependencies{})
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.DeviceIDHeader, "dev-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleFallsBackWithoutFirebase(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodGet, "/api/v1/me/role", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["role"] != "entrant" || body["status"] != "transport_error" || body["message"] != "Failed to fetch user data." {
		t.Fatalf("unexpected body %v", body)
	}

	if rec := serve(newTestRouter(), http.MethodPost, "/api/v1/me/promote", ""); rec.Code != http.StatusBadGateway {
		t.Fatalf("promote without Firebase: expected 502, got %d", rec.Code)
	}
}

func TestEventFormsUseMemoryStore(t *testing.T) {
	r := newTestRouter()

	rec := serve(r, http.MethodPost, "/api/v1/events/forms", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var session map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &session)

	submit := `{"name":"Picnic","max_attendees":"10"}`
	if rec := serve(r, http.MethodPost, "/api/v1/events/forms/"+session["form_id"]+"/submit", submit); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if rec := serve(r, http.MethodPost, "/api/v1/events/forms/"+session["form_id"]+"/submit", submit); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAdminRoutesNeedDatabase(t *testing.T) {
	if rec := serve(newTestRouter(), http.MethodGet, "/api/v1/admin/auditlogs", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a database, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/me/role", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", middleware.DeviceIDHeader)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", got)
	}
}
