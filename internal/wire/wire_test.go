package wire

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/integration/verteil"
	"flight-booking/pkg/auth"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSessions map[string]string

func (s staticSessions) Verify(ctx context.Context, token string) (*auth.Session, error) {
	if userID, ok := s[token]; ok {
		return &auth.Session{UserID: userID}, nil
	}
	return nil, auth.ErrInvalidSession
}

type staticRoles map[string]auth.Role

func (s staticRoles) ResolveRole(ctx context.Context, userID string) (auth.Role, error) {
	return s[userID], nil
}

func newTestApp(t *testing.T, backendURL string) *App {
	t.Helper()

	config := &utils.Config{
		App:    utils.AppConfig{Name: "flight-booking", MetricsPath: "/metrics"},
		Routes: utils.RoutesConfig{SignInPath: "/sign-in", HomePath: "/"},
	}
	log := zap.NewNop()

	return Wiring(Deps{
		Repo:     repository.NewRepository(database.Unconfigured(), log),
		Backend:  verteil.NewClient(backendURL, "key", time.Second, log),
		Sessions: staticSessions{"admin-token": "user_admin", "member-token": "user_member"},
		Roles:    staticRoles{"user_admin": auth.RoleAdmin, "user_member": auth.RoleMember},
	}, config, log)
}

func do(app *App, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, r)
	return rec
}

func TestRouter_HealthWithoutDatabase(t *testing.T) {
	app := newTestApp(t, "")

	rec := do(app, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_AccessGate(t *testing.T) {
	app := newTestApp(t, "")

	assert.Equal(t, http.StatusUnauthorized, do(app, http.MethodGet, "/api/admin/bookings", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(app, http.MethodGet, "/api/admin/bookings", "member-token", nil).Code)

	rec := do(app, http.MethodGet, "/admin", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sign-in?redirect_url=%2Fadmin", rec.Header().Get("Location"))
}

func TestRouter_AdminReachesHandler(t *testing.T) {
	app := newTestApp(t, "")

	// The gate lets the admin through; the missing database then surfaces as a generic 500.
	rec := do(app, http.MethodGet, "/api/admin/dashboard?timeRange=week", "admin-token", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal server error"}`, rec.Body.String())
}

func TestRouter_Forwarding(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/verteil/flight-price", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid offer","data":{"cache_key":"ck"}}`))
	}))
	defer backend.Close()

	app := newTestApp(t, backend.URL)

	rec := do(app, http.MethodPost, "/api/verteil/flight-price", "", strings.NewReader(`{"offerId":"X"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"error":"invalid offer",
		"data":{"cache_key":"ck"},
		"cache_key":"ck",
		"raw_response":{"error":"invalid offer","data":{"cache_key":"ck"}}
	}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, do(app, http.MethodPost, "/api/verteil/unknown-op", "", strings.NewReader(`{}`)).Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	app := newTestApp(t, "")
	do(app, http.MethodGet, "/api/health", "", nil)

	rec := do(app, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `flight_booking_http_requests_total{method="GET",route="/api/health",status="503"} 1`)
	assert.Contains(t, rec.Body.String(), "flight_booking_gate_decisions_total")
}
