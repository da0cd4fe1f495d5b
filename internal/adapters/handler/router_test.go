package handler_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/clynicx/portal-service/internal/adapters/catalog"
	"github.com/clynicx/portal-service/internal/adapters/handler"
	"github.com/clynicx/portal-service/internal/adapters/metrics"
	"github.com/clynicx/portal-service/internal/adapters/middleware"
	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
	"github.com/clynicx/portal-service/internal/core/services"
	"github.com/clynicx/portal-service/internal/testutil/mocks"
)

type portal struct {
	server    *httptest.Server
	slots     *mocks.MockSlotStore
	directory *mocks.MockProfileDirectory
}

type testStorage struct{}

func (testStorage) PresignReport(_ context.Context, key string) (string, error) {
	return "https://files.example/" + key, nil
}

func newPortal(t *testing.T, storage ports.ReportStorage) *portal {
	t.Helper()
	return newLimitedPortal(t, storage, 0)
}

func newLimitedPortal(t *testing.T, storage ports.ReportStorage, authRateLimit int) *portal {
	t.Helper()
	logger := zaptest.NewLogger(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	slots := mocks.NewMockSlotStore()
	directory := mocks.NewMockProfileDirectory()
	m := metrics.New()
	clinical := catalog.New()

	authService := services.NewAuthService(directory, 0, services.InferFromEmail, logger)
	clock := func() time.Time { return time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC) }

	router := handler.NewRouter(handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService, handler.NewFlashes("test-secret", false, logger), m, logger),
		Pages:         handler.NewPageHandler(services.NewPatientViews(clinical, storage), services.NewDoctorViews(clinical, clock), logger),
		Health:        handler.NewHealthHandler(slots, directory, "test", logger),
		Slots:         slots,
		OriginTokens:  middleware.NewOriginTokens(key, &key.PublicKey),
		AuthRateLimit: authRateLimit,
		Metrics:       m,
		Logger:        logger,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &portal{server: server, slots: slots, directory: directory}
}

// browser is a client with its own origin cookie that does not follow
// redirects.
func (p *portal) browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (p *portal) get(t *testing.T, c *http.Client, path string) *http.Response {
	t.Helper()
	resp, err := c.Get(p.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (p *portal) post(t *testing.T, c *http.Client, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := c.Post(p.server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, location, resp.Header.Get("Location"))
}

func TestPortal_AnonymousIsSentToLogin(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	for _, path := range []string{"/", "/patient", "/patient/reports", "/doctor", "/doctor/patients/2"} {
		assertRedirect(t, p.get(t, c, path), "/login")
	}

	resp := p.get(t, c, "/login")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[handler.PageResponse](t, resp)
	assert.Equal(t, "login", page.Page)
	assert.Nil(t, page.User)
	assert.Empty(t, page.Navigation)
}

func TestPortal_DoctorLoginFlow(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	resp := p.post(t, c, "/api/auth/login", map[string]string{
		"email":    "someone@doctor.example",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := decode[handler.AuthResponse](t, resp)
	assert.Equal(t, domain.RoleDoctor, auth.User.Role)
	assert.Equal(t, "/doctor", auth.Home)

	assertRedirect(t, p.get(t, c, "/login"), "/doctor")
	assertRedirect(t, p.get(t, c, "/signup"), "/doctor")
	assertRedirect(t, p.get(t, c, "/"), "/doctor")
	assertRedirect(t, p.get(t, c, "/patient"), "/login")
	assertRedirect(t, p.get(t, c, "/doctor/nope"), "/doctor")

	resp = p.get(t, c, "/doctor/patients?filter=today")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[struct {
		Page       string            `json:"page"`
		User       domain.User       `json:"user"`
		Navigation []domain.NavEntry `json:"navigation"`
		Data       struct {
			Patients []domain.PatientSummary `json:"patients"`
		} `json:"data"`
	}](t, resp)
	assert.Equal(t, "doctor_patients", page.Page)
	assert.Equal(t, "Dr. Smith", page.User.Name)
	require.Len(t, page.Data.Patients, 1)
	assert.Equal(t, "John Smith", page.Data.Patients[0].Name)

	active := []string{}
	for _, n := range page.Navigation {
		if n.Active {
			active = append(active, n.Path)
		}
	}
	assert.Equal(t, []string{"/doctor/patients"}, active)
}

func TestPortal_PatientCannotReachDoctorPages(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	resp := p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assertRedirect(t, p.get(t, c, "/doctor"), "/login")
	assertRedirect(t, p.get(t, c, "/doctor/appointments"), "/login")
	assert.Equal(t, http.StatusOK, p.get(t, c, "/patient/timeline?metric=weight").StatusCode)
}

func TestPortal_OriginsDoNotShareSessions(t *testing.T) {
	p := newPortal(t, nil)
	alice, bob := p.browser(t), p.browser(t)

	p.post(t, alice, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})

	assert.Equal(t, http.StatusOK, p.get(t, alice, "/patient").StatusCode)
	assertRedirect(t, p.get(t, bob, "/patient"), "/login")
}

func TestPortal_Logout(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})
	resp := p.post(t, c, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assertRedirect(t, p.get(t, c, "/patient"), "/login")

	session := decode[handler.SessionResponse](t, p.get(t, c, "/api/session"))
	assert.Equal(t, "anonymous", session.State)

	// Idempotent.
	assert.Equal(t, http.StatusOK, p.post(t, c, "/api/auth/logout", nil).StatusCode)
}

func TestPortal_Signup(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	resp := p.post(t, c, "/api/auth/signup", map[string]string{
		"email":    "new.doc@clinic.example",
		"password": "pw",
		"name":     "Dr. New",
		"role":     "Doctor",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	auth := decode[handler.AuthResponse](t, resp)
	assert.Equal(t, "General Medicine", auth.User.Specialization)
	assert.Equal(t, "/doctor", auth.Home)
	assert.Len(t, p.directory.OutboxPayloads, 1)

	assertRedirect(t, p.get(t, c, "/signup"), "/doctor")

	// Logging in with the registered email returns the stored profile.
	other := p.browser(t)
	resp = p.post(t, other, "/api/auth/login", map[string]string{"email": "new.doc@clinic.example", "password": "x", "role": "Doctor"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dr. New", decode[handler.AuthResponse](t, resp).User.Name)

	resp = p.post(t, p.browser(t), "/api/auth/signup", map[string]string{
		"email": "new.doc@clinic.example", "password": "pw", "name": "Again",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPortal_Validation(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	tests := []struct {
		path  string
		body  map[string]string
		field string
	}{
		{"/api/auth/login", map[string]string{"password": "pw"}, "email"},
		{"/api/auth/login", map[string]string{"email": "not-an-email", "password": "pw"}, "email"},
		{"/api/auth/login", map[string]string{"email": "a@b.co"}, "password"},
		{"/api/auth/signup", map[string]string{"email": "a@b.co", "password": "pw"}, "name"},
	}

	for _, tt := range tests {
		resp := p.post(t, c, tt.path, tt.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, tt.field, decode[handler.MessageResponse](t, resp).Field)
	}

	resp, err := c.Post(p.server.URL+"/api/auth/login", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPortal_SessionEndpoint(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	session := decode[handler.SessionResponse](t, p.get(t, c, "/api/session"))
	assert.Equal(t, "anonymous", session.State)
	assert.Nil(t, session.User)

	p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})

	session = decode[handler.SessionResponse](t, p.get(t, c, "/api/session"))
	assert.Equal(t, "authenticated", session.State)
	assert.Equal(t, "/patient", session.Home)
	assert.Len(t, session.Navigation, 5)
	assert.True(t, session.Navigation[0].Active)

	p.slots.GetError = errors.New("redis down")
	resp := p.get(t, c, "/api/session")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "loading", decode[handler.SessionResponse](t, resp).State)
}

func TestPortal_LoadingWhileBackendDown(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})
	p.slots.GetError = errors.New("redis down")

	resp := p.get(t, c, "/patient")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	p.slots.SetError = errors.New("redis down")
	resp = p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPortal_Flashes(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})

	flashes := decode[map[string][]handler.Toast](t, p.get(t, c, "/api/flashes"))
	require.Len(t, flashes["flashes"], 1)
	assert.Equal(t, handler.Toast{Kind: "success", Message: "Welcome back, John Doe!"}, flashes["flashes"][0])

	flashes = decode[map[string][]handler.Toast](t, p.get(t, c, "/api/flashes"))
	assert.Empty(t, flashes["flashes"], "flashes are consumed on read")
}

func TestPortal_DoctorPatientProfile(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)
	p.post(t, c, "/api/auth/login", map[string]string{"email": "x@example.com", "password": "pw", "role": "Doctor"})

	resp := p.get(t, c, "/doctor/patients/3")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[struct {
		Data domain.PatientProfile `json:"data"`
	}](t, resp)
	assert.Equal(t, "Michael Chen", page.Data.Name)
	assert.Equal(t, "O+", page.Data.BloodType)

	assert.Equal(t, http.StatusNotFound, p.get(t, c, "/doctor/patients/42").StatusCode)
	assertRedirect(t, p.get(t, c, "/doctor/patients/abc"), "/doctor")
}

func TestPortal_ReportFile(t *testing.T) {
	t.Run("with storage", func(t *testing.T) {
		p := newPortal(t, testStorage{})
		c := p.browser(t)
		p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})

		resp := p.get(t, c, "/patient/reports/2/file")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://files.example/reports/2024-01-05-chest-xray.pdf", resp.Header.Get("Location"))

		assert.Equal(t, http.StatusNotFound, p.get(t, c, "/patient/reports/3/file").StatusCode)
	})

	t.Run("without storage", func(t *testing.T) {
		p := newPortal(t, nil)
		c := p.browser(t)
		p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})

		assert.Equal(t, http.StatusNotFound, p.get(t, c, "/patient/reports/1/file").StatusCode)
	})
}

func TestPortal_OperationalEndpoints(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	resp := p.get(t, c, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Cookies(), "probes do not mint origins")

	assert.Equal(t, http.StatusOK, p.get(t, c, "/health/ready").StatusCode)
	assert.Equal(t, http.StatusOK, p.get(t, c, "/metrics").StatusCode)
	assert.Equal(t, http.StatusNotFound, p.get(t, c, "/api/unknown").StatusCode)
}

func TestPortal_AuthRateLimit(t *testing.T) {
	p := newLimitedPortal(t, nil, 2)
	c := p.browser(t)
	creds := map[string]string{"email": "patient@example.com", "password": "pw"}

	assert.Equal(t, http.StatusOK, p.post(t, c, "/api/auth/login", creds).StatusCode)
	assert.Equal(t, http.StatusOK, p.post(t, c, "/api/auth/login", creds).StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, p.post(t, c, "/api/auth/login", creds).StatusCode)

	// Pages are not limited.
	assert.Equal(t, http.StatusOK, p.get(t, c, "/patient").StatusCode)
}

func TestPortal_TrailingSlashReachesPage(t *testing.T) {
	p := newPortal(t, nil)
	c := p.browser(t)

	assertRedirect(t, p.get(t, c, "/login/"), "/login")

	p.post(t, c, "/api/auth/login", map[string]string{"email": "patient@example.com", "password": "pw"})
	assertRedirect(t, p.get(t, c, "/patient/"), "/patient")
	assertRedirect(t, p.get(t, c, "/patient/reports/?status=reviewed"), "/patient/reports?status=reviewed")
	assert.Equal(t, http.StatusOK, p.get(t, c, "/patient").StatusCode)
}
