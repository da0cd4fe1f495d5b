package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/adapters/metrics"
	"github.com/clynicx/portal-service/internal/adapters/middleware"
	"github.com/clynicx/portal-service/internal/core/ports"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Pages         *PageHandler
	Health        *HealthHandler
	Slots         ports.SlotStore
	OriginTokens  *middleware.OriginTokens
	SecureCookie  bool
	AuthRateLimit int
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
}

// NewRouter wires every route behind origin identification, request
// logging and the auth gate. Health and metrics stay outside so probes
// do not mint origins.
func NewRouter(d RouterDeps) http.Handler {
	portal := http.NewServeMux()

	// Pages
	portal.HandleFunc("GET /login", d.Pages.Login)
	portal.HandleFunc("GET /signup", d.Pages.Signup)

	portal.HandleFunc("GET /patient", d.Pages.PatientHome)
	portal.HandleFunc("GET /patient/appointments", d.Pages.PatientAppointments)
	portal.HandleFunc("GET /patient/reports", d.Pages.PatientReports)
	portal.HandleFunc("GET /patient/reports/{id}/file", d.Pages.PatientReportFile)
	portal.HandleFunc("GET /patient/prescriptions", d.Pages.PatientPrescriptions)
	portal.HandleFunc("GET /patient/timeline", d.Pages.PatientTimeline)

	portal.HandleFunc("GET /doctor", d.Pages.DoctorHome)
	portal.HandleFunc("GET /doctor/patients", d.Pages.DoctorPatients)
	portal.HandleFunc("GET /doctor/patients/{id}", d.Pages.DoctorPatient)
	portal.HandleFunc("GET /doctor/appointments", d.Pages.DoctorAppointments)

	// API endpoints
	limit := authLimiter(d.AuthRateLimit)
	portal.Handle("POST /api/auth/login", limit(http.HandlerFunc(d.Auth.Login)))
	portal.Handle("POST /api/auth/signup", limit(http.HandlerFunc(d.Auth.Signup)))
	portal.Handle("POST /api/auth/logout", limit(http.HandlerFunc(d.Auth.Logout)))
	portal.HandleFunc("GET /api/session", d.Auth.Session)
	portal.HandleFunc("GET /api/flashes", d.Auth.Flashes)

	gate := middleware.NewGate(d.Slots, d.Metrics, d.Logger)
	var portalHandler http.Handler = gate.Handler(portal)
	portalHandler = middleware.RequestLogger(d.Logger, d.Metrics)(portalHandler)
	portalHandler = middleware.Origin(d.OriginTokens, d.SecureCookie, d.Logger)(portalHandler)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.HandleFunc("GET /health/live", d.Health.Live)
	mux.HandleFunc("GET /health/ready", d.Health.Ready)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	mux.Handle("/", portalHandler)
	return mux
}

// authLimiter caps auth calls per client IP per minute. Zero disables it.
func authLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(perMinute, time.Minute)
}
