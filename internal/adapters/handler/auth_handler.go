package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/adapters/metrics"
	"github.com/clynicx/portal-service/internal/adapters/middleware"
	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
	"github.com/clynicx/portal-service/internal/core/services"
)

type AuthHandler struct {
	authService ports.AuthService
	flashes     *Flashes
	validate    *validator.Validate
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewAuthHandler(auth ports.AuthService, flashes *Flashes, m *metrics.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: auth,
		flashes:     flashes,
		validate:    newValidator(),
		metrics:     m,
		logger:      logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type SignupRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Role             string `json:"role"`
	Phone            string `json:"phone"`
	Specialization   string `json:"specialization"`
	LicenseNumber    string `json:"license_number"`
	Experience       string `json:"experience"`
	DateOfBirth      string `json:"date_of_birth"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Home    string       `json:"home"`
}

type SessionResponse struct {
	State      string            `json:"state"`
	User       *domain.User      `json:"user,omitempty"`
	Home       string            `json:"home,omitempty"`
	Navigation []domain.NavEntry `json:"navigation,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.authService.Login(r.Context(), middleware.SessionFrom(r.Context()), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	h.metrics.AuthEvent("login", err)
	if err != nil {
		h.fail(w, r, "login", err)
		return
	}

	h.flashes.Success(w, r, "Welcome back, "+user.Name+"!")
	respondJSON(w, h.logger, http.StatusOK, AuthResponse{
		Message: "Login successful",
		User:    user,
		Home:    user.Role.Home(),
	})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.authService.Signup(r.Context(), middleware.SessionFrom(r.Context()), domain.SignupRequest{
		Email:            req.Email,
		Password:         req.Password,
		Name:             req.Name,
		Role:             req.Role,
		Phone:            req.Phone,
		Specialization:   req.Specialization,
		LicenseNumber:    req.LicenseNumber,
		Experience:       req.Experience,
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	h.metrics.AuthEvent("signup", err)
	if err != nil {
		h.fail(w, r, "signup", err)
		return
	}

	h.flashes.Success(w, r, "Account created successfully!")
	respondJSON(w, h.logger, http.StatusCreated, AuthResponse{
		Message: "Signup successful",
		User:    user,
		Home:    user.Role.Home(),
	})
}

// Logout is idempotent; clearing an empty slot succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.authService.Logout(r.Context(), middleware.SessionFrom(r.Context()))
	h.metrics.AuthEvent("logout", err)
	if err != nil {
		h.fail(w, r, "logout", err)
		return
	}

	h.flashes.Success(w, r, "You have been signed out.")
	respondMessage(w, h.logger, http.StatusOK, "Logout successful")
}

// Session reports the gate state of the calling origin.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	state, err := services.ResolveState(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		h.logger.Warn("session backend unavailable", zap.Error(err))
		w.Header().Set("Retry-After", "1")
		respondJSON(w, h.logger, http.StatusServiceUnavailable, SessionResponse{State: state.Phase.String()})
		return
	}

	resp := SessionResponse{State: state.Phase.String()}
	if state.User != nil {
		home := state.User.Role.Home()
		resp.User = state.User
		resp.Home = home
		resp.Navigation = domain.ResolveNavigation(state.User.Role, home)
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

// Flashes returns and clears queued toasts.
func (h *AuthHandler) Flashes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, map[string][]Toast{
		"flashes": h.flashes.Pop(w, r),
	})
}

func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, h.logger, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest, firstViolation(err))
		return false
	}
	return true
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondMessage(w, h.logger, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrEmailTaken):
		h.flashes.Error(w, r, "An account with this email already exists.")
		respondMessage(w, h.logger, http.StatusConflict, "email already registered")
	case errors.Is(err, domain.ErrSessionUnavailable):
		h.logger.Error(action+" failed", zap.Error(err))
		w.Header().Set("Retry-After", "1")
		respondMessage(w, h.logger, http.StatusServiceUnavailable, "session temporarily unavailable")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Info(action+" abandoned", zap.Error(err))
		respondMessage(w, h.logger, http.StatusServiceUnavailable, "request cancelled")
	default:
		h.logger.Error(action+" failed", zap.Error(err))
		respondMessage(w, h.logger, http.StatusInternalServerError, action+" failed")
	}
}
