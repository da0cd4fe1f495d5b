package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/adapters/middleware"
	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/services"
)

// PageResponse is the view model of every portal page.
type PageResponse struct {
	Page       string            `json:"page"`
	User       *domain.User      `json:"user,omitempty"`
	Navigation []domain.NavEntry `json:"navigation,omitempty"`
	Data       any               `json:"data"`
}

type FormField struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Label    string        `json:"label"`
	Required bool          `json:"required,omitempty"`
	Roles    []domain.Role `json:"roles,omitempty"`
}

type FormDescriptor struct {
	Action string        `json:"action"`
	Roles  []domain.Role `json:"roles"`
	Fields []FormField   `json:"fields"`
}

var portalRoles = []domain.Role{domain.RolePatient, domain.RoleDoctor}

var loginForm = FormDescriptor{
	Action: "/api/auth/login",
	Roles:  portalRoles,
	Fields: []FormField{
		{Name: "email", Type: "email", Label: "Email address", Required: true},
		{Name: "password", Type: "password", Label: "Password", Required: true},
		{Name: "role", Type: "select", Label: "Sign in as"},
	},
}

var signupForm = FormDescriptor{
	Action: "/api/auth/signup",
	Roles:  portalRoles,
	Fields: []FormField{
		{Name: "name", Type: "text", Label: "Full name", Required: true},
		{Name: "email", Type: "email", Label: "Email address", Required: true},
		{Name: "password", Type: "password", Label: "Password", Required: true},
		{Name: "role", Type: "select", Label: "I am a"},
		{Name: "phone", Type: "tel", Label: "Phone number"},
		{Name: "specialization", Type: "text", Label: "Specialization", Roles: []domain.Role{domain.RoleDoctor}},
		{Name: "license_number", Type: "text", Label: "License number", Roles: []domain.Role{domain.RoleDoctor}},
		{Name: "experience", Type: "text", Label: "Years of experience", Roles: []domain.Role{domain.RoleDoctor}},
		{Name: "date_of_birth", Type: "date", Label: "Date of birth", Roles: []domain.Role{domain.RolePatient}},
		{Name: "address", Type: "text", Label: "Address", Roles: []domain.Role{domain.RolePatient}},
		{Name: "emergency_contact", Type: "text", Label: "Emergency contact", Roles: []domain.Role{domain.RolePatient}},
	},
}

// PageHandler serves the portal pages. Every route sits behind the gate,
// so a rendered page always has the state it needs.
type PageHandler struct {
	patient *services.PatientViews
	doctor  *services.DoctorViews
	logger  *zap.Logger
}

func NewPageHandler(patient *services.PatientViews, doctor *services.DoctorViews, logger *zap.Logger) *PageHandler {
	return &PageHandler{patient: patient, doctor: doctor, logger: logger}
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", loginForm)
}

func (h *PageHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup", signupForm)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	resp := PageResponse{Page: page, Data: data}
	if state, ok := middleware.GateStateFrom(r.Context()); ok && state.User != nil {
		resp.User = state.User
		resp.Navigation = domain.ResolveNavigation(state.User.Role, r.URL.Path)
	}
	respondJSON(w, h.logger, http.StatusOK, resp)
}

// pathID reads a positive numeric path parameter.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	return id, err == nil && id > 0
}
