package handler

import (
	"errors"
	"net/http"

	"github.com/clynicx/portal-service/internal/core/domain"
)

func (h *PageHandler) DoctorHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "doctor_home", h.doctor.Home())
}

func (h *PageHandler) DoctorPatients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, r, "doctor_patients", map[string]any{
		"patients": h.doctor.Patients(q.Get("q"), q.Get("filter")),
	})
}

func (h *PageHandler) DoctorPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, h.logger, http.StatusNotFound, "patient not found")
		return
	}

	profile, err := h.doctor.PatientProfile(id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		respondMessage(w, h.logger, http.StatusNotFound, "patient not found")
		return
	}
	h.render(w, r, "doctor_patient_profile", profile)
}

func (h *PageHandler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, r, "doctor_appointments", h.doctor.Appointments(q.Get("q"), q.Get("status")))
}
