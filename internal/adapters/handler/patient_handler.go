package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/core/domain"
)

func (h *PageHandler) PatientHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "patient_home", h.patient.Home())
}

func (h *PageHandler) PatientAppointments(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "patient_appointments", h.patient.Appointments(r.URL.Query().Get("status")))
}

func (h *PageHandler) PatientReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, r, "patient_reports", map[string]any{
		"reports": h.patient.Reports(q.Get("q"), q.Get("status")),
	})
}

// PatientReportFile redirects to a short-lived download link.
func (h *PageHandler) PatientReportFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondMessage(w, h.logger, http.StatusNotFound, "report not found")
		return
	}

	url, err := h.patient.ReportDownloadURL(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		respondMessage(w, h.logger, http.StatusNotFound, "report not found")
	case errors.Is(err, domain.ErrStorageDisabled):
		respondMessage(w, h.logger, http.StatusNotFound, "report file not available")
	case err != nil:
		h.logger.Error("failed to presign report", zap.Int("report_id", id), zap.Error(err))
		respondMessage(w, h.logger, http.StatusBadGateway, "report file temporarily unavailable")
	default:
		http.Redirect(w, r, url, http.StatusFound)
	}
}

func (h *PageHandler) PatientPrescriptions(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "patient_prescriptions", h.patient.Prescriptions(r.URL.Query().Get("q")))
}

func (h *PageHandler) PatientTimeline(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, r, "patient_timeline", h.patient.Timeline(q.Get("metric"), q.Get("range")))
}
