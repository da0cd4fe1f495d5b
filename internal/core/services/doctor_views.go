package services

import (
	"time"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// Patient list filters.
const (
	PatientFilterToday    = "today"
	PatientFilterHighRisk = "high-risk"
	PatientFilterNew      = "new"
)

type DoctorHome struct {
	TodayStats        []domain.Stat  `json:"today_stats"`
	TodayAppointments []domain.Visit `json:"today_appointments"`
	CriticalAlerts    []domain.Alert `json:"critical_alerts"`
}

type VisitCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

type DoctorAppointments struct {
	Appointments []domain.Visit `json:"appointments"`
	Counts       VisitCounts    `json:"counts"`
}

// DoctorViews derives the doctor dashboard pages from the catalog.
type DoctorViews struct {
	catalog ports.ClinicalCatalog
	now     func() time.Time
}

func NewDoctorViews(catalog ports.ClinicalCatalog, now func() time.Time) *DoctorViews {
	if now == nil {
		now = time.Now
	}
	return &DoctorViews{catalog: catalog, now: now}
}

func (v *DoctorViews) Home() DoctorHome {
	return DoctorHome{
		TodayStats:        v.catalog.DoctorStats(),
		TodayAppointments: v.catalog.TodayVisits(),
		CriticalAlerts:    v.catalog.Alerts(),
	}
}

// Patients matches query against name and condition. An unrecognised
// filter applies the search alone.
func (v *DoctorViews) Patients(query, filter string) []domain.PatientSummary {
	today := v.now().Format(time.DateOnly)
	return filterItems(v.catalog.Patients(), func(p domain.PatientSummary) bool {
		if !matchesSearch(query, p.Name, p.Condition) {
			return false
		}
		switch filter {
		case PatientFilterToday:
			return p.NextAppointment == today
		case PatientFilterHighRisk:
			return p.RiskLevel == domain.RiskHigh
		case PatientFilterNew:
			return p.Status == domain.PatientNew
		}
		return true
	})
}

func (v *DoctorViews) PatientProfile(id int) (domain.PatientProfile, error) {
	for _, p := range v.catalog.Patients() {
		if p.ID == id {
			profile := v.catalog.PatientDetail()
			profile.PatientSummary = p
			return profile, nil
		}
	}
	return domain.PatientProfile{}, domain.ErrRecordNotFound
}

// Appointments filters the schedule; counts always cover the whole day.
func (v *DoctorViews) Appointments(query, status string) DoctorAppointments {
	all := v.catalog.Visits()

	var counts VisitCounts
	for _, a := range all {
		switch a.Status {
		case domain.AppointmentConfirmed:
			counts.Confirmed++
		case domain.AppointmentPending:
			counts.Pending++
		case domain.AppointmentCancelled:
			counts.Cancelled++
		}
	}

	return DoctorAppointments{
		Appointments: filterItems(all, func(a domain.Visit) bool {
			return matchesSearch(query, a.Patient, a.Condition) && matchesStatus(status, string(a.Status))
		}),
		Counts: counts,
	}
}
