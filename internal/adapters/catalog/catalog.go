// Package catalog serves the fixed sample datasets shown on the patient
// and doctor dashboards.
package catalog

import (
	"maps"
	"slices"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// Catalog is read-only; every accessor returns a fresh copy.
type Catalog struct{}

var _ ports.ClinicalCatalog = (*Catalog)(nil)

func New() *Catalog {
	return &Catalog{}
}

func (c *Catalog) UpcomingAppointments() []domain.Appointment {
	return slices.Clone(upcomingAppointments)
}

func (c *Catalog) PatientAppointments() []domain.Appointment {
	return slices.Clone(patientAppointments)
}

func (c *Catalog) Insights() []domain.Insight { return slices.Clone(insights) }
func (c *Catalog) PatientStats() []domain.Stat { return slices.Clone(patientStats) }
func (c *Catalog) Doctors() []domain.DoctorOption { return slices.Clone(doctors) }
func (c *Catalog) TimeSlots() []string { return slices.Clone(timeSlots) }

func (c *Catalog) Prescriptions() []domain.Prescription {
	out := slices.Clone(prescriptions)
	for i := range out {
		out[i].SideEffects = slices.Clone(out[i].SideEffects)
	}
	return out
}

func (c *Catalog) Reports() []domain.Report {
	out := slices.Clone(reports)
	for i := range out {
		out[i].AbnormalValues = slices.Clone(out[i].AbnormalValues)
	}
	return out
}

func (c *Catalog) HealthMetrics() []domain.HealthMetric {
	out := slices.Clone(healthMetrics)
	for i := range out {
		out[i].Data = slices.Clone(out[i].Data)
	}
	return out
}

func (c *Catalog) HealthEvents() []domain.HealthEvent { return slices.Clone(healthEvents) }
func (c *Catalog) Predictions() []domain.Prediction { return slices.Clone(predictions) }

func (c *Catalog) DoctorStats() []domain.Stat { return slices.Clone(doctorStats) }
func (c *Catalog) TodayVisits() []domain.Visit { return slices.Clone(todayVisits) }
func (c *Catalog) Visits() []domain.Visit { return slices.Clone(visits) }
func (c *Catalog) Alerts() []domain.Alert { return slices.Clone(alerts) }

func (c *Catalog) Patients() []domain.PatientSummary {
	out := slices.Clone(patients)
	for i := range out {
		out[i].Indicators = maps.Clone(out[i].Indicators)
	}
	return out
}

func (c *Catalog) PatientDetail() domain.PatientProfile {
	d := patientDetail
	d.Allergies = slices.Clone(d.Allergies)
	d.ChronicConditions = slices.Clone(d.ChronicConditions)
	d.History = slices.Clone(d.History)
	d.Reports = slices.Clone(d.Reports)
	d.Prescriptions = slices.Clone(d.Prescriptions)
	d.Vitals = slices.Clone(d.Vitals)
	return d
}
