package ports

import (
	"context"

	"github.com/clynicx/portal-service/internal/core/domain"
)

// ProfileDirectory holds profiles created through signup.
type ProfileDirectory interface {
	// FindByEmail returns domain.ErrProfileNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// CreateProfile stores the profile and its outbox event atomically.
	// It returns domain.ErrEmailTaken when the email is registered.
	CreateProfile(ctx context.Context, user domain.User, outboxPayload []byte) error
	Ping(ctx context.Context) error
}

// ClinicalCatalog serves the literal datasets behind the dashboards.
type ClinicalCatalog interface {
	UpcomingAppointments() []domain.Appointment
	PatientAppointments() []domain.Appointment
	Insights() []domain.Insight
	PatientStats() []domain.Stat
	Doctors() []domain.DoctorOption
	TimeSlots() []string
	Prescriptions() []domain.Prescription
	Reports() []domain.Report
	HealthMetrics() []domain.HealthMetric
	HealthEvents() []domain.HealthEvent
	Predictions() []domain.Prediction

	DoctorStats() []domain.Stat
	TodayVisits() []domain.Visit
	Visits() []domain.Visit
	Alerts() []domain.Alert
	Patients() []domain.PatientSummary
	// PatientDetail returns the chart shared by every profile page; the
	// summary fields are filled in by the caller.
	PatientDetail() domain.PatientProfile
}

// ReportStorage hands out short-lived download links for report files.
type ReportStorage interface {
	PresignReport(ctx context.Context, objectKey string) (string, error)
}
