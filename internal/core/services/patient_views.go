package services

import (
	"context"
	"strconv"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

const (
	DefaultTimelineMetric = "blood_pressure"
	DefaultTimelineRange  = "6months"
)

var timelineRanges = map[string]bool{
	"1month":  true,
	"3months": true,
	"6months": true,
	"1year":   true,
}

type PatientHome struct {
	UpcomingAppointments []domain.Appointment `json:"upcoming_appointments"`
	Insights             []domain.Insight     `json:"insights"`
	QuickStats           []domain.Stat        `json:"quick_stats"`
}

type PatientAppointments struct {
	Appointments []domain.Appointment  `json:"appointments"`
	Doctors      []domain.DoctorOption `json:"doctors"`
	TimeSlots    []string              `json:"time_slots"`
}

type PrescriptionGroups struct {
	Active    []domain.Prescription `json:"active"`
	Completed []domain.Prescription `json:"completed"`
}

type Timeline struct {
	Metric      domain.HealthMetric  `json:"metric"`
	Latest      *domain.MetricPoint  `json:"latest,omitempty"`
	Trend       string               `json:"trend,omitempty"`
	Metrics     []string             `json:"metrics"`
	Range       string               `json:"range"`
	Events      []domain.HealthEvent `json:"events"`
	Predictions []domain.Prediction  `json:"predictions"`
}

// PatientViews derives the patient dashboard pages from the catalog.
type PatientViews struct {
	catalog ports.ClinicalCatalog
	storage ports.ReportStorage
}

// NewPatientViews accepts a nil storage; report downloads then report
// domain.ErrStorageDisabled.
func NewPatientViews(catalog ports.ClinicalCatalog, storage ports.ReportStorage) *PatientViews {
	return &PatientViews{catalog: catalog, storage: storage}
}

func (v *PatientViews) Home() PatientHome {
	return PatientHome{
		UpcomingAppointments: v.catalog.UpcomingAppointments(),
		Insights:             v.catalog.Insights(),
		QuickStats:           v.catalog.PatientStats(),
	}
}

func (v *PatientViews) Appointments(status string) PatientAppointments {
	appts := filterItems(v.catalog.PatientAppointments(), func(a domain.Appointment) bool {
		return matchesStatus(status, string(a.Status))
	})
	return PatientAppointments{
		Appointments: appts,
		Doctors:      v.catalog.Doctors(),
		TimeSlots:    v.catalog.TimeSlots(),
	}
}

// Reports matches query against title and type.
func (v *PatientViews) Reports(query, status string) []domain.Report {
	return filterItems(v.catalog.Reports(), func(r domain.Report) bool {
		return matchesSearch(query, r.Title, r.Type) && matchesStatus(status, string(r.Status))
	})
}

// ReportDownloadURL returns a presigned link to the report's document.
func (v *PatientViews) ReportDownloadURL(ctx context.Context, id int) (string, error) {
	for _, r := range v.catalog.Reports() {
		if r.ID != id {
			continue
		}
		if r.FileKey == "" {
			return "", domain.ErrRecordNotFound
		}
		if v.storage == nil {
			return "", domain.ErrStorageDisabled
		}
		return v.storage.PresignReport(ctx, r.FileKey)
	}
	return "", domain.ErrRecordNotFound
}

// Prescriptions splits matching prescriptions into active and completed.
// Expired prescriptions appear in neither group.
func (v *PatientViews) Prescriptions(query string) PrescriptionGroups {
	groups := PrescriptionGroups{
		Active:    []domain.Prescription{},
		Completed: []domain.Prescription{},
	}
	for _, p := range v.catalog.Prescriptions() {
		if !matchesSearch(query, p.Medication) {
			continue
		}
		switch p.Status {
		case domain.PrescriptionActive:
			groups.Active = append(groups.Active, p)
		case domain.PrescriptionCompleted:
			groups.Completed = append(groups.Completed, p)
		}
	}
	return groups
}

// Timeline selects one metric series. Unknown metrics and ranges fall
// back to the defaults.
func (v *PatientViews) Timeline(metric, timeRange string) Timeline {
	metrics := v.catalog.HealthMetrics()

	keys := make([]string, 0, len(metrics))
	var selected, fallback domain.HealthMetric
	found := false
	for _, m := range metrics {
		keys = append(keys, m.Key)
		if m.Key == DefaultTimelineMetric {
			fallback = m
		}
		if m.Key == metric {
			selected = m
			found = true
		}
	}
	if !found {
		selected = fallback
	}

	if !timelineRanges[timeRange] {
		timeRange = DefaultTimelineRange
	}

	tl := Timeline{
		Metric:      selected,
		Metrics:     keys,
		Range:       timeRange,
		Events:      v.catalog.HealthEvents(),
		Predictions: v.catalog.Predictions(),
	}
	if n := len(selected.Data); n > 0 {
		latest := selected.Data[n-1]
		tl.Latest = &latest
		if n > 1 {
			tl.Trend = metricTrend(selected.Key, selected.Data[n-2], latest)
		}
	}
	return tl
}

// Trends compare systolic pressure for blood pressure and the numeric
// value otherwise. Unparseable values yield no trend.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

func metricTrend(key string, previous, current domain.MetricPoint) string {
	prev, cur := float64(previous.Systolic), float64(current.Systolic)
	if key != DefaultTimelineMetric {
		var err error
		if prev, err = strconv.ParseFloat(previous.Value, 64); err != nil {
			return ""
		}
		if cur, err = strconv.ParseFloat(current.Value, 64); err != nil {
			return ""
		}
	}
	switch {
	case cur > prev:
		return TrendUp
	case cur < prev:
		return TrendDown
	}
	return TrendStable
}
