package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clynicx/portal-service/internal/adapters/catalog"
	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/services"
)

func fixedClock(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse(time.DateOnly, date)
		return t.Add(9 * time.Hour)
	}
}

func TestDoctorViews_Home(t *testing.T) {
	home := services.NewDoctorViews(catalog.New(), nil).Home()

	assert.Len(t, home.TodayStats, 4)
	assert.Len(t, home.TodayAppointments, 4)
	assert.Len(t, home.CriticalAlerts, 2)
}

func TestDoctorViews_Patients(t *testing.T) {
	views := services.NewDoctorViews(catalog.New(), fixedClock("2024-01-20"))

	tests := []struct {
		name   string
		query  string
		filter string
		want   []string
	}{
		{"all", "", "all", []string{"John Smith", "Sarah Johnson", "Michael Chen", "Emily Davis", "Robert Wilson"}},
		{"name search", "smith", "", []string{"John Smith"}},
		{"condition search", "DIABETES", "", []string{"Sarah Johnson"}},
		{"high risk", "", "high-risk", []string{"Sarah Johnson", "Michael Chen"}},
		{"new", "", "new", []string{"Michael Chen"}},
		{"today", "", "today", []string{"John Smith"}},
		{"search within filter", "chen", "high-risk", []string{"Michael Chen"}},
		{"unknown filter applies search only", "emily", "vip", []string{"Emily Davis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{}
			for _, p := range views.Patients(tt.query, tt.filter) {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDoctorViews_Patients_TodayFollowsClock(t *testing.T) {
	views := services.NewDoctorViews(catalog.New(), fixedClock("2024-01-22"))

	patients := views.Patients("", services.PatientFilterToday)

	require.Len(t, patients, 1)
	assert.Equal(t, "Emily Davis", patients[0].Name)
}

func TestDoctorViews_PatientProfile(t *testing.T) {
	views := services.NewDoctorViews(catalog.New(), nil)

	profile, err := views.PatientProfile(2)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", profile.Name)
	assert.NotEmpty(t, profile.History)
	assert.NotEmpty(t, profile.Vitals)

	_, err = views.PatientProfile(42)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestDoctorViews_Appointments(t *testing.T) {
	views := services.NewDoctorViews(catalog.New(), nil)

	all := views.Appointments("", "")
	assert.Len(t, all.Appointments, 7)
	assert.Equal(t, services.VisitCounts{Confirmed: 4, Pending: 1, Cancelled: 1}, all.Counts)

	confirmed := views.Appointments("", "confirmed")
	assert.Len(t, confirmed.Appointments, 4)
	assert.Equal(t, all.Counts, confirmed.Counts, "counts cover the whole schedule")

	search := views.Appointments("pain", "")
	names := []string{}
	for _, a := range search.Appointments {
		names = append(names, a.Patient)
	}
	assert.Equal(t, []string{"Michael Chen", "David Miller"}, names)
}
