package catalog

import "github.com/clynicx/portal-service/internal/core/domain"

var upcomingAppointments = []domain.Appointment{
	{ID: 1, Doctor: "Dr. Sarah Johnson", Specialty: "Cardiology", Date: "2024-01-15", Time: "10:00 AM", Type: "Follow-up"},
	{ID: 2, Doctor: "Dr. Michael Chen", Specialty: "General Medicine", Date: "2024-01-18", Time: "2:30 PM", Type: "Check-up"},
}

var patientAppointments = []domain.Appointment{
	{
		ID:        1,
		Doctor:    "Dr. Sarah Johnson",
		Specialty: "Cardiology",
		Date:      "2024-01-15",
		Time:      "10:00 AM",
		Status:    domain.AppointmentConfirmed,
		Location:  "Cardiology Wing, Room 302",
		Phone:     "+1 (555) 123-4567",
		Reason:    "Follow-up consultation",
	},
	{
		ID:        2,
		Doctor:    "Dr. Michael Chen",
		Specialty: "General Medicine",
		Date:      "2024-01-18",
		Time:      "2:30 PM",
		Status:    domain.AppointmentPending,
		Location:  "General Medicine, Room 105",
		Phone:     "+1 (555) 987-6543",
		Reason:    "Annual check-up",
	},
	{
		ID:        3,
		Doctor:    "Dr. Emily Davis",
		Specialty: "Dermatology",
		Date:      "2024-01-22",
		Time:      "11:15 AM",
		Status:    domain.AppointmentConfirmed,
		Location:  "Dermatology Clinic, Room 201",
		Phone:     "+1 (555) 456-7890",
		Reason:    "Skin examination",
	},
}

var doctors = []domain.DoctorOption{
	{Name: "Dr. Sarah Johnson", Specialty: "Cardiology"},
	{Name: "Dr. Michael Chen", Specialty: "General Medicine"},
	{Name: "Dr. Emily Davis", Specialty: "Dermatology"},
	{Name: "Dr. James Wilson", Specialty: "Orthopedics"},
}

var timeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
}

var insights = []domain.Insight{
	{Title: "Blood Pressure Trend", Message: "Your blood pressure has been stable over the last month.", Type: "positive"},
	{Title: "Medication Reminder", Message: "Remember to take your evening medication at 8 PM.", Type: "reminder"},
	{Title: "Lab Results", Message: "New lab results are available for review.", Type: "info"},
}

var patientStats = []domain.Stat{
	{Title: "Upcoming Appointments", Value: "2", Icon: "Calendar"},
	{Title: "Active Prescriptions", Value: "4", Icon: "Pill"},
	{Title: "Recent Reports", Value: "3", Icon: "FileText"},
	{Title: "Health Score", Value: "85%", Icon: "Heart"},
}

var prescriptions = []domain.Prescription{
	{
		ID:               1,
		Medication:       "Lisinopril",
		Dosage:           "10mg",
		Frequency:        "Once daily",
		Duration:         "30 days",
		Doctor:           "Dr. Sarah Johnson",
		DateIssued:       "2024-01-10",
		Instructions:     "Take with food. Avoid alcohol.",
		Status:           domain.PrescriptionActive,
		RemainingDays:    22,
		RefillsRemaining: 2,
		NextDose:         "8:00 AM",
		SideEffects:      []string{"Dizziness", "Dry cough"},
		RemindersEnabled: true,
	},
	{
		ID:               2,
		Medication:       "Metformin",
		Dosage:           "500mg",
		Frequency:        "Twice daily",
		Duration:         "60 days",
		Doctor:           "Dr. Michael Chen",
		DateIssued:       "2024-01-08",
		Instructions:     "Take with meals. Monitor blood sugar levels.",
		Status:           domain.PrescriptionActive,
		RemainingDays:    45,
		RefillsRemaining: 1,
		NextDose:         "7:00 AM, 7:00 PM",
		SideEffects:      []string{"Nausea", "Stomach upset"},
	},
	{
		ID:           3,
		Medication:   "Vitamin D3",
		Dosage:       "1000 IU",
		Frequency:    "Once daily",
		Duration:     "90 days",
		Doctor:       "Dr. Sarah Johnson",
		DateIssued:   "2023-12-15",
		Instructions: "Take with fat-containing meal for better absorption.",
		Status:       domain.PrescriptionCompleted,
		NextDose:     "Completed",
	},
	{
		ID:               4,
		Medication:       "Ibuprofen",
		Dosage:           "400mg",
		Frequency:        "As needed",
		Duration:         "7 days",
		Doctor:           "Dr. Emily Davis",
		DateIssued:       "2024-01-12",
		Instructions:     "Take with food. Do not exceed 3 doses per day.",
		Status:           domain.PrescriptionActive,
		RemainingDays:    5,
		NextDose:         "As needed",
		SideEffects:      []string{"Stomach irritation"},
		RemindersEnabled: true,
	},
}

var reports = []domain.Report{
	{
		ID:             1,
		Title:          "Blood Test Results",
		Type:           "Lab Report",
		Date:           "2024-01-10",
		Doctor:         "Dr. Sarah Johnson",
		Status:         domain.ReportReviewed,
		AbnormalValues: []string{"High Cholesterol", "Low Vitamin D"},
		Summary:        "Overall results show slight elevation in cholesterol levels. Vitamin D deficiency noted. Recommend dietary changes and supplements.",
		FileKey:        "reports/2024-01-10-blood-test.pdf",
	},
	{
		ID:      2,
		Title:   "Chest X-Ray",
		Type:    "Imaging",
		Date:    "2024-01-05",
		Doctor:  "Dr. Michael Chen",
		Status:  domain.ReportNormal,
		Summary: "Chest X-ray shows clear lungs with no signs of infection or abnormalities. Heart size appears normal.",
		FileKey: "reports/2024-01-05-chest-xray.pdf",
	},
	{
		ID:             3,
		Title:          "ECG Report",
		Type:           "Cardiac",
		Date:           "2023-12-28",
		Doctor:         "Dr. Sarah Johnson",
		Status:         domain.ReportReviewed,
		AbnormalValues: []string{"Irregular Rhythm"},
		Summary:        "ECG shows mild irregular rhythm. Recommend follow-up with cardiologist for further evaluation.",
	},
}

var healthMetrics = []domain.HealthMetric{
	{
		Key:  "blood_pressure",
		Name: "Blood Pressure",
		Unit: "mmHg",
		Data: []domain.MetricPoint{
			{Date: "2024-01-01", Value: "120/80", Systolic: 120, Diastolic: 80},
			{Date: "2024-01-15", Value: "125/82", Systolic: 125, Diastolic: 82},
			{Date: "2024-01-30", Value: "118/78", Systolic: 118, Diastolic: 78},
			{Date: "2024-02-15", Value: "122/79", Systolic: 122, Diastolic: 79},
		},
	},
	{
		Key:  "weight",
		Name: "Weight",
		Unit: "kg",
		Data: []domain.MetricPoint{
			{Date: "2024-01-01", Value: "75.2"},
			{Date: "2024-01-15", Value: "74.8"},
			{Date: "2024-01-30", Value: "74.5"},
			{Date: "2024-02-15", Value: "74.1"},
		},
	},
	{
		Key:  "blood_sugar",
		Name: "Blood Sugar",
		Unit: "mg/dL",
		Data: []domain.MetricPoint{
			{Date: "2024-01-01", Value: "95"},
			{Date: "2024-01-15", Value: "98"},
			{Date: "2024-01-30", Value: "92"},
			{Date: "2024-02-15", Value: "96"},
		},
	},
	{
		Key:  "temperature",
		Name: "Temperature",
		Unit: "°C",
		Data: []domain.MetricPoint{
			{Date: "2024-01-01", Value: "36.5"},
			{Date: "2024-01-15", Value: "36.7"},
			{Date: "2024-01-30", Value: "36.4"},
			{Date: "2024-02-15", Value: "36.6"},
		},
	},
}

var healthEvents = []domain.HealthEvent{
	{ID: 1, Date: "2024-01-15", Type: "appointment", Title: "Cardiology Consultation", Description: "Follow-up appointment with Dr. Sarah Johnson"},
	{ID: 2, Date: "2024-01-10", Type: "lab_result", Title: "Blood Test Results", Description: "Cholesterol levels slightly elevated"},
	{ID: 3, Date: "2024-01-05", Type: "medication", Title: "Prescription Updated", Description: "Lisinopril dosage adjusted to 10mg"},
	{ID: 4, Date: "2023-12-28", Type: "symptom", Title: "Mild Headache", Description: "Reported mild headache, resolved with rest"},
}

var predictions = []domain.Prediction{
	{
		Metric:         "Blood Pressure",
		Prediction:     "Based on current trends, your blood pressure is likely to remain stable over the next 3 months.",
		Risk:           "low",
		Recommendation: "Continue current medication and maintain regular exercise routine.",
	},
	{
		Metric:         "Weight",
		Prediction:     "Gradual weight loss trend detected. You may reach your target weight in 2-3 months.",
		Risk:           "positive",
		Recommendation: "Keep up the good work with diet and exercise.",
	},
	{
		Metric:         "Blood Sugar",
		Prediction:     "Blood sugar levels are within normal range with good stability.",
		Risk:           "low",
		Recommendation: "Continue monitoring and maintain current lifestyle habits.",
	},
}
