package catalog

import "github.com/clynicx/portal-service/internal/core/domain"

var doctorStats = []domain.Stat{
	{Title: "Today's Patients", Value: "12", Icon: "Users"},
	{Title: "Appointments", Value: "15", Icon: "Calendar"},
	{Title: "Pending Reviews", Value: "4", Icon: "FileText"},
	{Title: "Critical Alerts", Value: "2", Icon: "AlertTriangle"},
}

var todayVisits = []domain.Visit{
	{ID: 1, Patient: "John Smith", Age: 45, Time: "9:00 AM", Type: "Follow-up", Condition: "Hypertension", Status: domain.AppointmentConfirmed, LastVisit: "2024-01-01"},
	{ID: 2, Patient: "Sarah Johnson", Age: 32, Time: "9:30 AM", Type: "Check-up", Condition: "Diabetes", Status: domain.AppointmentConfirmed, LastVisit: "2023-12-15"},
	{ID: 3, Patient: "Michael Chen", Age: 58, Time: "10:00 AM", Type: "Consultation", Condition: "Chest Pain", Status: domain.AppointmentPending, IsNew: true},
	{ID: 4, Patient: "Emily Davis", Age: 28, Time: "10:30 AM", Type: "Follow-up", Condition: "Migraine", Status: domain.AppointmentConfirmed, LastVisit: "2024-01-08"},
}

var alerts = []domain.Alert{
	{ID: 1, Patient: "Robert Wilson", Alert: "Blood pressure reading: 180/120 mmHg", Time: "2 hours ago", Severity: "high", Type: "vital_signs"},
	{ID: 2, Patient: "Lisa Brown", Alert: "Blood sugar level: 300 mg/dL", Time: "4 hours ago", Severity: "high", Type: "lab_result"},
}

var visits = []domain.Visit{
	{
		ID: 1, Patient: "John Smith", Age: 45, Time: "9:00 AM", Duration: "30 min",
		Type: "Follow-up", Condition: "Hypertension", Status: domain.AppointmentConfirmed,
		Phone: "+1 (555) 123-4567", Notes: "BP monitoring follow-up", LastVisit: "2024-01-01",
	},
	{
		ID: 2, Patient: "Sarah Johnson", Age: 32, Time: "9:30 AM", Duration: "45 min",
		Type: "Check-up", Condition: "Diabetes", Status: domain.AppointmentConfirmed,
		Phone: "+1 (555) 987-6543", Notes: "Routine diabetes check-up", LastVisit: "2023-12-15",
	},
	{
		ID: 3, Patient: "Michael Chen", Age: 58, Time: "10:00 AM", Duration: "60 min",
		Type: "Consultation", Condition: "Chest Pain", Status: domain.AppointmentPending,
		Phone: "+1 (555) 456-7890", Notes: "New patient - chest pain investigation", IsNew: true,
	},
	{
		ID: 4, Patient: "Emily Davis", Age: 28, Time: "10:30 AM", Duration: "30 min",
		Type: "Follow-up", Condition: "Migraine", Status: domain.AppointmentConfirmed,
		Phone: "+1 (555) 321-0987", Notes: "Migraine treatment follow-up", LastVisit: "2024-01-08",
	},
	{
		ID: 5, Patient: "Robert Wilson", Age: 62, Time: "11:00 AM", Duration: "30 min",
		Type: "Follow-up", Condition: "Arthritis", Status: domain.AppointmentCancelled,
		Phone: "+1 (555) 654-3210", Notes: "Patient cancelled - reschedule needed", LastVisit: "2024-01-05",
	},
	{
		ID: 6, Patient: "Lisa Brown", Age: 41, Time: "2:00 PM", Duration: "45 min",
		Type: "Consultation", Condition: "Annual Physical", Status: domain.AppointmentConfirmed,
		Phone: "+1 (555) 789-0123", Notes: "Annual health check-up", LastVisit: "2023-01-20",
	},
	{
		ID: 7, Patient: "David Miller", Age: 35, Time: "2:45 PM", Duration: "30 min",
		Type: "Follow-up", Condition: "Back Pain", Status: domain.AppointmentRescheduled,
		Phone: "+1 (555) 456-1234", Notes: "Rescheduled from yesterday", LastVisit: "2024-01-10",
	},
}

var patients = []domain.PatientSummary{
	{
		ID: 1, Name: "John Smith", Age: 45, Gender: "Male",
		Email: "john.smith@email.com", Phone: "+1 (555) 123-4567",
		LastVisit: "2024-01-15", NextAppointment: "2024-01-20",
		Condition: "Hypertension", Status: domain.PatientActive, RiskLevel: domain.RiskMedium,
		TotalVisits: 12, Indicators: map[string]string{"blood_pressure": "135/85"},
		LastPrescription: "Lisinopril 10mg",
	},
	{
		ID: 2, Name: "Sarah Johnson", Age: 32, Gender: "Female",
		Email: "sarah.johnson@email.com", Phone: "+1 (555) 987-6543",
		LastVisit: "2024-01-12", NextAppointment: "2024-01-18",
		Condition: "Type 2 Diabetes", Status: domain.PatientActive, RiskLevel: domain.RiskHigh,
		TotalVisits: 8, Indicators: map[string]string{"blood_sugar": "185 mg/dL"},
		LastPrescription: "Metformin 500mg",
	},
	{
		ID: 3, Name: "Michael Chen", Age: 58, Gender: "Male",
		Email: "michael.chen@email.com", Phone: "+1 (555) 456-7890",
		LastVisit: "2024-01-10", NextAppointment: "Not scheduled",
		Condition: "Chest Pain (Under Investigation)", Status: domain.PatientNew, RiskLevel: domain.RiskHigh,
		TotalVisits: 1, Indicators: map[string]string{"heart_rate": "95 bpm"},
		LastPrescription: "None",
	},
	{
		ID: 4, Name: "Emily Davis", Age: 28, Gender: "Female",
		Email: "emily.davis@email.com", Phone: "+1 (555) 321-0987",
		LastVisit: "2024-01-08", NextAppointment: "2024-01-22",
		Condition: "Migraine", Status: domain.PatientActive, RiskLevel: domain.RiskLow,
		TotalVisits: 15, Indicators: map[string]string{"frequency": "2-3 per month"},
		LastPrescription: "Sumatriptan 50mg",
	},
	{
		ID: 5, Name: "Robert Wilson", Age: 62, Gender: "Male",
		Email: "robert.wilson@email.com", Phone: "+1 (555) 654-3210",
		LastVisit: "2024-01-05", NextAppointment: "2024-01-25",
		Condition: "Arthritis", Status: domain.PatientActive, RiskLevel: domain.RiskMedium,
		TotalVisits: 20, Indicators: map[string]string{"pain_level": "6/10"},
		LastPrescription: "Ibuprofen 400mg",
	},
}

var patientDetail = domain.PatientProfile{
	Address:           "123 Main St, City, State 12345",
	EmergencyContact:  "Jane Smith - +1 (555) 987-6543",
	BloodType:         "O+",
	Allergies:         []string{"Penicillin", "Shellfish"},
	ChronicConditions: []string{"Hypertension", "Type 2 Diabetes"},
	JoinDate:          "2022-03-15",
	History: []domain.HistoryEntry{
		{Date: "2024-01-15", Type: "Visit", Title: "Routine Follow-up", Doctor: "Dr. Sarah Johnson", Notes: "Blood pressure stable. Continue current medication."},
		{Date: "2024-01-10", Type: "Lab", Title: "Blood Test Results", Doctor: "Dr. Sarah Johnson", Notes: "HbA1c: 7.2%, Cholesterol: 180 mg/dL"},
		{Date: "2023-12-20", Type: "Prescription", Title: "Medication Update", Doctor: "Dr. Sarah Johnson", Notes: "Increased Lisinopril to 10mg daily"},
	},
	Reports: []domain.Report{
		{ID: 1, Title: "Blood Test Results", Date: "2024-01-10", Type: "Lab Report", Status: domain.ReportNormal},
		{ID: 2, Title: "ECG Report", Date: "2023-12-28", Type: "Cardiac", Status: domain.ReportAbnormal},
	},
	Prescriptions: []domain.Prescription{
		{ID: 1, Medication: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", StartDate: "2023-12-20", Status: domain.PrescriptionActive},
		{ID: 2, Medication: "Metformin", Dosage: "500mg", Frequency: "Twice daily", StartDate: "2023-10-15", Status: domain.PrescriptionActive},
	},
	Vitals: []domain.VitalsReading{
		{Date: "2024-01-15", Weight: "82 kg", BloodPressure: "135/85", HeartRate: "72 bpm", Temperature: "36.5°C"},
		{Date: "2023-12-20", Weight: "83 kg", BloodPressure: "140/90", HeartRate: "75 bpm", Temperature: "36.7°C"},
	},
}
