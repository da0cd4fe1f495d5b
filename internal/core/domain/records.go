package domain

// Display-only records. They have no lifecycle beyond the literal
// datasets served by the catalog.

type AppointmentStatus string

const (
	AppointmentConfirmed   AppointmentStatus = "confirmed"
	AppointmentPending     AppointmentStatus = "pending"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

// Appointment is a patient-side booking with a doctor.
type Appointment struct {
	ID        int               `json:"id"`
	Doctor    string            `json:"doctor"`
	Specialty string            `json:"specialty"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Type      string            `json:"type,omitempty"`
	Status    AppointmentStatus `json:"status,omitempty"`
	Location  string            `json:"location,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Reason    string            `json:"reason,omitempty"`
}

// Visit is a doctor-side slot on the day's schedule.
type Visit struct {
	ID        int               `json:"id"`
	Patient   string            `json:"patient"`
	Age       int               `json:"age"`
	Time      string            `json:"time"`
	Duration  string            `json:"duration,omitempty"`
	Type      string            `json:"type"`
	Condition string            `json:"condition"`
	Status    AppointmentStatus `json:"status"`
	Phone     string            `json:"phone,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	LastVisit string            `json:"last_visit,omitempty"`
	IsNew     bool              `json:"is_new"`
}

type DoctorOption struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type Insight struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "active"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionExpired   PrescriptionStatus = "expired"
)

type Prescription struct {
	ID               int                `json:"id"`
	Medication       string             `json:"medication"`
	Dosage           string             `json:"dosage"`
	Frequency        string             `json:"frequency"`
	Duration         string             `json:"duration,omitempty"`
	Doctor           string             `json:"doctor,omitempty"`
	DateIssued       string             `json:"date_issued,omitempty"`
	StartDate        string             `json:"start_date,omitempty"`
	Instructions     string             `json:"instructions,omitempty"`
	Status           PrescriptionStatus `json:"status"`
	RemainingDays    int                `json:"remaining_days"`
	RefillsRemaining int                `json:"refills_remaining"`
	NextDose         string             `json:"next_dose,omitempty"`
	SideEffects      []string           `json:"side_effects,omitempty"`
	RemindersEnabled bool               `json:"reminders_enabled"`
}

type ReportStatus string

const (
	ReportNormal   ReportStatus = "normal"
	ReportReviewed ReportStatus = "reviewed"
	ReportAbnormal ReportStatus = "abnormal"
)

type Report struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	Type           string       `json:"type"`
	Date           string       `json:"date"`
	Doctor         string       `json:"doctor,omitempty"`
	Status         ReportStatus `json:"status"`
	AbnormalValues []string     `json:"abnormal_values,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	// FileKey is the object key of the report document, if one exists.
	FileKey string `json:"-"`
}

type MetricPoint struct {
	Date      string `json:"date"`
	Value     string `json:"value"`
	Systolic  int    `json:"systolic,omitempty"`
	Diastolic int    `json:"diastolic,omitempty"`
}

type HealthMetric struct {
	Key  string        `json:"key"`
	Name string        `json:"name"`
	Unit string        `json:"unit"`
	Data []MetricPoint `json:"data"`
}

type HealthEvent struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Prediction struct {
	Metric         string `json:"metric"`
	Prediction     string `json:"prediction"`
	Risk           string `json:"risk"`
	Recommendation string `json:"recommendation"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type PatientStatus string

const (
	PatientActive   PatientStatus = "active"
	PatientNew      PatientStatus = "new"
	PatientInactive PatientStatus = "inactive"
)

// PatientSummary is a row of the doctor's patient list. Indicators holds
// the condition-specific reading shown on the card (blood pressure, pain
// level and so on).
type PatientSummary struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Age              int               `json:"age"`
	Gender           string            `json:"gender"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	LastVisit        string            `json:"last_visit"`
	NextAppointment  string            `json:"next_appointment"`
	Condition        string            `json:"condition"`
	Status           PatientStatus     `json:"status"`
	RiskLevel        RiskLevel         `json:"risk_level"`
	TotalVisits      int               `json:"total_visits"`
	Indicators       map[string]string `json:"indicators,omitempty"`
	LastPrescription string            `json:"last_prescription"`
}

type Alert struct {
	ID       int    `json:"id"`
	Patient  string `json:"patient"`
	Alert    string `json:"alert"`
	Time     string `json:"time"`
	Severity string `json:"severity"`
	Type     string `json:"type"`
}

type HistoryEntry struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Doctor string `json:"doctor"`
	Notes  string `json:"notes"`
}

type VitalsReading struct {
	Date          string `json:"date"`
	Weight        string `json:"weight"`
	BloodPressure string `json:"blood_pressure"`
	HeartRate     string `json:"heart_rate"`
	Temperature   string `json:"temperature"`
}

// PatientProfile is the doctor's detailed view of one patient.
type PatientProfile struct {
	PatientSummary
	Address           string          `json:"address"`
	EmergencyContact  string          `json:"emergency_contact"`
	BloodType         string          `json:"blood_type"`
	Allergies         []string        `json:"allergies"`
	ChronicConditions []string        `json:"chronic_conditions"`
	JoinDate          string          `json:"join_date"`
	History           []HistoryEntry  `json:"history"`
	Reports           []Report        `json:"reports"`
	Prescriptions     []Prescription  `json:"prescriptions"`
	Vitals            []VitalsReading `json:"vitals"`
}
