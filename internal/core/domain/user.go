package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
)

// ParseRole accepts the canonical names in any case. The boolean is false
// for anything else, including the empty string.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "patient":
		return RolePatient, true
	case "doctor":
		return RoleDoctor, true
	}
	return "", false
}

// Home is the landing path of the role's dashboard.
func (r Role) Home() string {
	if r == RoleDoctor {
		return "/doctor"
	}
	return "/patient"
}

func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// User is the profile held in an origin's session slot.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at,omitzero"`

	// Doctor attributes.
	Specialization string `json:"specialization,omitempty"`
	LicenseNumber  string `json:"license_number,omitempty"`
	Experience     string `json:"experience,omitempty"`

	// Patient attributes.
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

type Credentials struct {
	Email    string
	Password string
	Role     string
}

// SignupRequest carries the submitted signup form. Role-specific fields
// that do not apply to the chosen role are ignored.
type SignupRequest struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string

	Specialization string
	LicenseNumber  string
	Experience     string

	DateOfBirth      string
	Address          string
	EmergencyContact string
}

// DemoPatient and DemoDoctor are the built-in profiles used when a login
// email is not in the user directory.
func DemoPatient() User {
	return User{
		ID:               "1",
		Email:            "patient@example.com",
		Name:             "John Doe",
		Role:             RolePatient,
		Phone:            "+1234567890",
		DateOfBirth:      "1990-01-01",
		Address:          "123 Main St, City, State",
		EmergencyContact: "Jane Doe - +1234567891",
	}
}

func DemoDoctor() User {
	return User{
		ID:             "2",
		Email:          "doctor@example.com",
		Name:           "Dr. Smith",
		Role:           RoleDoctor,
		Phone:          "+1234567892",
		Specialization: "Cardiology",
		LicenseNumber:  "DOC123456",
		Experience:     "10 years",
	}
}
