package mocks

import (
	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// CreateTestEvent returns a sample profile event.
func CreateTestEvent() ports.ProfileCreatedEvent {
	return ports.ProfileCreatedEvent{
		UserID: "test-user-id",
		Email:  "test.patient@example.com",
		Name:   "Test Patient",
		Role:   string(domain.RolePatient),
	}
}

// CreateTestUser returns a registered profile with the given role.
func CreateTestUser(email string, role domain.Role) domain.User {
	user := domain.User{
		ID:    "test-" + string(role),
		Email: email,
		Name:  "Test " + string(role),
		Role:  role,
		Phone: "+1 555 0100",
	}
	if role == domain.RoleDoctor {
		user.Specialization = "Neurology"
		user.LicenseNumber = "DOC777"
		user.Experience = "3 years"
	}
	return user
}
