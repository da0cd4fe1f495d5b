package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// RoleInference selects how login decides between the two dashboards.
type RoleInference int

const (
	// InferFromEmail picks Doctor when the email contains "doctor" or the
	// form asked for Doctor.
	InferFromEmail RoleInference = iota
	// ExplicitRoleOnly trusts the role field alone, defaulting to Patient.
	ExplicitRoleOnly
)

func ParseRoleInference(s string) RoleInference {
	if strings.EqualFold(strings.TrimSpace(s), "explicit") {
		return ExplicitRoleOnly
	}
	return InferFromEmail
}

type AuthService struct {
	directory ports.ProfileDirectory
	latency   time.Duration
	inference RoleInference
	now       func() time.Time
	logger    *zap.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	directory ports.ProfileDirectory,
	latency time.Duration,
	inference RoleInference,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		directory: directory,
		latency:   latency,
		inference: inference,
		now:       time.Now,
		logger:    logger,
	}
}

// Login resolves a profile for the credentials and makes it resident in
// the origin's slot. Passwords are not verified.
func (s *AuthService) Login(ctx context.Context, store ports.SessionStore, creds domain.Credentials) (*domain.User, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	role := s.loginRole(email, creds.Role)
	user := s.resolveProfile(ctx, email, role)

	if err := store.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("login",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

// Signup creates a profile in the directory and makes it resident.
func (s *AuthService) Signup(ctx context.Context, store ports.SessionStore, req domain.SignupRequest) (*domain.User, error) {
	user := s.newProfile(req)

	payload, err := json.Marshal(ports.ProfileCreatedEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if err := s.directory.CreateProfile(ctx, user, payload); err != nil {
		return nil, err
	}

	if err := store.Save(ctx, &user); err != nil {
		return nil, err
	}

	s.logger.Info("signup",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return &user, nil
}

func (s *AuthService) Logout(ctx context.Context, store ports.SessionStore) error {
	return store.Clear(ctx)
}

func (s *AuthService) loginRole(email, requested string) domain.Role {
	explicit, _ := domain.ParseRole(requested)
	if s.inference == InferFromEmail && strings.Contains(email, "doctor") {
		return domain.RoleDoctor
	}
	if explicit == domain.RoleDoctor {
		return domain.RoleDoctor
	}
	return domain.RolePatient
}

// resolveProfile prefers a registered profile of the inferred role and
// otherwise falls back to that role's demo profile.
func (s *AuthService) resolveProfile(ctx context.Context, email string, role domain.Role) *domain.User {
	user, err := s.directory.FindByEmail(ctx, email)
	switch {
	case err == nil && user.Role == role:
		return user
	case err == nil:
		s.logger.Debug("registered profile has another role, using demo profile",
			zap.String("registered_role", string(user.Role)),
			zap.String("role", string(role)),
		)
	case !errors.Is(err, domain.ErrProfileNotFound):
		s.logger.Warn("directory lookup failed, using demo profile", zap.Error(err))
	}

	demo := domain.DemoPatient()
	if role == domain.RoleDoctor {
		demo = domain.DemoDoctor()
	}
	return &demo
}

func (s *AuthService) newProfile(req domain.SignupRequest) domain.User {
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		role = domain.RolePatient
	}

	now := s.now()
	user := domain.User{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(req.Email),
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		Phone:     req.Phone,
		CreatedAt: now.UTC(),
	}

	switch role {
	case domain.RoleDoctor:
		user.Specialization = orDefault(req.Specialization, "General Medicine")
		user.LicenseNumber = orDefault(req.LicenseNumber, "DOC"+strconv.FormatInt(now.UnixMilli(), 10))
		user.Experience = orDefault(req.Experience, "5 years")
	default:
		user.DateOfBirth = req.DateOfBirth
		user.Address = req.Address
		user.EmergencyContact = req.EmergencyContact
	}
	return user
}

// wait stands in for network latency ahead of every slot write.
func (s *AuthService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
