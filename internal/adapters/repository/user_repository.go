package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sony/gobreaker"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

const uniqueViolation = "23505"

// SQLDirectory stores signed-up profiles in PostgreSQL.
type SQLDirectory struct {
	db *sql.DB
	cb *gobreaker.CircuitBreaker
}

var _ ports.ProfileDirectory = (*SQLDirectory)(nil)

func NewSQLDirectory(db *sql.DB, cb *gobreaker.CircuitBreaker) *SQLDirectory {
	return &SQLDirectory{db: db, cb: cb}
}

func (r *SQLDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		var (
			user                                   domain.User
			specialization, license, experience    sql.NullString
			dateOfBirth, address, emergencyContact sql.NullString
		)
		err := r.db.QueryRowContext(ctx, `
			SELECT u.id, u.email, u.name, u.role, u.phone, u.created_at,
			       d.specialization, d.license_number, d.experience,
			       p.date_of_birth, p.address, p.emergency_contact
			FROM users u
			LEFT JOIN doctor_profiles d ON d.user_id = u.id
			LEFT JOIN patient_profiles p ON p.user_id = u.id
			WHERE lower(u.email) = lower($1)`,
			email,
		).Scan(
			&user.ID, &user.Email, &user.Name, &user.Role, &user.Phone, &user.CreatedAt,
			&specialization, &license, &experience,
			&dateOfBirth, &address, &emergencyContact,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		user.Specialization = specialization.String
		user.LicenseNumber = license.String
		user.Experience = experience.String
		user.DateOfBirth = dateOfBirth.String
		user.Address = address.String
		user.EmergencyContact = emergencyContact.String
		return &user, nil
	})
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	user, _ := res.(*domain.User)
	if user == nil {
		return nil, domain.ErrProfileNotFound
	}
	return user, nil
}

// CreateProfile writes the user, its role table row and the outbox event
// in one transaction. The outbox insert fires the relay's NOTIFY trigger.
func (r *SQLDirectory) CreateProfile(ctx context.Context, user domain.User, outboxPayload []byte) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer tx.Rollback()

		_, err = tx.ExecContext(ctx,
			"INSERT INTO users (id, email, name, role, phone, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
			user.ID,
			user.Email,
			user.Name,
			user.Role,
			user.Phone,
			user.CreatedAt,
		)
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		if err != nil {
			return nil, err
		}

		switch user.Role {
		case domain.RoleDoctor:
			_, err = tx.ExecContext(ctx,
				"INSERT INTO doctor_profiles (user_id, specialization, license_number, experience) VALUES ($1, $2, $3, $4)",
				user.ID,
				user.Specialization,
				user.LicenseNumber,
				user.Experience,
			)
		default:
			_, err = tx.ExecContext(ctx,
				"INSERT INTO patient_profiles (user_id, date_of_birth, address, emergency_contact) VALUES ($1, $2, $3, $4)",
				user.ID,
				user.DateOfBirth,
				user.Address,
				user.EmergencyContact,
			)
		}
		if err != nil {
			return nil, err
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO outbox_events (id, event_type, aggregate_id, payload, created_at) VALUES (gen_random_uuid(), $1, $2, $3, NOW())",
			ports.ProfileCreatedEventType,
			user.ID,
			outboxPayload,
		)
		if err != nil {
			return nil, err
		}

		err = tx.Commit()
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		return err
	}
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *SQLDirectory) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
