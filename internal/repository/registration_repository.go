package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hackathon-manager/internal/model"
)

// ErrRegistrationNotFound is returned when a registration lookup fails.
var ErrRegistrationNotFound = errors.New("registration not found")

// ErrAlreadyRegistered is returned when a user tries to register twice for
// the same hackathon.
var ErrAlreadyRegistered = errors.New("already registered for this hackathon")

// ErrAlreadyCheckedIn is returned when a check-in code is scanned a second
// time against the database (the Redis dedup set catches most repeats
// earlier, but the database stays authoritative).
var ErrAlreadyCheckedIn = errors.New("registration already checked in")

// RegistrationRepo provides access to the `registrations` table.
type RegistrationRepo struct {
	db *sql.DB
}

func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

const registrationColumns = "id, hackathon_id, user_id, team_name, checkin_code, checked_in_at, created_at"

func scanRegistration(row interface{ Scan(...any) error }) (*model.Registration, error) {
	var reg model.Registration
	var checkedIn sql.NullTime
	err := row.Scan(&reg.ID, &reg.HackathonID, &reg.UserID, &reg.TeamName,
		&reg.CheckinCode, &checkedIn, &reg.CreatedAt)
	if err != nil {
		return nil, err
	}
	if checkedIn.Valid {
		t := checkedIn.Time
		reg.CheckedInAt = &t
	}
	return &reg, nil
}

// Create inserts a registration, enforcing one per user per hackathon.
func (r *RegistrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registrations WHERE hackathon_id = ? AND user_id = ?",
		reg.HackathonID, reg.UserID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrAlreadyRegistered
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO registrations (hackathon_id, user_id, team_name, checkin_code) VALUES (?, ?, ?, ?)",
		reg.HackathonID, reg.UserID, reg.TeamName, reg.CheckinCode)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	reg.ID = uint64(id)
	return nil
}

// GetByUserAndHackathon returns the user's registration for the hackathon.
func (r *RegistrationRepo) GetByUserAndHackathon(ctx context.Context, userID, hackathonID uint64) (*model.Registration, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+registrationColumns+" FROM registrations WHERE user_id = ? AND hackathon_id = ?",
		userID, hackathonID)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRegistrationNotFound
	}
	return reg, err
}

// GetByCode resolves a scanned check-in code within one hackathon.
func (r *RegistrationRepo) GetByCode(ctx context.Context, hackathonID uint64, code string) (*model.Registration, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+registrationColumns+" FROM registrations WHERE hackathon_id = ? AND checkin_code = ?",
		hackathonID, code)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRegistrationNotFound
	}
	return reg, err
}

// MarkCheckedIn stamps the registration once. A second call returns
// ErrAlreadyCheckedIn instead of moving the timestamp.
func (r *RegistrationRepo) MarkCheckedIn(ctx context.Context, id uint64, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE registrations SET checked_in_at = ? WHERE id = ? AND checked_in_at IS NULL",
		at, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyCheckedIn
	}
	return nil
}

// ListByHackathon returns all registrations for an event, newest last.
func (r *RegistrationRepo) ListByHackathon(ctx context.Context, hackathonID uint64) ([]*model.Registration, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+registrationColumns+" FROM registrations WHERE hackathon_id = ? ORDER BY id", hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
