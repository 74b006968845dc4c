package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hackathon-manager/internal/model"
)

// ErrMentorNotFound is returned when a mentor lookup fails.
var ErrMentorNotFound = errors.New("mentor not found")

// ErrMentorEmailExists is returned when a mentor with the same email is
// already registered for the hackathon.
var ErrMentorEmailExists = errors.New("mentor email already registered for this hackathon")

// MentorRepo provides access to the `mentors` table. Skills are stored as a
// comma-separated column and converted at the boundary.
type MentorRepo struct {
	db *sql.DB
}

func NewMentorRepo(db *sql.DB) *MentorRepo { return &MentorRepo{db: db} }

// Create inserts a mentor. Uniqueness of (hackathon_id, email) is enforced
// here so handlers can surface a 409 before an allocation run sees
// duplicate keys.
func (r *MentorRepo) Create(ctx context.Context, m *model.Mentor) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM mentors WHERE hackathon_id = ? AND email = ?",
		m.HackathonID, m.Email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrMentorEmailExists
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO mentors (hackathon_id, name, email, skills) VALUES (?, ?, ?, ?)",
		m.HackathonID, m.Name, m.Email, joinTags(m.Skills))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// ListByHackathon returns all mentors of a hackathon in insertion order.
// Insertion order matters downstream: the allocator breaks score ties by
// list position.
func (r *MentorRepo) ListByHackathon(ctx context.Context, hackathonID uint64) ([]*model.Mentor, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, hackathon_id, name, email, skills, created_at FROM mentors WHERE hackathon_id = ? ORDER BY id",
		hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Mentor
	for rows.Next() {
		var m model.Mentor
		var skills string
		if err := rows.Scan(&m.ID, &m.HackathonID, &m.Name, &m.Email, &skills, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Skills = splitTags(skills)
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndHackathon removes one mentor from a hackathon.
func (r *MentorRepo) DeleteByIDAndHackathon(ctx context.Context, id, hackathonID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM mentors WHERE id = ? AND hackathon_id = ?", id, hackathonID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMentorNotFound
	}
	return nil
}
