package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hackathon-manager/internal/model"
)

// ErrSubmissionExists is returned when a team already has a submission for
// the hackathon.
var ErrSubmissionExists = errors.New("team already has a submission for this hackathon")

// SubmissionRepo provides access to the `submissions` table. Keywords arrive
// pre-extracted by the external keyword service and are stored verbatim as a
// comma-separated column.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// Create inserts a submission, enforcing one submission per team per
// hackathon.
func (r *SubmissionRepo) Create(ctx context.Context, s *model.Submission) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM submissions WHERE hackathon_id = ? AND team_id = ?",
		s.HackathonID, s.TeamID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrSubmissionExists
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO submissions (hackathon_id, team_id, title, keywords) VALUES (?, ?, ?, ?)",
		s.HackathonID, s.TeamID, s.Title, joinTags(s.Keywords))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListByHackathon returns all submissions of a hackathon in insertion order.
func (r *SubmissionRepo) ListByHackathon(ctx context.Context, hackathonID uint64) ([]*model.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, hackathon_id, team_id, title, keywords, created_at FROM submissions WHERE hackathon_id = ? ORDER BY id",
		hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Submission
	for rows.Next() {
		var s model.Submission
		var keywords string
		if err := rows.Scan(&s.ID, &s.HackathonID, &s.TeamID, &s.Title, &keywords, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Keywords = splitTags(keywords)
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
