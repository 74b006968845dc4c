package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hackathon-manager/internal/model"
)

// ErrTeamExists is returned when a team name is already recorded for the
// hackathon's seating input.
var ErrTeamExists = errors.New("team already recorded for this hackathon")

// TeamRepo provides access to the `teams` table holding seating head counts.
type TeamRepo struct {
	db *sql.DB
}

func NewTeamRepo(db *sql.DB) *TeamRepo { return &TeamRepo{db: db} }

// Create inserts one team size record, enforcing unique team names per
// hackathon.
func (r *TeamRepo) Create(ctx context.Context, t *model.Team) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM teams WHERE hackathon_id = ? AND team_name = ?",
		t.HackathonID, t.TeamName).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrTeamExists
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO teams (hackathon_id, team_name, team_size) VALUES (?, ?, ?)",
		t.HackathonID, t.TeamName, t.TeamSize)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// ListByHackathon returns teams in insertion order.
func (r *TeamRepo) ListByHackathon(ctx context.Context, hackathonID uint64) ([]*model.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, hackathon_id, team_name, team_size, created_at FROM teams WHERE hackathon_id = ? ORDER BY id",
		hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.HackathonID, &t.TeamName, &t.TeamSize, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
