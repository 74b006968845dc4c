package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hackathon-manager/internal/model"
)

// ErrHackathonNotFound is returned when a hackathon lookup fails.
var ErrHackathonNotFound = errors.New("hackathon not found")

// HackathonRepo provides access to the `hackathons` table.
type HackathonRepo struct {
	db *sql.DB
}

func NewHackathonRepo(db *sql.DB) *HackathonRepo { return &HackathonRepo{db: db} }

const hackathonColumns = "id, organizer_id, name, description, venue, starts_at, ends_at, status, created_at, updated_at"

func scanHackathon(row interface{ Scan(...any) error }) (*model.Hackathon, error) {
	var h model.Hackathon
	err := row.Scan(&h.ID, &h.OrganizerID, &h.Name, &h.Description, &h.Venue,
		&h.StartsAt, &h.EndsAt, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts a new hackathon in DRAFT status and re-reads the row so
// timestamps and defaults are filled in.
func (r *HackathonRepo) Create(ctx context.Context, h *model.Hackathon) error {
	const qInsert = `INSERT INTO hackathons (organizer_id, name, description, venue, starts_at, ends_at, status)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	status := h.Status
	if status == "" {
		status = model.HackathonDraft
	}
	res, err := r.db.ExecContext(ctx, qInsert,
		h.OrganizerID, h.Name, h.Description, h.Venue, h.StartsAt, h.EndsAt, status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	fresh, err := r.GetByID(ctx, h.ID)
	if err != nil {
		return err
	}
	*h = *fresh
	return nil
}

// GetByID retrieves a hackathon by its ID regardless of owner.
func (r *HackathonRepo) GetByID(ctx context.Context, id uint64) (*model.Hackathon, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+hackathonColumns+" FROM hackathons WHERE id = ?", id)
	h, err := scanHackathon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHackathonNotFound
	}
	return h, err
}

// GetByIDAndOrganizer retrieves a hackathon only if the given organizer owns
// it. Used to enforce resource ownership on every organizer route.
func (r *HackathonRepo) GetByIDAndOrganizer(ctx context.Context, id, organizerID uint64) (*model.Hackathon, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+hackathonColumns+" FROM hackathons WHERE id = ? AND organizer_id = ?", id, organizerID)
	h, err := scanHackathon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHackathonNotFound
	}
	return h, err
}

// ListByOrganizer returns all hackathons owned by the organizer.
func (r *HackathonRepo) ListByOrganizer(ctx context.Context, organizerID uint64) ([]*model.Hackathon, error) {
	return r.list(ctx, "SELECT "+hackathonColumns+" FROM hackathons WHERE organizer_id = ? ORDER BY id", organizerID)
}

// ListPublished returns hackathons visible to guests.
func (r *HackathonRepo) ListPublished(ctx context.Context) ([]*model.Hackathon, error) {
	return r.list(ctx, "SELECT "+hackathonColumns+" FROM hackathons WHERE status = ? ORDER BY starts_at", model.HackathonPublished)
}

func (r *HackathonRepo) list(ctx context.Context, q string, args ...any) ([]*model.Hackathon, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Hackathon
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByIDAndOrganizer updates mutable hackathon fields if the hackathon
// belongs to the organizer. Returns sql.ErrNoRows when not found.
func (r *HackathonRepo) UpdateByIDAndOrganizer(ctx context.Context, h *model.Hackathon) error {
	const q = `UPDATE hackathons
	           SET name = ?, description = ?, venue = ?, starts_at = ?, ends_at = ?, status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND organizer_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		h.Name, h.Description, h.Venue, h.StartsAt, h.EndsAt, h.Status, h.ID, h.OrganizerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByIDAndOrganizer removes a hackathon the organizer owns. Deleting a
// hackathon that still has registrations is refused with ErrConflict.
func (r *HackathonRepo) DeleteByIDAndOrganizer(ctx context.Context, id, organizerID uint64) error {
	var regs int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registrations WHERE hackathon_id = ?", id).Scan(&regs); err != nil {
		return err
	}
	if regs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM hackathons WHERE id = ? AND organizer_id = ?", id, organizerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHackathonNotFound
	}
	return nil
}
