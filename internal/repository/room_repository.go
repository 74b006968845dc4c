package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hackathon-manager/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomExists is returned when a room number is already configured for
// the hackathon.
var ErrRoomExists = errors.New("room number already configured for this hackathon")

// RoomRepo provides access to the `rooms` table. Room rows are static
// seating input: once created they are only read and deleted, never updated.
type RoomRepo struct {
	db *sql.DB
}

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// Create inserts a room configuration, enforcing unique room numbers per
// hackathon.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rooms WHERE hackathon_id = ? AND room_no = ?",
		room.HackathonID, room.RoomNo).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrRoomExists
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (hackathon_id, room_no, seats_per_row, num_rows) VALUES (?, ?, ?, ?)",
		room.HackathonID, room.RoomNo, room.SeatsPerRow, room.NumRows)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	return nil
}

// ListByHackathon returns rooms in declaration (insertion) order. The seat
// allocator resolves best-fit ties by this order.
func (r *RoomRepo) ListByHackathon(ctx context.Context, hackathonID uint64) ([]*model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, hackathon_id, room_no, seats_per_row, num_rows, created_at FROM rooms WHERE hackathon_id = ? ORDER BY id",
		hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.HackathonID, &room.RoomNo, &room.SeatsPerRow, &room.NumRows, &room.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndHackathon removes one room configuration.
func (r *RoomRepo) DeleteByIDAndHackathon(ctx context.Context, id, hackathonID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM rooms WHERE id = ? AND hackathon_id = ?", id, hackathonID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
