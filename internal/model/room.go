package model

import "time"

// Room describes one physical room configured for seating: NumRows rows of
// SeatsPerRow seats each.  Rooms are static input to the seat allocator and
// are never mutated after creation.
//
// Fields:
//  ID          – primary key identifier.
//  HackathonID – event this room is configured for.
//  RoomNo      – room number or label, unique per hackathon.
//  SeatsPerRow – seats in every row, at least 1.
//  NumRows     – number of rows, at least 1.
//  CreatedAt   – creation timestamp.
type Room struct {
	ID          uint64    // rooms.id
	HackathonID uint64    // rooms.hackathon_id
	RoomNo      string    // rooms.room_no
	SeatsPerRow int       // rooms.seats_per_row
	NumRows     int       // rooms.num_rows
	CreatedAt   time.Time // rooms.created_at
}

// Team records the head count of one team for the seating run.  The seat
// allocator treats teams as atomic: all members share a row.
//
// Fields:
//  ID          – primary key identifier.
//  HackathonID – event this team belongs to.
//  TeamName    – display label for the team.
//  TeamSize    – number of members, at least 1.
//  CreatedAt   – creation timestamp.
type Team struct {
	ID          uint64    // teams.id
	HackathonID uint64    // teams.hackathon_id
	TeamName    string    // teams.team_name
	TeamSize    int       // teams.team_size
	CreatedAt   time.Time // teams.created_at
}
