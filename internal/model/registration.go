package model

import "time"

// Registration links a participant account to a hackathon.  Each
// registration carries a random check-in code which is rendered as a QR
// code client-side; scanning the code at the venue marks CheckedInAt.
//
// Fields:
//  ID          – primary key identifier.
//  HackathonID – event the participant registered for.
//  UserID      – participant account, one registration per event.
//  TeamName    – team the participant signed up under.
//  CheckinCode – random UUID presented at the door.
//  CheckedInAt – when the code was scanned (nil until check-in).
//  CreatedAt   – creation timestamp.
type Registration struct {
	ID          uint64     // registrations.id
	HackathonID uint64     // registrations.hackathon_id
	UserID      uint64     // registrations.user_id
	TeamName    string     // registrations.team_name
	CheckinCode string     // registrations.checkin_code
	CheckedInAt *time.Time // registrations.checked_in_at (nullable)
	CreatedAt   time.Time  // registrations.created_at
}
