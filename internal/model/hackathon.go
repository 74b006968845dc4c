package model

import "time"

// Hackathon statuses as stored in the `status` column.
const (
	HackathonDraft     = "DRAFT"
	HackathonPublished = "PUBLISHED"
	HackathonFinished  = "FINISHED"
)

// Hackathon represents one event managed by an organizer.  Mentors,
// submissions, rooms, teams and registrations all hang off a hackathon.
// This struct corresponds to a row in the `hackathons` table.
//
// Fields:
//  ID          – primary key identifier.
//  OrganizerID – user ID of the organizer who owns the event.
//  Name        – unique event name per organizer.
//  Description – optional free text shown on the public listing.
//  Venue       – optional venue name for in-person events.
//  StartsAt    – when the event begins.
//  EndsAt      – when the event ends (must be after StartsAt).
//  Status      – DRAFT, PUBLISHED or FINISHED.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Hackathon struct {
	ID          uint64    // hackathons.id
	OrganizerID uint64    // hackathons.organizer_id
	Name        string    // hackathons.name
	Description *string   // hackathons.description (nullable)
	Venue       *string   // hackathons.venue (nullable)
	StartsAt    time.Time // hackathons.starts_at
	EndsAt      time.Time // hackathons.ends_at
	Status      string    // hackathons.status
	CreatedAt   time.Time // hackathons.created_at
	UpdatedAt   time.Time // hackathons.updated_at
}
