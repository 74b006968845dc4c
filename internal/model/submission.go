package model

import "time"

// Submission is one team's project entry.  Keywords are produced by an
// external extraction service over the uploaded deck text and arrive here
// already resolved; the service never parses documents itself.  Like mentor
// skills they live in a comma-separated column.
//
// Fields:
//  ID          – primary key identifier.
//  HackathonID – event this submission belongs to.
//  TeamID      – team identifier, unique per hackathon.
//  Title       – optional project title.
//  Keywords    – extracted technical keywords, possibly empty.
//  CreatedAt   – creation timestamp.
type Submission struct {
	ID          uint64    // submissions.id
	HackathonID uint64    // submissions.hackathon_id
	TeamID      string    // submissions.team_id
	Title       *string   // submissions.title (nullable)
	Keywords    []string  // submissions.keywords (CSV column)
	CreatedAt   time.Time // submissions.created_at
}
