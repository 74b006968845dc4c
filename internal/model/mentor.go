package model

import "time"

// Mentor is one mentor registered for a hackathon.  Email is unique per
// hackathon and acts as the mentor's key during an allocation run.  Skills
// are stored as a comma-separated column and split by the repository so the
// rest of the application always sees a slice.
//
// Fields:
//  ID          – primary key identifier.
//  HackathonID – event this mentor belongs to.
//  Name        – mentor display name.
//  Email       – unique email per hackathon.
//  Skills      – free-text skill tags, original casing preserved.
//  CreatedAt   – creation timestamp.
type Mentor struct {
	ID          uint64    // mentors.id
	HackathonID uint64    // mentors.hackathon_id
	Name        string    // mentors.name
	Email       string    // mentors.email
	Skills      []string  // mentors.skills (CSV column)
	CreatedAt   time.Time // mentors.created_at
}
