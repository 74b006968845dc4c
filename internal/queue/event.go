// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// Queue names. Routing keys equal queue names on the default exchange.
const (
	CheckinQueue    = "checkin.confirmed"
	AllocationQueue = "allocation.completed"
)

// CheckinConfirmedEvent is published when a participant's check-in code is
// scanned and accepted. It carries enough for downstream consumers to log
// or notify without querying the primary database.
type CheckinConfirmedEvent struct {
	RegistrationID uint64 `json:"registration_id"`
	HackathonID    uint64 `json:"hackathon_id"`
	HackathonName  string `json:"hackathon_name"`
	UserID         uint64 `json:"user_id"`
	TeamName       string `json:"team_name"`
	CheckedInAt    string `json:"checked_in_at"`
}

// AllocationCompletedEvent is published after an allocation run finishes,
// so dashboards and exports can refresh without polling.
type AllocationCompletedEvent struct {
	HackathonID uint64 `json:"hackathon_id"`
	Kind        string `json:"kind"` // "mentor" or "seating"
	Records     int    `json:"records"`
	Unmatched   int    `json:"unmatched"` // zero-score mentors or unplaced teams
	CompletedAt string `json:"completed_at"`
}
