package config

import "time"

// CheckinConfig controls the per-hackathon set of already-scanned check-in
// codes kept in Redis. The set is owned by the scanning session: it is
// created on the first scan, consulted on every scan to reject repeats
// cheaply, and deleted when the organizer resets the session. TTL guards
// against sessions that are never reset explicitly.
type CheckinConfig struct {
	Prefix string
	TTL    time.Duration
}

// LoadCheckinConfig reads the CHECKIN_* environment variables.
func LoadCheckinConfig() CheckinConfig {
	return CheckinConfig{
		Prefix: envStr("CHECKIN_SET_PREFIX", "checkin"),
		TTL:    envDur("CHECKIN_SET_TTL", 24*time.Hour),
	}
}
