package domain

import "time"

// Log action tags, as rendered by the system-log view.
const (
	ActionSystemInit    = "SYSTEM_INIT"
	ActionAuthLogin     = "AUTH_LOGIN"
	ActionUpdateRoom    = "UPDATE_ROOM"
	ActionInsertBooking = "INSERT_BOOKING"
)

// LogEntry is an append-only audit record. The timestamp is assigned by the
// persistence collaborator at write time so ordering is consistent across
// clients; entries are never updated or deleted.
type LogEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
