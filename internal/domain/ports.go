package domain

import "context"

// Repository is the persistence collaborator contract. Both backing
// implementations (MySQL and the in-memory store) satisfy it.
//
// Each mutating method pairs the entity write with its audit-log append
// inside one atomic unit at the persistence boundary, so a concurrent
// reader never observes one without the other.
type Repository interface {
	// Write paths
	UpsertRoom(ctx context.Context, r Room) error
	UpsertGuest(ctx context.Context, g Guest) error
	AppendLog(ctx context.Context, action, details string) error
	SetRoomStatus(ctx context.Context, roomID int64, status RoomStatus, logDetails string) (Room, error)
	// InsertBooking writes the booking, forces the referenced room to
	// "occupied" and appends the audit entry, all in one transaction.
	InsertBooking(ctx context.Context, b Booking, logDetails string) (Booking, error)

	// Read paths
	GetRoom(ctx context.Context, roomID int64) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListGuests(ctx context.Context) ([]Guest, error)
	// ListLogs returns entries newest first by store-assigned timestamp;
	// ties break to the most recently inserted entry.
	ListLogs(ctx context.Context) ([]LogEntry, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
