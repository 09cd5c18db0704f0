package memory

import (
	"context"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/domain"
	"github.com/jruizdesign/HotelManagement/internal/shared"
)

// NewSeeded returns a store preloaded with the demo property: two floors of
// rooms, a few in-house bookings and the boot log entries. Used by the
// memory backend of cmd/api and by tests that want realistic data.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()

	for _, r := range shared.SeedRooms {
		_ = s.UpsertRoom(ctx, r)
	}
	for _, g := range shared.SeedGuests {
		_ = s.UpsertGuest(ctx, g)
	}

	base := time.Now().Add(-time.Hour)
	s.mu.Lock()
	for i, b := range shared.SeedBookings {
		b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		s.bookings = append([]domain.Booking{b}, s.bookings...)
	}
	s.mu.Unlock()

	_ = s.AppendLog(ctx, domain.ActionSystemInit, "Database connection established (in-memory)")
	_ = s.AppendLog(ctx, domain.ActionAuthLogin, "Admin user logged in from IP 192.168.1.42")
	return s
}
