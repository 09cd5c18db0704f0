package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/domain"
)

// Store is the in-memory implementation of domain.Repository. It is an
// explicit object owned by whoever constructs it (process or test fixture),
// never a package-level singleton.
//
// Logs are kept newest first: entries are prepended on append, so when two
// entries carry the same timestamp the most recently inserted one sorts
// first, matching the collaborator's ordering contract.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	rooms    []domain.Room
	bookings []domain.Booking
	guests   []domain.Guest
	logs     []domain.LogEntry
	lastLog  int64
	lastGst  int64
}

func New() *Store { return &Store{now: time.Now} }

// NewWithClock lets tests pin the store-assigned timestamps.
func NewWithClock(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{now: clock}
}

func (s *Store) UpsertRoom(_ context.Context, r domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == r.ID {
			s.rooms[i] = r
			return nil
		}
	}
	s.rooms = append(s.rooms, r)
	return nil
}

func (s *Store) UpsertGuest(_ context.Context, g domain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guests {
		if s.guests[i].ID == g.ID {
			s.guests[i] = g
			return nil
		}
	}
	if g.ID == 0 {
		s.lastGst++
		g.ID = s.lastGst
	} else if g.ID > s.lastGst {
		s.lastGst = g.ID
	}
	s.guests = append(s.guests, g)
	return nil
}

func (s *Store) AppendLog(_ context.Context, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLogLocked(action, details)
	return nil
}

func (s *Store) SetRoomStatus(_ context.Context, roomID int64, status domain.RoomStatus, logDetails string) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.rooms[i].Status = status
			s.appendLogLocked(domain.ActionUpdateRoom, logDetails)
			return s.rooms[i], nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (s *Store) InsertBooking(_ context.Context, b domain.Booking, logDetails string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var room *domain.Room
	for i := range s.rooms {
		if s.rooms[i].ID == b.RoomID {
			room = &s.rooms[i]
			break
		}
	}
	if room == nil {
		return domain.Booking{}, domain.ErrNotFound
	}

	b.CreatedAt = s.now()
	s.bookings = append([]domain.Booking{b}, s.bookings...)
	room.Status = domain.RoomOccupied
	s.appendLogLocked(domain.ActionInsertBooking, logDetails)
	return b, nil
}

func (s *Store) GetRoom(_ context.Context, roomID int64) (domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == roomID {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

func (s *Store) ListRooms(_ context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *Store) ListBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *Store) ListGuests(_ context.Context) ([]domain.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Guest, len(s.guests))
	copy(out, s.guests)
	return out, nil
}

func (s *Store) ListLogs(_ context.Context) ([]domain.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LogEntry, len(s.logs))
	copy(out, s.logs)
	return out, nil
}

// appendLogLocked assigns the id and store timestamp and prepends. Callers
// must hold the write lock.
func (s *Store) appendLogLocked(action, details string) {
	s.lastLog++
	e := domain.LogEntry{
		ID:        s.lastLog,
		Action:    action,
		Details:   details,
		Timestamp: s.now(),
	}
	s.logs = append([]domain.LogEntry{e}, s.logs...)
}
