package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/app"
	"github.com/jruizdesign/HotelManagement/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	rooms    []domain.Room
	bookings []domain.Booking
	logs     []domain.LogEntry
	guests   []domain.Guest
}

func (f *fakeRepo) UpsertRoom(ctx context.Context, r domain.Room) error   { return nil }
func (f *fakeRepo) UpsertGuest(ctx context.Context, g domain.Guest) error { return nil }
func (f *fakeRepo) AppendLog(ctx context.Context, action, details string) error {
	return nil
}
func (f *fakeRepo) SetRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus, logDetails string) (domain.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == roomID {
			f.rooms[i].Status = status
			return f.rooms[i], nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}
func (f *fakeRepo) InsertBooking(ctx context.Context, b domain.Booking, logDetails string) (domain.Booking, error) {
	f.bookings = append([]domain.Booking{b}, f.bookings...)
	return b, nil
}
func (f *fakeRepo) GetRoom(ctx context.Context, roomID int64) (domain.Room, error) {
	for _, r := range f.rooms {
		if r.ID == roomID {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}
func (f *fakeRepo) ListRooms(ctx context.Context) ([]domain.Room, error)       { return f.rooms, nil }
func (f *fakeRepo) ListBookings(ctx context.Context) ([]domain.Booking, error) { return f.bookings, nil }
func (f *fakeRepo) ListGuests(ctx context.Context) ([]domain.Guest, error)     { return f.guests, nil }
func (f *fakeRepo) ListLogs(ctx context.Context) ([]domain.LogEntry, error)    { return f.logs, nil }

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Room:
		*d = v.([]domain.Room)
	case *[]domain.Booking:
		*d = v.([]domain.Booking)
	case *[]domain.LogEntry:
		*d = v.([]domain.LogEntry)
	case *[]domain.Guest:
		*d = v.([]domain.Guest)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestListRooms_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{rooms: []domain.Room{{ID: 103, Number: "103", Status: domain.RoomAvailable}}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)

	// miss populates the cache
	rooms, err := q.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != 103 {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}

	// mutate repo to prove the second read is served from cache
	repo.rooms[0].Status = domain.RoomMaintenance

	rooms2, err := q.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rooms2[0].Status != domain.RoomAvailable {
		t.Fatalf("expected cached status, got %s", rooms2[0].Status)
	}
}

func TestMutationsEvictReadCaches(t *testing.T) {
	repo := &fakeRepo{rooms: []domain.Room{{ID: 103, Number: "103", Price: 180, Status: domain.RoomAvailable}}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	fd := app.NewFrontDeskService(repo, cache)
	ctx := context.Background()

	// warm the rooms cache
	if _, err := q.ListRooms(ctx); err != nil {
		t.Fatalf("warm: %v", err)
	}

	if _, err := fd.UpdateRoomStatus(ctx, 103, domain.RoomCleaning); err != nil {
		t.Fatalf("update: %v", err)
	}

	// the next read must see the write, not the stale cache entry
	rooms, err := q.ListRooms(ctx)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if rooms[0].Status != domain.RoomCleaning {
		t.Fatalf("stale read after mutation: %+v", rooms[0])
	}

	if _, err := fd.CreateBooking(ctx, "Sarah Connor", 103, "2023-11-01", "2023-11-05"); err != nil {
		t.Fatalf("booking: %v", err)
	}
	var sawBookings, sawLogs bool
	for _, k := range cache.dels {
		switch k {
		case "bookings:all":
			sawBookings = true
		case "logs:all":
			sawLogs = true
		}
	}
	if !sawBookings || !sawLogs {
		t.Fatalf("booking did not evict read caches: %v", cache.dels)
	}
}

func TestQueriesWorkWithoutACache(t *testing.T) {
	repo := &fakeRepo{
		rooms:  []domain.Room{{ID: 201, Status: domain.RoomOccupied}},
		guests: []domain.Guest{{ID: 1, Name: "Jason Ruiz"}},
	}
	q := app.NewQueryService(repo, nil, time.Minute)

	rooms, err := q.ListRooms(context.Background())
	if err != nil || len(rooms) != 1 {
		t.Fatalf("rooms: %v %v", rooms, err)
	}
	guests, err := q.ListGuests(context.Background())
	if err != nil || len(guests) != 1 {
		t.Fatalf("guests: %v %v", guests, err)
	}
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeRepo{
		rooms: []domain.Room{
			{ID: 101, Status: domain.RoomOccupied},
			{ID: 102, Status: domain.RoomCleaning},
			{ID: 103, Status: domain.RoomAvailable},
			{ID: 104, Status: domain.RoomOccupied},
		},
		bookings: []domain.Booking{
			{ID: "BK-1", Status: domain.BookingConfirmed},
			{ID: "BK-2", Status: domain.BookingCheckedIn},
		},
	}
	q := app.NewQueryService(repo, nil, time.Minute)

	st, err := q.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if st.TotalRooms != 4 || st.Occupied != 2 || st.Cleaning != 1 || st.Available != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	if st.OccupancyRate != 50 {
		t.Fatalf("occupancy = %v, want 50", st.OccupancyRate)
	}
	if st.PendingCheckIns != 1 {
		t.Fatalf("pending check-ins = %d, want 1", st.PendingCheckIns)
	}
}
