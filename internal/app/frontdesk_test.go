package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/app"
	"github.com/jruizdesign/HotelManagement/internal/domain"
	"github.com/jruizdesign/HotelManagement/internal/storage/memory"
)

// testClock hands out strictly increasing instants so store-assigned
// timestamps are distinct and ordering assertions are deterministic.
func testClock() func() time.Time {
	t := time.Date(2023, 11, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newFixture(t *testing.T) (*memory.Store, *app.FrontDeskService, *app.QueryService) {
	t.Helper()
	st := memory.NewWithClock(testClock())
	ctx := context.Background()
	rooms := []domain.Room{
		{ID: 101, Number: "101", Type: "Standard", Price: 120, Floor: 1, Capacity: 2, Status: domain.RoomOccupied},
		{ID: 102, Number: "102", Type: "Standard", Price: 120, Floor: 1, Capacity: 2, Status: domain.RoomCleaning},
		{ID: 103, Number: "103", Type: "Deluxe", Price: 180, Floor: 1, Capacity: 3, Status: domain.RoomAvailable},
	}
	for _, r := range rooms {
		if err := st.UpsertRoom(ctx, r); err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}
	if err := st.AppendLog(ctx, domain.ActionSystemInit, "store ready"); err != nil {
		t.Fatalf("seed log: %v", err)
	}
	return st, app.NewFrontDeskService(st, nil), app.NewQueryService(st, nil, time.Minute)
}

func TestUpdateRoomStatus_WritesRoomAndLogTogether(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	room, err := fd.UpdateRoomStatus(ctx, 102, domain.RoomAvailable)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if room.ID != 102 || room.Status != domain.RoomAvailable {
		t.Fatalf("unexpected room: %+v", room)
	}

	rooms, _ := q.ListRooms(ctx)
	for _, r := range rooms {
		if r.ID == 102 && r.Status != domain.RoomAvailable {
			t.Fatalf("list shows stale status: %+v", r)
		}
	}

	logs, _ := q.ListLogs(ctx)
	if len(logs) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(logs))
	}
	// new entry orders before everything that existed
	if logs[0].Action != domain.ActionUpdateRoom {
		t.Fatalf("newest entry action = %s", logs[0].Action)
	}
	if !strings.Contains(logs[0].Details, "Room 102") || !strings.Contains(logs[0].Details, "AVAILABLE") {
		t.Fatalf("unexpected details: %q", logs[0].Details)
	}
	if !logs[0].Timestamp.After(logs[1].Timestamp) {
		t.Fatalf("log ordering broken: %v !after %v", logs[0].Timestamp, logs[1].Timestamp)
	}
}

func TestUpdateRoomStatus_NotFoundLeavesStateUntouched(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	before, _ := q.ListRooms(ctx)
	logsBefore, _ := q.ListLogs(ctx)

	_, err := fd.UpdateRoomStatus(ctx, 999, domain.RoomCleaning)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	after, _ := q.ListRooms(ctx)
	logsAfter, _ := q.ListLogs(ctx)
	if len(after) != len(before) || len(logsAfter) != len(logsBefore) {
		t.Fatal("failed update mutated state")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("room %d changed: %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}
}

func TestUpdateRoomStatus_InvalidStatusRejectedBeforeIO(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	logsBefore, _ := q.ListLogs(ctx)
	_, err := fd.UpdateRoomStatus(ctx, 103, domain.RoomStatus("vacant"))
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus, got %v", err)
	}
	logsAfter, _ := q.ListLogs(ctx)
	if len(logsAfter) != len(logsBefore) {
		t.Fatal("invalid status produced a log entry")
	}
}

func TestUpdateRoomStatus_RepeatIsIdempotentButAuditsTwice(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	r1, err := fd.UpdateRoomStatus(ctx, 103, domain.RoomAvailable)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	r2, err := fd.UpdateRoomStatus(ctx, 103, domain.RoomAvailable)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if r1.Status != r2.Status || r2.Status != domain.RoomAvailable {
		t.Fatalf("states differ: %v vs %v", r1.Status, r2.Status)
	}

	// each call is a distinct audit event
	logs, _ := q.ListLogs(ctx)
	var updates int
	for _, e := range logs {
		if e.Action == domain.ActionUpdateRoom {
			updates++
		}
	}
	if updates != 2 {
		t.Fatalf("expected 2 audit entries, got %d", updates)
	}
}

func TestCreateBooking_Scenario(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	b, err := fd.CreateBooking(ctx, "Sarah Connor", 103, "2023-11-01", "2023-11-05")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.RoomID != 103 || b.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected booking: %+v", b)
	}
	// 4 nights at 180
	if b.Total != 720 {
		t.Fatalf("total = %v, want 720", b.Total)
	}
	if !strings.HasPrefix(b.ID, "BK-") || len(b.ID) < 10 {
		t.Fatalf("unexpected id format: %q", b.ID)
	}

	rooms, _ := q.ListRooms(ctx)
	for _, r := range rooms {
		if r.ID == 103 && r.Status != domain.RoomOccupied {
			t.Fatalf("room 103 not occupied after booking: %+v", r)
		}
	}

	bookings, _ := q.ListBookings(ctx)
	if len(bookings) != 1 || bookings[0].ID != b.ID {
		t.Fatalf("unexpected bookings: %+v", bookings)
	}

	logs, _ := q.ListLogs(ctx)
	if logs[0].Action != domain.ActionInsertBooking || !strings.Contains(logs[0].Details, "Sarah Connor") {
		t.Fatalf("unexpected newest log: %+v", logs[0])
	}
}

func TestCreateBooking_SingleNightMinimum(t *testing.T) {
	_, fd, _ := newFixture(t)

	b, err := fd.CreateBooking(context.Background(), "Jason Ruiz", 103, "2023-11-01", "2023-11-02")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.Total != 180 {
		t.Fatalf("total = %v, want 180 for one night", b.Total)
	}
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	for _, tc := range []struct{ in, out string }{
		{"2023-11-05", "2023-11-05"}, // equal
		{"2023-11-05", "2023-11-01"}, // reversed
		{"not-a-date", "2023-11-05"}, // malformed
	} {
		before, _ := q.ListLogs(ctx)
		_, err := fd.CreateBooking(ctx, "Sarah Connor", 103, tc.in, tc.out)
		if !errors.Is(err, domain.ErrInvalidDateRange) {
			t.Fatalf("(%s,%s): want ErrInvalidDateRange, got %v", tc.in, tc.out, err)
		}
		bookings, _ := q.ListBookings(ctx)
		after, _ := q.ListLogs(ctx)
		if len(bookings) != 0 || len(after) != len(before) {
			t.Fatalf("(%s,%s): failed booking mutated state", tc.in, tc.out)
		}
	}

	// room untouched
	r, _ := q.ListRooms(ctx)
	for _, room := range r {
		if room.ID == 103 && room.Status != domain.RoomAvailable {
			t.Fatalf("room 103 changed by failed booking: %+v", room)
		}
	}
}

func TestCreateBooking_EmptyGuestName(t *testing.T) {
	_, fd, _ := newFixture(t)

	_, err := fd.CreateBooking(context.Background(), "  ", 103, "2023-11-01", "2023-11-05")
	if !errors.Is(err, domain.ErrEmptyGuestName) {
		t.Fatalf("want ErrEmptyGuestName, got %v", err)
	}
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	_, fd, q := newFixture(t)
	ctx := context.Background()

	_, err := fd.CreateBooking(ctx, "Sarah Connor", 999, "2023-11-01", "2023-11-05")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	bookings, _ := q.ListBookings(ctx)
	if len(bookings) != 0 {
		t.Fatalf("booking created for unknown room: %+v", bookings)
	}
}

func TestCreateBooking_IDsNeverRepeat(t *testing.T) {
	_, fd, _ := newFixture(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		b, err := fd.CreateBooking(ctx, "Vivianna", 101, "2023-10-26", "2023-10-28")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate booking id %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestCreateBooking_OccupiedRoomStillBookable(t *testing.T) {
	// the front desk may override an occupied room
	_, fd, _ := newFixture(t)

	b, err := fd.CreateBooking(context.Background(), "Jason Ruiz", 101, "2023-10-25", "2023-10-29")
	if err != nil {
		t.Fatalf("booking occupied room failed: %v", err)
	}
	if b.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected status: %v", b.Status)
	}
}
