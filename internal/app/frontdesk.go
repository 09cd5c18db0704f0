package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jruizdesign/HotelManagement/internal/domain"
)

// FrontDeskService holds the mutating operations: room status transitions
// and booking creation. Every mutation pairs the entity write with an
// audit-log append at the repository boundary and evicts the affected
// read caches afterwards.
type FrontDeskService struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewFrontDeskService(r domain.Repository, cache domain.Cache) *FrontDeskService {
	return &FrontDeskService{repo: r, cache: cache}
}

// UpdateRoomStatus sets the room's status and appends the matching audit
// entry. Transitions are permissive: any valid status may follow any other.
func (s *FrontDeskService) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) (domain.Room, error) {
	if !status.Valid() {
		return domain.Room{}, domain.ErrInvalidStatus
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return domain.Room{}, err
	}

	details := fmt.Sprintf("Room %s status updated to %s", room.Number, strings.ToUpper(string(status)))
	updated, err := s.repo.SetRoomStatus(ctx, roomID, status, details)
	if err != nil {
		return domain.Room{}, err
	}

	if s.cache != nil {
		s.invalidate(ctx, keyRooms, keyLogs)
	}
	return updated, nil
}

// CreateBooking inserts a confirmed booking, forces the room to "occupied"
// (the one cross-entity side effect in this core) and appends the audit
// entry, all through a single repository transaction.
//
// The total charged is price x nights. The room's availability is
// deliberately not checked first: the front desk may re-book an occupied
// room as a manual override.
func (s *FrontDeskService) CreateBooking(ctx context.Context, guestName string, roomID int64, checkIn, checkOut string) (domain.Booking, error) {
	if strings.TrimSpace(guestName) == "" {
		return domain.Booking{}, domain.ErrEmptyGuestName
	}
	nights, err := domain.Nights(checkIn, checkOut)
	if err != nil {
		return domain.Booking{}, err
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return domain.Booking{}, err
	}

	b := domain.Booking{
		ID:        newBookingID(),
		RoomID:    roomID,
		GuestName: guestName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Total:     room.Price * float64(nights),
		Status:    domain.BookingConfirmed,
	}

	details := fmt.Sprintf("New reservation created for %s", guestName)
	created, err := s.repo.InsertBooking(ctx, b, details)
	if err != nil {
		return domain.Booking{}, err
	}

	if s.cache != nil {
		s.invalidate(ctx, keyRooms, keyBookings, keyLogs)
	}
	return created, nil
}

func (s *FrontDeskService) invalidate(ctx context.Context, keys ...string) {
	for _, k := range keys {
		_ = s.cache.Del(ctx, k)
	}
}

// newBookingID keeps the human-readable "BK-" prefix of the front-desk
// reference codes but backs it with a UUID so IDs cannot collide.
func newBookingID() string {
	return "BK-" + uuid.NewString()
}
