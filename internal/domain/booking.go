package domain

import "time"

// BookingStatus tracks a reservation through the front-desk lifecycle.
// Only "confirmed" is assigned by this core; check-in/check-out advancement
// happens outside it.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
)

// DateLayout is the calendar-date wire format for check-in/check-out.
const DateLayout = "2006-01-02"

type Booking struct {
	ID        string        `json:"id"`
	RoomID    int64         `json:"roomId"`
	GuestName string        `json:"guestName"`
	CheckIn   string        `json:"checkIn"`  // DateLayout
	CheckOut  string        `json:"checkOut"` // DateLayout
	Total     float64       `json:"total"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Nights returns the stay length in nights for an ordered date pair.
// It fails with ErrInvalidDateRange when either date is malformed or
// checkOut is not strictly after checkIn.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	n := int(out.Sub(in) / (24 * time.Hour))
	if n <= 0 {
		return 0, ErrInvalidDateRange
	}
	return n, nil
}
