package shared

import "github.com/jruizdesign/HotelManagement/internal/domain"

// Demo property fixture: the eight rooms across two floors plus the
// in-house guests and bookings the dashboard ships with. cmd/seed loads
// these into MySQL; the memory backend loads them at construction.
var SeedRooms = []domain.Room{
	{ID: 101, Number: "101", Type: "Standard", Price: 120, Floor: 1, Capacity: 2, Status: domain.RoomOccupied},
	{ID: 102, Number: "102", Type: "Standard", Price: 120, Floor: 1, Capacity: 2, Status: domain.RoomCleaning},
	{ID: 103, Number: "103", Type: "Deluxe", Price: 180, Floor: 1, Capacity: 3, Status: domain.RoomAvailable},
	{ID: 104, Number: "104", Type: "Deluxe", Price: 180, Floor: 1, Capacity: 3, Status: domain.RoomMaintenance},
	{ID: 201, Number: "201", Type: "Suite", Price: 350, Floor: 2, Capacity: 4, Status: domain.RoomAvailable},
	{ID: 202, Number: "202", Type: "Suite", Price: 350, Floor: 2, Capacity: 4, Status: domain.RoomOccupied},
	{ID: 203, Number: "203", Type: "Standard", Price: 120, Floor: 2, Capacity: 2, Status: domain.RoomAvailable},
	{ID: 204, Number: "204", Type: "Standard", Price: 120, Floor: 2, Capacity: 2, Status: domain.RoomAvailable},
}

var SeedGuests = []domain.Guest{
	{ID: 1, Name: "Jason Ruiz"},
	{ID: 2, Name: "Vivianna"},
	{ID: 3, Name: "Sarah Connor"},
}

var SeedBookings = []domain.Booking{
	{ID: "BK-7821", RoomID: 101, GuestName: "Jason Ruiz", CheckIn: "2023-10-25", CheckOut: "2023-10-29", Total: 480, Status: domain.BookingCheckedIn},
	{ID: "BK-7822", RoomID: 202, GuestName: "Vivianna", CheckIn: "2023-10-26", CheckOut: "2023-10-28", Total: 700, Status: domain.BookingCheckedIn},
	{ID: "BK-7823", RoomID: 103, GuestName: "Sarah Connor", CheckIn: "2023-11-01", CheckOut: "2023-11-05", Total: 720, Status: domain.BookingConfirmed},
}
