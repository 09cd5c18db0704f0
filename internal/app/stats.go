package app

import (
	"context"
	"math"

	"github.com/jruizdesign/HotelManagement/internal/domain"
)

// Stats are the dashboard panel numbers, computed from live data.
type Stats struct {
	TotalRooms      int     `json:"totalRooms"`
	Available       int     `json:"available"`
	Occupied        int     `json:"occupied"`
	Cleaning        int     `json:"cleaning"`
	Maintenance     int     `json:"maintenance"`
	OccupancyRate   float64 `json:"occupancyRate"` // percent, rounded
	PendingCheckIns int     `json:"pendingCheckIns"`
}

// DashboardStats aggregates room occupancy and pending check-ins. It reads
// through the same cached lists the collection endpoints use.
func (s *QueryService) DashboardStats(ctx context.Context) (Stats, error) {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return Stats{}, err
	}
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{TotalRooms: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case domain.RoomAvailable:
			st.Available++
		case domain.RoomOccupied:
			st.Occupied++
		case domain.RoomCleaning:
			st.Cleaning++
		case domain.RoomMaintenance:
			st.Maintenance++
		}
	}
	if st.TotalRooms > 0 {
		st.OccupancyRate = math.Round(float64(st.Occupied) / float64(st.TotalRooms) * 100)
	}
	for _, b := range bookings {
		if b.Status == domain.BookingConfirmed {
			st.PendingCheckIns++
		}
	}
	return st, nil
}
