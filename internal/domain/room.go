package domain

// RoomStatus is the closed set of states a room can be in.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

type Room struct {
	ID       int64      `json:"id"`
	Number   string     `json:"number"`
	Type     string     `json:"type"` // Standard|Deluxe|Suite
	Price    float64    `json:"price"` // nightly rate
	Floor    int        `json:"floor"`
	Capacity int        `json:"capacity"`
	Status   RoomStatus `json:"status"`
}
