package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID, rm.Number, rm.Type, rm.Price, rm.Floor, rm.Capacity, string(rm.Status))
	return err
}

func (r *Repo) UpsertGuest(ctx context.Context, g domain.Guest) error {
	_, err := r.db.ExecContext(ctx, upsertGuestSQL, g.ID, g.Name)
	return err
}

func (r *Repo) AppendLog(ctx context.Context, action, details string) error {
	_, err := r.db.ExecContext(ctx, insertLogSQL, action, details)
	return err
}

// SetRoomStatus runs the status write and the audit append in one
// transaction. The row is locked first so the update cannot race another
// writer, and so an update to the current status (rows-affected 0 under
// the driver's changed-rows counting) is not mistaken for a missing room.
func (r *Repo) SetRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus, logDetails string) (domain.Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Room{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = ? FOR UPDATE`, roomID).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return domain.Room{}, domain.ErrNotFound
		}
		return domain.Room{}, err
	}

	if _, err := tx.ExecContext(ctx, setRoomStatusSQL, string(status), roomID); err != nil {
		return domain.Room{}, err
	}
	if _, err := tx.ExecContext(ctx, insertLogSQL, domain.ActionUpdateRoom, logDetails); err != nil {
		return domain.Room{}, err
	}

	rm, err := scanRoom(tx.QueryRowContext(ctx, getRoomSQL, roomID))
	if err != nil {
		return domain.Room{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Room{}, fmt.Errorf("commit: %w", err)
	}
	return rm, nil
}

// InsertBooking writes the booking, forces the room to occupied and appends
// the audit entry in one transaction, making the trigger-style side effect
// an explicit pair of writes inside the same boundary.
func (r *Repo) InsertBooking(ctx context.Context, b domain.Booking, logDetails string) (domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = ? FOR UPDATE`, b.RoomID).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	if _, err := tx.ExecContext(ctx, insertBookingSQL,
		b.ID, b.RoomID, b.GuestName, b.CheckIn, b.CheckOut, b.Total, string(b.Status)); err != nil {
		return domain.Booking{}, err
	}
	if _, err := tx.ExecContext(ctx, setRoomStatusSQL, string(domain.RoomOccupied), b.RoomID); err != nil {
		return domain.Booking{}, err
	}
	if _, err := tx.ExecContext(ctx, insertLogSQL, domain.ActionInsertBooking, logDetails); err != nil {
		return domain.Booking{}, err
	}

	// creation instant is store-assigned; read it back for the caller
	if err := tx.QueryRowContext(ctx, `SELECT created_at FROM bookings WHERE id = ?`, b.ID).Scan(&b.CreatedAt); err != nil {
		return domain.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Booking{}, fmt.Errorf("commit: %w", err)
	}
	return b, nil
}

func (r *Repo) GetRoom(ctx context.Context, roomID int64) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, roomID))
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		var status string
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Type, &rm.Price, &rm.Floor, &rm.Capacity, &status); err != nil {
			return nil, err
		}
		rm.Status = domain.RoomStatus(status)
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var status string
		var checkIn, checkOut time.Time
		if err := rows.Scan(&b.ID, &b.RoomID, &b.GuestName, &checkIn, &checkOut, &b.Total, &status, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.CheckIn = checkIn.Format(domain.DateLayout)
		b.CheckOut = checkOut.Format(domain.DateLayout)
		b.Status = domain.BookingStatus(status)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	rows, err := r.db.QueryContext(ctx, listGuestsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, listLogsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanRoom(row rowScanner) (domain.Room, error) {
	var rm domain.Room
	var status string
	if err := row.Scan(&rm.ID, &rm.Number, &rm.Type, &rm.Price, &rm.Floor, &rm.Capacity, &status); err != nil {
		return domain.Room{}, err
	}
	rm.Status = domain.RoomStatus(status)
	return rm, nil
}
