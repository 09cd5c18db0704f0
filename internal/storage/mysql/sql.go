package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (id, number, type, price, floor, capacity, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  number     = VALUES(number),
  type       = VALUES(type),
  price      = VALUES(price),
  floor      = VALUES(floor),
  capacity   = VALUES(capacity),
  status     = VALUES(status),
  updated_at = CURRENT_TIMESTAMP
`

const upsertGuestSQL = `
INSERT INTO guests (id, name)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE name = VALUES(name)
`

// Timestamps come from the database clock so ordering is consistent
// across clients; the column is TIMESTAMP(6) to keep ties rare.
const insertLogSQL = `
INSERT INTO logs (action, details) VALUES (?, ?)
`

const insertBookingSQL = `
INSERT INTO bookings
  (id, room_id, guest_name, check_in, check_out, total, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const setRoomStatusSQL = `
UPDATE rooms SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getRoomSQL = `
SELECT id, number, type, price, floor, capacity, status
FROM rooms
WHERE id = ?
`

const listRoomsSQL = `
SELECT id, number, type, price, floor, capacity, status
FROM rooms
ORDER BY id
`

const listBookingsSQL = `
SELECT id, room_id, guest_name, check_in, check_out, total, status, created_at
FROM bookings
ORDER BY created_at DESC, id DESC
`

const listGuestsSQL = `
SELECT id, name FROM guests ORDER BY id
`

// Newest first; id DESC breaks same-microsecond ties in insertion order.
const listLogsSQL = `
SELECT id, action, details, created_at
FROM logs
ORDER BY created_at DESC, id DESC
`
