package mysql

const upsertBookingSQL = `
INSERT INTO bookings
  (id, reference, departure_date, raw)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  reference      = VALUES(reference),
  departure_date = VALUES(departure_date),
  raw            = VALUES(raw),
  updated_at     = CURRENT_TIMESTAMP
`

const upsertStaySQL = `
INSERT INTO stays
  (id, booking_id, hotel_id, hotel_name, check_in, check_out, is_primary)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  booking_id = VALUES(booking_id),
  hotel_id   = VALUES(hotel_id),
  hotel_name = VALUES(hotel_name),
  check_in   = VALUES(check_in),
  check_out  = VALUES(check_out),
  is_primary = VALUES(is_primary)
`

// Room lines carry no stable upstream id, so a stay's lines are replaced
// wholesale inside the UpsertStays transaction.
const deleteRoomLinesSQL = `DELETE FROM room_lines WHERE stay_id = ?`

const insertRoomLinesPrefix = "INSERT INTO room_lines\n  (stay_id, room_type, rooms_count, price_per_night, currency)\nVALUES "

const insertTravelersPrefix = "INSERT INTO travelers\n  (id, booking_id, full_name, last_name, room_preference, room_number, accommodation, custom_check_in, custom_check_out)\nVALUES "

// COALESCE keeps the old value when the new row carries NULL, mirroring how
// sparse backend rows should never blank out hand-corrected data.
const insertTravelersOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  full_name        = COALESCE(VALUES(full_name), travelers.full_name),\n" +
	"  last_name        = COALESCE(VALUES(last_name), travelers.last_name),\n" +
	"  room_preference  = COALESCE(VALUES(room_preference), travelers.room_preference),\n" +
	"  room_number      = COALESCE(VALUES(room_number), travelers.room_number),\n" +
	"  accommodation    = COALESCE(VALUES(accommodation), travelers.accommodation),\n" +
	"  custom_check_in  = VALUES(custom_check_in),\n" +
	"  custom_check_out = VALUES(custom_check_out)\n"

const insertMissSQL = `
INSERT INTO import_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getBookingSQL = `
SELECT id, reference, departure_date, raw
FROM bookings
WHERE id = ?
`

const getStaysSQL = `
SELECT id, hotel_id, hotel_name, check_in, check_out, is_primary
FROM stays
WHERE booking_id = ?
ORDER BY check_in, id
`

const getRoomLinesSQL = `
SELECT stay_id, room_type, rooms_count, price_per_night, currency
FROM room_lines
WHERE stay_id IN (SELECT id FROM stays WHERE booking_id = ?)
ORDER BY stay_id, room_type
`

const getTravelersSQL = `
SELECT id, full_name, last_name, room_preference, room_number, accommodation, custom_check_in, custom_check_out
FROM travelers
WHERE booking_id = ?
ORDER BY id
`

const getRoomTypesSQL = `
SELECT code, max_guests
FROM room_types
`
