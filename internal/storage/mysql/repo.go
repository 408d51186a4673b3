package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"orient_insight/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}

func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, upsertBookingSQL,
		b.ID,
		valStr(b.Reference),
		valTime(b.DepartureDate),
		valJSON(b.RawJSON),
	)
	return err
}

// UpsertStays writes the stay rows and replaces each stay's room lines in one
// transaction, so a reader never sees a stay priced with half-old lines.
func (r *Repo) UpsertStays(ctx context.Context, bookingID int64, ss []domain.AccommodationStay) error {
	if len(ss) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, st := range ss {
		if _, err := tx.ExecContext(ctx, upsertStaySQL,
			st.ID, bookingID, st.HotelID, st.HotelName, st.CheckIn, st.CheckOut, st.IsPrimary,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteRoomLinesSQL, st.ID); err != nil {
			return err
		}
		if len(st.RoomLines) == 0 {
			continue
		}
		values := make([]string, 0, len(st.RoomLines))
		args := make([]any, 0, len(st.RoomLines)*5)
		for _, ln := range st.RoomLines {
			values = append(values, "(?,?,?,?,?)")
			args = append(args, st.ID, ln.RoomType, ln.RoomsCount, ln.PricePerNight, ln.Currency)
		}
		if _, err := tx.ExecContext(ctx, insertRoomLinesPrefix+strings.Join(values, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) UpsertTravelers(ctx context.Context, bookingID int64, ts []domain.Traveler) error {
	if len(ts) == 0 {
		return nil
	}
	values := make([]string, 0, len(ts))
	args := make([]any, 0, len(ts)*9)
	for _, tr := range ts {
		values = append(values, "(?,?,?,?,?,?,?,?,?)")
		args = append(args,
			tr.ID,
			bookingID,
			nullStr(tr.FullName),
			nullStr(tr.LastName),
			nullStr(tr.RoomPreference),
			nullStr(tr.RoomNumber),
			nullStr(tr.Accommodation),
			valTime(tr.CustomCheckIn),
			valTime(tr.CustomCheckOut),
		)
	}
	sqlStr := insertTravelersPrefix + strings.Join(values, ",") + insertTravelersOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, getBookingSQL, id)

	var b domain.Booking
	var ref sql.NullString
	var dep sql.NullTime
	var raw []byte

	if err := row.Scan(&b.ID, &ref, &dep, &raw); err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}
	if ref.Valid {
		s := ref.String
		b.Reference = &s
	}
	if dep.Valid {
		t := dep.Time
		b.DepartureDate = &t
	}
	b.RawJSON = raw

	stays, err := r.stays(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	b.Stays = stays

	travelers, err := r.travelers(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	b.Travelers = travelers
	return b, nil
}

func (r *Repo) stays(ctx context.Context, bookingID int64) ([]domain.AccommodationStay, error) {
	rows, err := r.db.QueryContext(ctx, getStaysSQL, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AccommodationStay
	index := map[int64]int{}
	for rows.Next() {
		var st domain.AccommodationStay
		var name sql.NullString
		if err := rows.Scan(&st.ID, &st.HotelID, &name, &st.CheckIn, &st.CheckOut, &st.IsPrimary); err != nil {
			return nil, err
		}
		if name.Valid {
			st.HotelName = name.String
		}
		index[st.ID] = len(out)
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.db.QueryContext(ctx, getRoomLinesSQL, bookingID)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var stayID int64
		var ln domain.RoomLine
		var currency sql.NullString
		if err := lineRows.Scan(&stayID, &ln.RoomType, &ln.RoomsCount, &ln.PricePerNight, &currency); err != nil {
			return nil, err
		}
		if currency.Valid {
			ln.Currency = currency.String
		}
		if i, ok := index[stayID]; ok {
			out[i].RoomLines = append(out[i].RoomLines, ln)
		}
	}
	return out, lineRows.Err()
}

func (r *Repo) travelers(ctx context.Context, bookingID int64) ([]domain.Traveler, error) {
	rows, err := r.db.QueryContext(ctx, getTravelersSQL, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Traveler
	for rows.Next() {
		var tr domain.Traveler
		var full, last, pref, room, acc sql.NullString
		var cin, cout sql.NullTime
		if err := rows.Scan(&tr.ID, &full, &last, &pref, &room, &acc, &cin, &cout); err != nil {
			return nil, err
		}
		tr.FullName = full.String
		tr.LastName = last.String
		tr.RoomPreference = pref.String
		tr.RoomNumber = room.String
		tr.Accommodation = acc.String
		if cin.Valid {
			t := cin.Time
			tr.CustomCheckIn = &t
		}
		if cout.Valid {
			t := cout.Time
			tr.CustomCheckOut = &t
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

func (r *Repo) RoomTypes(ctx context.Context) (domain.RoomTypeDict, error) {
	rows, err := r.db.QueryContext(ctx, getRoomTypesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dict := domain.RoomTypeDict{}
	for rows.Next() {
		var code string
		var guests int
		if err := rows.Scan(&code, &guests); err != nil {
			return nil, err
		}
		dict[code] = guests
	}
	return dict, rows.Err()
}
