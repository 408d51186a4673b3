package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMapStay_AliasesAndFormats(t *testing.T) {
	m := map[string]any{
		"id":        3.0,
		"hotelId":   12.0,
		"hotel":     map[string]any{"name": "Hotel Minorai"},
		"date_from": "01.06.2026", // legacy backend layout
		"date_to":   "2026-06-05",
		"primary":   "true",
		"rooms": []any{
			map[string]any{"type": "TWN", "qty": "2", "rate": "44,50"},
		},
	}
	st := mapStay(m)

	if st.ID != 3 || st.HotelID != 12 || st.HotelName != "Hotel Minorai" {
		t.Fatalf("unexpected stay identity: %+v", st)
	}
	if !st.IsPrimary {
		t.Fatalf("primary flag not parsed")
	}
	if st.CheckIn != time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("check-in = %v", st.CheckIn)
	}
	if st.CheckOut != time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("check-out = %v", st.CheckOut)
	}
	if len(st.RoomLines) != 1 {
		t.Fatalf("room lines = %+v", st.RoomLines)
	}
	ln := st.RoomLines[0]
	if ln.RoomType != "TWN" || ln.RoomsCount != 2 {
		t.Fatalf("unexpected line: %+v", ln)
	}
	if !ln.PricePerNight.Equal(decimal.RequireFromString("44.5")) {
		t.Fatalf("comma price not parsed: %s", ln.PricePerNight)
	}
}

func TestMapTravelers(t *testing.T) {
	rows := []map[string]any{
		{
			"tourist_id": 8.0, "name": "Omar Rashidov", "surname": "Rashidov",
			"roomType": "DZ", "room": "204", "placement": "Tashkent",
			"date_from": "2026-05-29", "date_to": "2026-06-05",
		},
		{"id": 9.0, "full_name": "Vera List"}, // sparse rows stay valid
	}
	ts := mapTravelers(rows)
	if len(ts) != 2 {
		t.Fatalf("travelers = %d", len(ts))
	}
	tr := ts[0]
	if tr.ID != 8 || tr.LastName != "Rashidov" || tr.RoomPreference != "DZ" || tr.RoomNumber != "204" {
		t.Fatalf("unexpected traveler: %+v", tr)
	}
	if tr.CustomCheckIn == nil || tr.CustomCheckOut == nil {
		t.Fatalf("custom dates not parsed: %+v", tr)
	}
	if ts[1].CustomCheckIn != nil {
		t.Fatalf("missing dates must stay nil")
	}
}

func TestMapBooking_Reference(t *testing.T) {
	b := mapBooking(501, map[string]any{"bookingNumber": "OI-2026-501"})
	if b.ID != 501 || b.Reference == nil || *b.Reference != "OI-2026-501" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if len(b.RawJSON) == 0 {
		t.Fatalf("raw payload not retained")
	}
}
