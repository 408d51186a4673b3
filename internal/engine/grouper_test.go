package engine_test

import (
	"testing"
	"time"

	"orient_insight/internal/domain"
	"orient_insight/internal/engine"
)

func stayWindow(id int64, name string, in, out time.Time) domain.AccommodationStay {
	return domain.AccommodationStay{ID: id, HotelID: id, HotelName: name, CheckIn: in, CheckOut: out}
}

func TestGroupByHotel_SingleStayTakesEveryone(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "Hotel Registan", day(2026, time.June, 1), day(2026, time.June, 5)),
	}
	trs := []domain.Traveler{
		{ID: 1, FullName: "Karl Brandt"},
		// dates way outside the stay window: irrelevant with one stay
		{ID: 2, FullName: "Ines Moser", CustomCheckIn: ptr(day(2026, time.August, 1)), CustomCheckOut: ptr(day(2026, time.August, 3))},
	}
	res := engine.GroupByHotel(stays, trs)
	if len(res.Groups) != 1 || len(res.Groups[0].Travelers) != 2 {
		t.Fatalf("unexpected grouping: %+v", res)
	}
	if len(res.Unassigned) != 0 {
		t.Fatalf("single stay must never leave travelers unassigned")
	}
}

func TestGroupByHotel_ContainmentNotOverlap(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "Hotel A", day(2026, time.June, 1), day(2026, time.June, 5)),
		stayWindow(2, "Hotel B", day(2026, time.June, 5), day(2026, time.June, 10)),
	}
	// 06–09 Jun overlaps A only at its edge but is contained in B
	trs := []domain.Traveler{{
		ID: 1, FullName: "Lena Falk",
		CustomCheckIn:  ptr(day(2026, time.June, 6)),
		CustomCheckOut: ptr(day(2026, time.June, 9)),
	}}
	res := engine.GroupByHotel(stays, trs)
	if len(res.Groups[0].Travelers) != 0 {
		t.Fatalf("traveler wrongly assigned to Hotel A")
	}
	if len(res.Groups[1].Travelers) != 1 {
		t.Fatalf("traveler not assigned to Hotel B: %+v", res)
	}
}

func TestGroupByHotel_NoContainingStayGoesUnassigned(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "Hotel A", day(2026, time.June, 1), day(2026, time.June, 5)),
		stayWindow(2, "Hotel B", day(2026, time.June, 5), day(2026, time.June, 10)),
	}
	trs := []domain.Traveler{
		// spans both stays: contained in neither
		{ID: 1, CustomCheckIn: ptr(day(2026, time.June, 3)), CustomCheckOut: ptr(day(2026, time.June, 8))},
		// no custom dates on a multi-stay booking
		{ID: 2},
	}
	res := engine.GroupByHotel(stays, trs)
	if len(res.Unassigned) != 2 {
		t.Fatalf("unassigned = %d, want 2", len(res.Unassigned))
	}
}

func TestGroupByHotel_EmptyStays(t *testing.T) {
	res := engine.GroupByHotel(nil, []domain.Traveler{{ID: 1}, {ID: 2}})
	if len(res.Groups) != 0 || len(res.Unassigned) != 2 {
		t.Fatalf("empty stays must park everyone in unassigned: %+v", res)
	}
}

func TestGroupByHotel_SortOrder(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "Hotel Registan", day(2026, time.June, 1), day(2026, time.June, 5)),
	}
	trs := []domain.Traveler{
		{ID: 1, FullName: "Nina Weiss", LastName: "Weiss", Accommodation: "Ashgabat city hotel", RoomNumber: "2"},
		{ID: 2, FullName: "Ada Berg", LastName: "Berg", Accommodation: "Tashkent", RoomNumber: "10"},
		{ID: 3, FullName: "Cem Arslan", LastName: "Arslan", Accommodation: "Tashkent", RoomNumber: "10"},
		{ID: 4, FullName: "Rolf Kraus", LastName: "Kraus", Accommodation: "Samarkand old town", RoomNumber: "2"},
	}
	res := engine.GroupByHotel(stays, trs)
	got := res.Groups[0].Travelers

	// Uzbekistan bucket first; within it room "10" before room "2" (string
	// sort); Arslan before Berg on equal rooms; Turkmenistan bucket last.
	wantIDs := []int64{3, 2, 4, 1}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: got traveler %d, want %d (%+v)", i, got[i].ID, id, got)
		}
	}
}

func TestPairRooms_TwoAndThreeOccupants(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "Hotel Registan", day(2026, time.June, 1), day(2026, time.June, 5)),
	}
	trs := []domain.Traveler{
		{ID: 1, FullName: "Ada Berg", RoomPreference: "DBL", RoomNumber: "DBL-1"},
		{ID: 2, FullName: "Karl Brandt", RoomPreference: "DBL", RoomNumber: "DBL-1"},
		{ID: 3, FullName: "Cem Arslan", RoomPreference: "DBL", RoomNumber: "DBL-1"},
		{ID: 4, FullName: "Ines Moser", RoomPreference: "TWN", RoomNumber: "T-4"},
		{ID: 5, FullName: "Rolf Kraus", RoomPreference: "TWN", RoomNumber: "T-4"},
	}
	res := engine.GroupByHotel(stays, trs)
	pairs := res.Groups[0].RoomPairs
	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(pairs))
	}
	if pairs[0].RoomNumber != "DBL-1" || len(pairs[0].Travelers) != 3 {
		t.Fatalf("third occupant must join the pair, not vanish: %+v", pairs[0])
	}
	if pairs[1].RoomNumber != "T-4" || len(pairs[1].Travelers) != 2 {
		t.Fatalf("unexpected twin pair: %+v", pairs[1])
	}
}

func TestPairRooms_SinglesNeverPaired(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "Hotel Registan", day(2026, time.June, 1), day(2026, time.June, 5)),
	}
	trs := []domain.Traveler{
		{ID: 1, RoomPreference: "SNGL", RoomNumber: "12"},
		{ID: 2, RoomPreference: "SNGL", RoomNumber: "12"}, // data anomaly, surfaced not merged
		{ID: 3, RoomPreference: "DBL", RoomNumber: ""},    // no room number, no pair
	}
	res := engine.GroupByHotel(stays, trs)
	if len(res.Groups[0].RoomPairs) != 0 {
		t.Fatalf("singles paired: %+v", res.Groups[0].RoomPairs)
	}
}

func TestGroupByHotel_Deterministic(t *testing.T) {
	stays := []domain.AccommodationStay{
		stayWindow(1, "A", day(2026, time.June, 1), day(2026, time.June, 5)),
		stayWindow(2, "B", day(2026, time.June, 5), day(2026, time.June, 10)),
	}
	trs := []domain.Traveler{
		{ID: 1, LastName: "Zorn", RoomPreference: "DBL", RoomNumber: "3",
			CustomCheckIn: ptr(day(2026, time.June, 1)), CustomCheckOut: ptr(day(2026, time.June, 5))},
		{ID: 2, LastName: "Abel", RoomPreference: "DBL", RoomNumber: "3",
			CustomCheckIn: ptr(day(2026, time.June, 1)), CustomCheckOut: ptr(day(2026, time.June, 5))},
	}
	a := engine.GroupByHotel(stays, trs)
	b := engine.GroupByHotel(stays, trs)
	if a.Groups[0].Travelers[0].ID != b.Groups[0].Travelers[0].ID {
		t.Fatalf("ordering not stable across runs")
	}
	if a.Groups[0].Travelers[0].LastName != "Abel" {
		t.Fatalf("expected lexicographic last-name order, got %+v", a.Groups[0].Travelers)
	}
}
