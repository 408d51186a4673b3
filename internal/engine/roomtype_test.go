package engine

import (
	"testing"

	"orient_insight/internal/domain"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"dbl":     "DBL",
		" Twin ":  "TWN",
		"EZ":      "SNGL",
		"sgl":     "SNGL",
		"DZ":      "DBL",
		"pax":     "PAX",
		"triple":  "TRPL",
		"Suite":   "SUITE", // unknown codes pass through upper-cased
		"":        "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPairable(t *testing.T) {
	for _, p := range []string{"DBL", "twin", "DZ"} {
		if !Pairable(p) {
			t.Errorf("Pairable(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"SNGL", "EZ", "PAX", "Suite"} {
		if Pairable(p) {
			t.Errorf("Pairable(%q) = true, want false", p)
		}
	}
}

func TestMatchLine_DedupKeepsFirst(t *testing.T) {
	lines := []domain.RoomLine{
		{RoomType: "DBL", RoomsCount: 1},
		{RoomType: "double", RoomsCount: 9}, // same canonical code, later line loses
	}
	ln, ok := matchLine("DBL", lines)
	if !ok || ln.RoomsCount != 1 {
		t.Fatalf("matchLine picked wrong line: %+v ok=%v", ln, ok)
	}
}

func TestMaxGuests_UnknownDefaultsToOne(t *testing.T) {
	dict := domain.RoomTypeDict{"DBL": 2, "BROKEN": 0}
	if got := maxGuests(dict, "DBL"); got != 2 {
		t.Fatalf("maxGuests(DBL) = %d, want 2", got)
	}
	if got := maxGuests(dict, "YURT"); got != 1 {
		t.Fatalf("maxGuests(unknown) = %d, want 1", got)
	}
	if got := maxGuests(dict, "BROKEN"); got != 1 {
		t.Fatalf("maxGuests(non-positive dict entry) = %d, want 1", got)
	}
}
