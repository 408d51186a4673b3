package engine

import (
	"strings"

	"orient_insight/internal/domain"
)

// Canonical room-type codes.
const (
	RoomSingle = "SNGL"
	RoomDouble = "DBL"
	RoomTwin   = "TWN"
	RoomTriple = "TRPL"
	RoomPAX    = "PAX"
)

// ambiguousTwin marks codes that mean "two-bed room" without saying which
// kind. They resolve to DBL unless the stay only prices TWN (see matchLine).
const ambiguousTwin = "DZ"

/********** alias registry (single source of truth) **********/

var roomTypeAliases = map[string]string{
	"SNGL":   RoomSingle,
	"SGL":    RoomSingle,
	"EZ":     RoomSingle,
	"SINGLE": RoomSingle,
	"DBL":    RoomDouble,
	"DOUBLE": RoomDouble,
	"DZ":     RoomDouble, // preferred resolution; matchLine applies the TWN fallback
	"TWN":    RoomTwin,
	"TWIN":   RoomTwin,
	"TRPL":   RoomTriple,
	"TRIPLE": RoomTriple,
	"TRP":    RoomTriple,
	"PAX":    RoomPAX,
}

// Normalize maps a raw room-type string onto its canonical code. Unknown
// strings come back trimmed and upper-cased so they still compare stably.
func Normalize(code string) string {
	up := strings.ToUpper(strings.TrimSpace(code))
	if c, ok := roomTypeAliases[up]; ok {
		return c
	}
	return up
}

// Pairable reports whether a room preference belongs to a two-occupant type.
// Singles are never paired even when they share a room number.
func Pairable(pref string) bool {
	c := Normalize(pref)
	return c == RoomDouble || c == RoomTwin
}

func maxGuests(dict domain.RoomTypeDict, code string) int {
	if n, ok := dict[code]; ok && n > 0 {
		return n
	}
	return 1
}

// matchLine finds the room line covering a traveler's preference. The DZ
// tie-break: an ambiguous two-bed preference takes the DBL line when one
// exists, else the TWN line, else no match.
func matchLine(pref string, lines []domain.RoomLine) (domain.RoomLine, bool) {
	byCode := make(map[string]domain.RoomLine, len(lines))
	for _, ln := range lines {
		c := Normalize(ln.RoomType)
		if _, seen := byCode[c]; !seen {
			byCode[c] = ln
		}
	}
	if strings.ToUpper(strings.TrimSpace(pref)) == ambiguousTwin {
		if ln, ok := byCode[RoomDouble]; ok {
			return ln, true
		}
		if ln, ok := byCode[RoomTwin]; ok {
			return ln, true
		}
		return domain.RoomLine{}, false
	}
	ln, ok := byCode[Normalize(pref)]
	return ln, ok
}
