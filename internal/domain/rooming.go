package domain

// HotelGroup is one stay together with the travelers assigned to it and the
// room pairs formed among them.
type HotelGroup struct {
	Stay      AccommodationStay `json:"stay"`
	Travelers []Traveler        `json:"travelers"`
	RoomPairs []RoomPair        `json:"room_pairs"`
}

// RoomPair holds every traveler sharing one room number in a two-occupant
// room type. Dirty data can put more than two travelers in a pair; consumers
// must not assume exactly two members.
type RoomPair struct {
	RoomNumber string     `json:"room_number"`
	Travelers  []Traveler `json:"travelers"`
}

// GroupingResult is the Roster Grouper output. Unassigned holds travelers
// whose window fits no stay (or who lack custom dates on a multi-stay
// booking); callers surface them as a count, never drop them.
type GroupingResult struct {
	Groups     []HotelGroup `json:"groups"`
	Unassigned []Traveler   `json:"unassigned"`
}
