package domain

import "github.com/shopspring/decimal"

// CostBreakdown is the Cost Allocator output for one stay. Malformed input
// never produces an error, only zeroed amounts plus InvalidInput; the
// allocator runs against half-filled form state and must stay usable.
type CostBreakdown struct {
	ByRoomType   []RoomTypeSubtotal `json:"by_room_type"`
	ExtraNights  []ExtraNightCharge `json:"extra_nights"`
	Total        decimal.Decimal    `json:"total"`
	Currency     string             `json:"currency"`
	Nights       int                `json:"nights"`
	TotalRooms   int                `json:"total_rooms"`
	TotalGuests  int                `json:"total_guests"`
	PAXMode      bool               `json:"pax_mode"`
	InvalidInput bool               `json:"invalid_input,omitempty"`
}

// RoomTypeSubtotal is one line of the per-room-type breakdown. RoomsOrPax is
// a room count for standard types and a head count for PAX.
type RoomTypeSubtotal struct {
	Code       string          `json:"code"`
	RoomsOrPax int             `json:"rooms_or_pax"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// ExtraNightCharge bills nights a traveler spends outside the group window.
// Unmatched means no room line covered the traveler's preference: the charge
// is zero and the caller must ask for a manual price.
type ExtraNightCharge struct {
	TravelerID    int64           `json:"traveler_id"`
	FullName      string          `json:"full_name"`
	Nights        int             `json:"nights"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Unmatched     bool            `json:"unmatched,omitempty"`
}
