package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is one tour-operator file: a group of travelers plus the hotel
// segments booked for them.
type Booking struct {
	ID            int64
	Reference     *string
	DepartureDate *time.Time
	Stays         []AccommodationStay
	Travelers     []Traveler
	RawJSON       []byte // full backend payload
}

// AccommodationStay is a single hotel segment with its own date window and
// room-type price lines. IsPrimary marks the stay that carries extra-night
// proration for travelers whose personal dates extend past the group window.
type AccommodationStay struct {
	ID        int64      `json:"id"`
	HotelID   int64      `json:"hotel_id"`
	HotelName string     `json:"hotel_name"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  time.Time  `json:"check_out"`
	IsPrimary bool       `json:"is_primary"`
	RoomLines []RoomLine `json:"room_lines"`
}

// RoomLine prices one room type within a stay. For the sentinel type PAX,
// RoomsCount is a head count and the price is per person per night.
type RoomLine struct {
	RoomType      string          `json:"room_type"`
	RoomsCount    int             `json:"rooms_count"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Currency      string          `json:"currency"`
}

type Traveler struct {
	ID             int64      `json:"id"`
	FullName       string     `json:"full_name"`
	LastName       string     `json:"last_name,omitempty"`
	RoomPreference string     `json:"room_preference,omitempty"`
	RoomNumber     string     `json:"room_number,omitempty"`
	Accommodation  string     `json:"accommodation,omitempty"` // free text, used for placement classification
	CustomCheckIn  *time.Time `json:"custom_check_in,omitempty"`
	CustomCheckOut *time.Time `json:"custom_check_out,omitempty"`
}

// RoomTypeDict maps a room-type code to its maximum guests per room.
// Codes missing from the dict count as one guest per room.
type RoomTypeDict map[string]int
