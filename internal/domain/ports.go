package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

type BookingRepository interface {
	// Write paths
	UpsertBooking(ctx context.Context, b Booking) error
	UpsertStays(ctx context.Context, bookingID int64, ss []AccommodationStay) error
	UpsertTravelers(ctx context.Context, bookingID int64, ts []Traveler) error
	LogMiss(ctx context.Context, id int64, status int, reason string) error

	// Read paths
	GetBooking(ctx context.Context, id int64) (Booking, error)
	RoomTypes(ctx context.Context) (RoomTypeDict, error)
}

type BackendClient interface {
	GetBooking(ctx context.Context, id int64) (map[string]any, error)
	GetTravelers(ctx context.Context, id int64) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models

// CostReport aggregates one CostBreakdown per hotel group for a booking.
type CostReport struct {
	BookingID       int64           `json:"booking_id"`
	Groups          []GroupCost     `json:"groups"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	Currency        string          `json:"currency"`
	UnassignedCount int             `json:"unassigned_count"`
	Warnings        []string        `json:"warnings,omitempty"`
}

type GroupCost struct {
	StayID    int64         `json:"stay_id"`
	HotelID   int64         `json:"hotel_id"`
	HotelName string        `json:"hotel_name"`
	Breakdown CostBreakdown `json:"breakdown"`
}

// RoomingList is the presentation-ready grouping for a booking.
type RoomingList struct {
	BookingID       int64        `json:"booking_id"`
	Groups          []HotelGroup `json:"groups"`
	Unassigned      []Traveler   `json:"unassigned"`
	UnassignedCount int          `json:"unassigned_count"`
}
