package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"orient_insight/internal/adapters/observability"
	"orient_insight/internal/domain"
	"orient_insight/internal/engine"
)

type QueryService struct {
	repo     domain.BookingRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.BookingRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// CostReport groups the booking's travelers by stay and prices every group.
// The engine result is memoized under a hash of its inputs, so repeated
// reads of an unchanged booking never recompute and an edited booking never
// hits a stale entry.
func (s *QueryService) CostReport(ctx context.Context, bookingID int64) (domain.CostReport, error) {
	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return domain.CostReport{}, err
	}
	dict, err := s.repo.RoomTypes(ctx)
	if err != nil {
		return domain.CostReport{}, fmt.Errorf("load room types: %w", err)
	}

	key := fmt.Sprintf("cost:%d", bookingID)
	hash := inputHash(b, dict)
	var memo costMemo
	if ok, _ := s.cache.Get(ctx, key, &memo); ok && memo.Hash == hash {
		return memo.Report, nil
	}

	observability.ObserveEngine("cost")
	rep := buildCostReport(b, dict)
	_ = s.cache.Set(ctx, key, costMemo{Hash: hash, Report: rep}, int(s.cacheTTL.Seconds()))
	return rep, nil
}

// costMemo / roomingMemo pin the cached result to the hash of the engine
// inputs it was computed from: an edited booking reads as a miss, never as a
// stale hit.
type costMemo struct {
	Hash   string            `json:"hash"`
	Report domain.CostReport `json:"report"`
}

type roomingMemo struct {
	Hash string             `json:"hash"`
	List domain.RoomingList `json:"list"`
}

// RoomingList returns the grouped, sorted, paired roster for a booking.
func (s *QueryService) RoomingList(ctx context.Context, bookingID int64) (domain.RoomingList, error) {
	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return domain.RoomingList{}, err
	}

	key := fmt.Sprintf("rooming:%d", bookingID)
	hash := inputHash(b, nil)
	var memo roomingMemo
	if ok, _ := s.cache.Get(ctx, key, &memo); ok && memo.Hash == hash {
		return memo.List, nil
	}

	observability.ObserveEngine("rooming")
	g := engine.GroupByHotel(b.Stays, b.Travelers)
	rl := domain.RoomingList{
		BookingID:       b.ID,
		Groups:          g.Groups,
		Unassigned:      g.Unassigned,
		UnassignedCount: len(g.Unassigned),
	}
	_ = s.cache.Set(ctx, key, roomingMemo{Hash: hash, List: rl}, int(s.cacheTTL.Seconds()))
	return rl, nil
}

func buildCostReport(b domain.Booking, dict domain.RoomTypeDict) domain.CostReport {
	g := engine.GroupByHotel(b.Stays, b.Travelers)

	rep := domain.CostReport{
		BookingID:       b.ID,
		GrandTotal:      decimal.Zero,
		Currency:        "USD",
		UnassignedCount: len(g.Unassigned),
	}
	for i, grp := range g.Groups {
		bd := engine.ComputeCost(grp.Stay, grp.Travelers, dict)
		rep.Groups = append(rep.Groups, domain.GroupCost{
			StayID:    grp.Stay.ID,
			HotelID:   grp.Stay.HotelID,
			HotelName: grp.Stay.HotelName,
			Breakdown: bd,
		})
		rep.GrandTotal = rep.GrandTotal.Add(bd.Total)
		if i == 0 && bd.Currency != "" {
			rep.Currency = bd.Currency
		}
		for _, e := range bd.ExtraNights {
			if e.Unmatched {
				rep.Warnings = append(rep.Warnings,
					fmt.Sprintf("no room price for %s (%d extra nights at %s); enter a price manually", e.FullName, e.Nights, grp.Stay.HotelName))
			}
		}
		if bd.InvalidInput {
			rep.Warnings = append(rep.Warnings,
				fmt.Sprintf("stay at %s has incomplete dates or counts; amounts zeroed", grp.Stay.HotelName))
		}
	}
	if rep.UnassignedCount > 0 {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("%d traveler(s) not assigned to any hotel", rep.UnassignedCount))
	}
	return rep
}

// inputHash derives the memoization key fragment from everything the engine
// reads. Any edit to stays, travelers, or the room-type dict changes the key.
func inputHash(b domain.Booking, dict domain.RoomTypeDict) string {
	payload := struct {
		Stays     []domain.AccommodationStay
		Travelers []domain.Traveler
		Dict      domain.RoomTypeDict
	}{b.Stays, b.Travelers, dict}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "raw"
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
