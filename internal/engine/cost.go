// Package engine holds the accommodation cost and rooming allocation core:
// two pure functions over plain records, no I/O, no shared state. Callers
// fetch and persist data; the engine only computes.
package engine

import (
	"github.com/shopspring/decimal"

	"orient_insight/internal/domain"
)

const defaultCurrency = "USD"

// ComputeCost turns one stay's room lines plus the travelers assigned to it
// into a cost breakdown: per-room-type subtotals, per-traveler extra-night
// charges, and the grand total. It never fails; malformed input yields zeroed
// amounts with InvalidInput set so the UI stays live mid-edit.
//
// Standard lines price per room per night. A PAX line prices per person per
// night: RoomsCount is a head count and no rooms are tallied. Extra-night
// proration runs only on the primary stay and only for travelers carrying
// both custom dates.
func ComputeCost(stay domain.AccommodationStay, travelers []domain.Traveler, dict domain.RoomTypeDict) domain.CostBreakdown {
	bd := domain.CostBreakdown{
		Total:    decimal.Zero,
		Currency: resolveCurrency(stay.RoomLines),
		Nights:   nights(stay.CheckIn, stay.CheckOut),
	}
	if bd.Nights <= 0 {
		// Cannot prorate against a zero-length window; emit empty rows so
		// the form still renders one line per configured room type.
		bd.InvalidInput = true
		for _, ln := range stay.RoomLines {
			bd.ByRoomType = append(bd.ByRoomType, domain.RoomTypeSubtotal{
				Code:       Normalize(ln.RoomType),
				RoomsOrPax: clampCount(ln.RoomsCount),
				Subtotal:   decimal.Zero,
			})
		}
		return bd
	}

	nightsDec := decimal.NewFromInt(int64(bd.Nights))
	for _, ln := range stay.RoomLines {
		count := ln.RoomsCount
		if count < 0 {
			count = 0
			bd.InvalidInput = true
		}
		code := Normalize(ln.RoomType)
		sub := ln.PricePerNight.Mul(decimal.NewFromInt(int64(count))).Mul(nightsDec)
		if code == RoomPAX {
			bd.PAXMode = true
			bd.TotalGuests += count
		} else {
			bd.TotalRooms += count
			bd.TotalGuests += count * maxGuests(dict, code)
		}
		// Zero-count lines still get a row: the UI shows an empty line.
		bd.ByRoomType = append(bd.ByRoomType, domain.RoomTypeSubtotal{
			Code:       code,
			RoomsOrPax: count,
			Subtotal:   sub,
		})
		bd.Total = bd.Total.Add(sub)
	}

	if stay.IsPrimary {
		bd.ExtraNights = extraNightCharges(stay, travelers)
		for _, e := range bd.ExtraNights {
			bd.Total = bd.Total.Add(e.Subtotal)
		}
	}
	return bd
}

// extraNightCharges bills the nights a traveler's personal window extends
// past the group window, at the price of the room line matching their
// preference. No matching line is not an error: the charge is kept with a
// zero amount and Unmatched set, for the operator to price by hand.
func extraNightCharges(stay domain.AccommodationStay, travelers []domain.Traveler) []domain.ExtraNightCharge {
	stayIn := startOfDay(stay.CheckIn)
	stayOut := startOfDay(stay.CheckOut)

	var out []domain.ExtraNightCharge
	for _, tr := range travelers {
		if tr.CustomCheckIn == nil || tr.CustomCheckOut == nil {
			continue
		}
		tIn := startOfDay(*tr.CustomCheckIn)
		tOut := startOfDay(*tr.CustomCheckOut)
		if !overlaps(stayIn, stayOut, tIn, tOut) {
			continue
		}
		extra := 0
		if tIn.Before(stayIn) {
			extra += daysBetween(tIn, stayIn)
		}
		if tOut.After(stayOut) {
			extra += daysBetween(stayOut, tOut)
		}
		if extra <= 0 {
			continue
		}
		ch := domain.ExtraNightCharge{
			TravelerID:    tr.ID,
			FullName:      tr.FullName,
			Nights:        extra,
			PricePerNight: decimal.Zero,
			Subtotal:      decimal.Zero,
		}
		if ln, ok := matchLine(tr.RoomPreference, stay.RoomLines); ok {
			ch.PricePerNight = ln.PricePerNight
			ch.Subtotal = ln.PricePerNight.Mul(decimal.NewFromInt(int64(extra)))
		} else {
			ch.Unmatched = true
		}
		out = append(out, ch)
	}
	return out
}

// resolveCurrency takes the first line with a currency set, else USD. Lines
// are never converted; a stay is assumed to price in one currency throughout.
func resolveCurrency(lines []domain.RoomLine) string {
	for _, ln := range lines {
		if ln.Currency != "" {
			return ln.Currency
		}
	}
	return defaultCurrency
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
