package app

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"orient_insight/internal/domain"
)

/********** alias registries (single source of truth) **********/

var stayAliases = map[string][]string{
	"hotel_id":   {"hotel_id", "hotelId", "hotel.id"},
	"hotel_name": {"hotel_name", "hotelName", "hotel.name", "hotel"},
	"check_in":   {"check_in", "checkin", "date_from", "dateFrom", "arrival"},
	"check_out":  {"check_out", "checkout", "date_to", "dateTo", "departure"},
	"primary":    {"is_primary", "isPrimary", "primary"},
	"rooms":      {"room_lines", "rooms", "room_types", "roomTypes"},
}

var roomLineAliases = map[string][]string{
	"type":     {"room_type", "roomType", "type", "code"},
	"count":    {"rooms_count", "roomsCount", "count", "quantity", "qty"},
	"price":    {"price_per_night", "pricePerNight", "price", "rate"},
	"currency": {"currency", "currency_code", "currencyCode"},
}

var travelerAliases = map[string][]string{
	"full_name":     {"full_name", "fullName", "name"},
	"last_name":     {"last_name", "lastName", "surname"},
	"room_pref":     {"room_preference", "roomPreference", "room_type", "roomType"},
	"room_number":   {"room_number", "roomNumber", "room"},
	"accommodation": {"accommodation", "placement", "destination"},
	"custom_in":     {"custom_check_in", "customCheckIn", "date_from", "dateFrom"},
	"custom_out":    {"custom_check_out", "customCheckOut", "date_to", "dateTo"},
}

// Backends have served all of these over the years; newest format first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstStr returns the first non-empty string among the alias paths for key.
func firstStr(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if v := lookupAny(m, p); v != nil {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// firstInt64: int64 from several paths (float64/int/string).
func firstInt64(m map[string]any, paths ...string) int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int64(v)
		case int:
			return int64(v)
		case int64:
			return v
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

func firstInt(m map[string]any, paths ...string) int {
	return int(firstInt64(m, paths...))
}

func firstBool(m map[string]any, paths ...string) bool {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
	}
	return false
}

// firstDecimal: amount from several paths (float64/int/string like "50,00").
func firstDecimal(m map[string]any, paths ...string) decimal.Decimal {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if d, err := decimal.NewFromString(s); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}

// firstDate: time from several paths, trying the known backend layouts.
func firstDate(m map[string]any, paths ...string) *time.Time {
	for _, k := range paths {
		s, _ := lookupAny(m, k).(string)
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/********** booking mapper **********/

func mapBooking(id int64, p map[string]any) domain.Booking {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to marshal booking payload")
	}

	b := domain.Booking{
		ID:            id,
		Reference:     ptrStr(firstStr(p, map[string][]string{"ref": {"reference", "ref", "booking_number", "bookingNumber"}}, "ref")),
		DepartureDate: firstDate(p, "departure_date", "departureDate", "date_from"),
		RawJSON:       raw,
	}

	rows, _ := lookupAny(p, "stays").([]any)
	if rows == nil {
		rows, _ = lookupAny(p, "accommodations").([]any)
	}
	for _, it := range rows {
		sm, ok := it.(map[string]any)
		if !ok {
			continue
		}
		b.Stays = append(b.Stays, mapStay(sm))
	}
	return b
}

func mapStay(m map[string]any) domain.AccommodationStay {
	st := domain.AccommodationStay{
		ID:        firstInt64(m, "id", "stay_id", "stayId"),
		HotelID:   firstInt64(m, stayAliases["hotel_id"]...),
		HotelName: firstStr(m, stayAliases, "hotel_name"),
		IsPrimary: firstBool(m, stayAliases["primary"]...),
	}
	if t := firstDate(m, stayAliases["check_in"]...); t != nil {
		st.CheckIn = *t
	}
	if t := firstDate(m, stayAliases["check_out"]...); t != nil {
		st.CheckOut = *t
	}
	for _, key := range stayAliases["rooms"] {
		rows, ok := lookupAny(m, key).([]any)
		if !ok {
			continue
		}
		for _, it := range rows {
			lm, ok := it.(map[string]any)
			if !ok {
				continue
			}
			st.RoomLines = append(st.RoomLines, domain.RoomLine{
				RoomType:      firstStr(lm, roomLineAliases, "type"),
				RoomsCount:    firstInt(lm, roomLineAliases["count"]...),
				PricePerNight: firstDecimal(lm, roomLineAliases["price"]...),
				Currency:      firstStr(lm, roomLineAliases, "currency"),
			})
		}
		break
	}
	return st
}

/********** traveler mapper **********/

func mapTravelers(rows []map[string]any) []domain.Traveler {
	out := make([]domain.Traveler, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Traveler{
			ID:             firstInt64(m, "id", "traveler_id", "tourist_id"),
			FullName:       firstStr(m, travelerAliases, "full_name"),
			LastName:       firstStr(m, travelerAliases, "last_name"),
			RoomPreference: firstStr(m, travelerAliases, "room_pref"),
			RoomNumber:     firstStr(m, travelerAliases, "room_number"),
			Accommodation:  firstStr(m, travelerAliases, "accommodation"),
			CustomCheckIn:  firstDate(m, travelerAliases["custom_in"]...),
			CustomCheckOut: firstDate(m, travelerAliases["custom_out"]...),
		})
	}
	return out
}
