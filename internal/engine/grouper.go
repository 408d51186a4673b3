package engine

import (
	"sort"
	"strings"

	"orient_insight/internal/domain"
)

/********** placement buckets (single source of truth) **********/

// placementBuckets classify a traveler by destination leg from the free-text
// accommodation field. Matching is case-insensitive substring, first bucket
// wins; unclassified travelers sort after every bucket.
var placementBuckets = []struct {
	name    string
	needles []string
}{
	{"uzbekistan", []string{"uzbek", "tashkent", "samarkand", "bukhara", "khiva", "fergana"}},
	{"turkmenistan", []string{"turkmen", "ashgabat", "mary", "dashoguz"}},
	{"kyrgyzstan", []string{"kyrgyz", "bishkek", "osh"}},
	{"tajikistan", []string{"tajik", "dushanbe", "khujand"}},
	{"kazakhstan", []string{"kazakh", "almaty", "astana", "shymkent"}},
}

func placementRank(accommodation string) int {
	low := strings.ToLower(accommodation)
	for i, b := range placementBuckets {
		for _, n := range b.needles {
			if strings.Contains(low, n) {
				return i
			}
		}
	}
	return len(placementBuckets)
}

// GroupByHotel assigns every traveler to a stay and forms room pairs within
// each group. Deterministic: identical input yields identical ordering.
//
// A single-stay booking takes every traveler regardless of dates; there is
// nothing to disambiguate, so date quality does not matter. With
// multiple stays a traveler is assigned only when their custom window is
// fully contained in exactly that stay's window; anyone else lands in
// Unassigned rather than being guessed at.
func GroupByHotel(stays []domain.AccommodationStay, travelers []domain.Traveler) domain.GroupingResult {
	var res domain.GroupingResult
	if len(stays) == 0 {
		res.Unassigned = append(res.Unassigned, travelers...)
		return res
	}

	groups := make([]domain.HotelGroup, len(stays))
	for i, st := range stays {
		groups[i] = domain.HotelGroup{Stay: st}
	}

	if len(stays) == 1 {
		groups[0].Travelers = append(groups[0].Travelers, travelers...)
	} else {
		for _, tr := range travelers {
			idx := assignStay(stays, tr)
			if idx < 0 {
				res.Unassigned = append(res.Unassigned, tr)
				continue
			}
			groups[idx].Travelers = append(groups[idx].Travelers, tr)
		}
	}

	for i := range groups {
		sortTravelers(groups[i].Travelers)
		groups[i].RoomPairs = pairRooms(groups[i].Travelers)
	}
	res.Groups = groups
	return res
}

func assignStay(stays []domain.AccommodationStay, tr domain.Traveler) int {
	if tr.CustomCheckIn == nil || tr.CustomCheckOut == nil {
		return -1
	}
	tIn := startOfDay(*tr.CustomCheckIn)
	tOut := startOfDay(*tr.CustomCheckOut)
	for i, st := range stays {
		if contains(startOfDay(st.CheckIn), startOfDay(st.CheckOut), tIn, tOut) {
			return i
		}
	}
	return -1
}

// sortTravelers orders a group for presentation: placement bucket, then room
// number, then last name. Room numbers compare as strings on purpose, so
// "10" sorts before "2", matching how the printed reports have always read.
func sortTravelers(ts []domain.Traveler) {
	sort.SliceStable(ts, func(i, j int) bool {
		ri, rj := placementRank(ts[i].Accommodation), placementRank(ts[j].Accommodation)
		if ri != rj {
			return ri < rj
		}
		if ts[i].RoomNumber != ts[j].RoomNumber {
			return ts[i].RoomNumber < ts[j].RoomNumber
		}
		return lastNameOf(ts[i]) < lastNameOf(ts[j])
	})
}

func lastNameOf(tr domain.Traveler) string {
	if tr.LastName != "" {
		return tr.LastName
	}
	parts := strings.Fields(tr.FullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// pairRooms groups travelers sharing one room number in a two-occupant room
// type. Three or more on one number is dirty data, not an error: they all go
// in the one pair so nobody silently disappears from the rooming list.
// Singles are skipped even when they share a number; that anomaly stays
// visible in the roster instead of being merged away.
func pairRooms(ts []domain.Traveler) []domain.RoomPair {
	byRoom := map[string][]domain.Traveler{}
	for _, tr := range ts {
		if tr.RoomNumber == "" || !Pairable(tr.RoomPreference) {
			continue
		}
		byRoom[tr.RoomNumber] = append(byRoom[tr.RoomNumber], tr)
	}
	nums := make([]string, 0, len(byRoom))
	for n, occ := range byRoom {
		if len(occ) < 2 {
			continue
		}
		nums = append(nums, n)
	}
	sort.Strings(nums)
	pairs := make([]domain.RoomPair, 0, len(nums))
	for _, n := range nums {
		pairs = append(pairs, domain.RoomPair{RoomNumber: n, Travelers: byRoom[n]})
	}
	return pairs
}
