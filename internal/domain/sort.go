package domain

import (
	"sort"
	"strings"
)

// SortOption defines the available sorting options for flight results.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by price ascending (cheapest first, default).
	SortByPrice SortOption = "price"

	// SortByDuration sorts by the duration label ascending. This is a lexical
	// comparison of the formatted label, not true duration-aware ordering.
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (lexical on HH:MM).
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(s))
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// SortOffers returns a new slice of offers sorted by the given option.
// The input slice is never mutated; sorting is a pure projection and is
// stable, so equal keys preserve their original relative order.
func SortOffers(offers []FlightOffer, sortBy SortOption) []FlightOffer {
	result := make([]FlightOffer, len(offers))
	copy(result, offers)

	if len(result) <= 1 {
		return result
	}

	switch sortBy {
	case SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration < result[j].Duration
		})
	case SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Departure.Time < result[j].Departure.Time
		})
	case SortByPrice:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	}

	return result
}
