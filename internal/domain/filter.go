package domain

import "strings"

// FilterOptions defines optional filters to apply to flight offers.
// A nil FilterOptions matches every offer.
type FilterOptions struct {
	// MaxPrice filters out offers with a base fare above this amount.
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops filters out offers with more stops than this value.
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines filters to only include offers from these airlines.
	// Matching is case-insensitive on the airline display name.
	// Empty slice means no filtering by airline.
	Airlines []string `json:"airlines,omitempty"`
}

// MatchesOffer checks if an offer matches all the filter criteria.
func (f *FilterOptions) MatchesOffer(offer FlightOffer) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && offer.Price > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && offer.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		offerAirline := strings.ToLower(offer.Airline)
		for _, airline := range f.Airlines {
			if strings.ToLower(airline) == offerAirline {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
