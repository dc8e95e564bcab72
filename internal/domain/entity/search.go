package entity

// SortBy selects the ordering of search results.
type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByRating   SortBy = "rating"
)

// IsValid reports whether s is a supported ordering.
func (s SortBy) IsValid() bool {
	return s == SortByDistance || s == SortByRating
}

// DistanceAnnotatedProvider is a search hit. DistanceKm is nil when the query
// carried no reference point.
type DistanceAnnotatedProvider struct {
	Provider   *Provider
	DistanceKm *float64
}

// SlotGrid splits a provider's slots for one date into free and taken ones.
// Both lists are chronological and together cover the full grid.
type SlotGrid struct {
	Available []Slot
	Booked    []Slot
}
