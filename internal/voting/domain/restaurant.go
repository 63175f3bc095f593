package domain

import (
	"strings"
	"time"
)

// Restaurant is a catalogue entry voters can pick. Seeded entries carry the
// region they were catalogued under; jury-created entries are nominated by
// voters when a restaurant is missing from the seeded list.
type Restaurant struct {
	ID          string
	Name        string
	City        string
	RegionID    string
	JuryCreated bool
	CreatedAt   time.Time
}

// Pick snapshots the fields a selection list stores. Selections hold copies,
// not references, so later catalogue edits never rewrite past picks.
func (r Restaurant) Pick() RestaurantPick {
	return RestaurantPick{ID: r.ID, Name: r.Name, City: r.City}
}

// ValidRestaurantID reports whether id has the stored-id shape (24 hex
// characters). Picks carry client-echoed ids, so the shape is checked before
// a selection mutation is accepted rather than at persistence time.
func ValidRestaurantID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, c := range id {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// CatalogueFilter is the display filter for candidate lists.
type CatalogueFilter struct {
	City   string
	Search string
}

// FilterCatalogue applies the display filter policy: without a search term
// the result is always empty, never the full catalogue; a selected city only
// narrows an active search. Name matching is a case-insensitive substring
// check, city matching is exact.
func FilterCatalogue(entries []Restaurant, filter CatalogueFilter) []Restaurant {
	search := strings.TrimSpace(filter.Search)
	if search == "" {
		return []Restaurant{}
	}
	search = strings.ToLower(search)
	city := strings.TrimSpace(filter.City)

	matched := make([]Restaurant, 0, len(entries))
	for _, entry := range entries {
		if city != "" && entry.City != city {
			continue
		}
		if !strings.Contains(strings.ToLower(entry.Name), search) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched
}
