package domain

import "time"

// List capacities for the two selection phases.
const (
	RegionalCapacity = 10
	NationalCapacity = 5
)

// ListKind names one of the two selection lists.
type ListKind string

const (
	RegionalList ListKind = "regional"
	NationalList ListKind = "national"
)

// Valid reports whether the kind names a known list.
func (k ListKind) Valid() bool {
	return k == RegionalList || k == NationalList
}

// Capacity returns the maximum length of the list.
func (k ListKind) Capacity() int {
	if k == NationalList {
		return NationalCapacity
	}
	return RegionalCapacity
}

// RestaurantPick is a snapshot of a chosen restaurant stored inside a
// selection list.
type RestaurantPick struct {
	ID   string
	Name string
	City string
}

// Selection is a voter's working state: the two capacity-bounded pick lists
// and the ratings collected for them. One record per account, created empty
// at terms acceptance and mutated until submission.
type Selection struct {
	AccountID string
	Regional  []RestaurantPick
	National  []RestaurantPick
	Ratings   map[string]Rating
	UpdatedAt time.Time
}

// NewSelection returns an empty selection for the account.
func NewSelection(accountID string) *Selection {
	return &Selection{
		AccountID: accountID,
		Regional:  []RestaurantPick{},
		National:  []RestaurantPick{},
		Ratings:   map[string]Rating{},
	}
}

// List returns the picks of the given kind.
func (s *Selection) List(kind ListKind) []RestaurantPick {
	if kind == NationalList {
		return s.National
	}
	return s.Regional
}

// Contains reports whether the restaurant id is present in the given list.
func (s *Selection) Contains(kind ListKind, id string) bool {
	for _, p := range s.List(kind) {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Selection) other(kind ListKind) ListKind {
	if kind == RegionalList {
		return NationalList
	}
	return RegionalList
}

// Toggle removes the pick when it is already in the list and appends it
// otherwise. Appends are rejected silently when the list is at capacity or
// when the id already sits in the other list; both are defensive no-ops the
// caller's UI should have prevented. Reports whether membership changed.
func (s *Selection) Toggle(kind ListKind, pick RestaurantPick) bool {
	if s.Contains(kind, pick.ID) {
		return s.Remove(kind, pick.ID)
	}
	if len(s.List(kind)) >= kind.Capacity() {
		return false
	}
	if s.Contains(s.other(kind), pick.ID) {
		return false
	}
	s.setList(kind, append(s.List(kind), pick))
	return true
}

// Remove drops the restaurant from the list unconditionally and prunes any
// rating stored for an id no longer present in either list.
func (s *Selection) Remove(kind ListKind, id string) bool {
	list := s.List(kind)
	kept := make([]RestaurantPick, 0, len(list))
	removed := false
	for _, p := range list {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false
	}
	s.setList(kind, kept)
	s.pruneRatings()
	return true
}

func (s *Selection) setList(kind ListKind, picks []RestaurantPick) {
	if kind == NationalList {
		s.National = picks
		return
	}
	s.Regional = picks
}

// Combined returns the rating working set: regional picks first, national
// picks after, preserving pick order.
func (s *Selection) Combined() []RestaurantPick {
	combined := make([]RestaurantPick, 0, len(s.Regional)+len(s.National))
	combined = append(combined, s.Regional...)
	combined = append(combined, s.National...)
	return combined
}

// RegionalIDs returns the set of regional pick ids, used to exclude
// cross-listed entries from the national candidate list.
func (s *Selection) RegionalIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.Regional))
	for _, p := range s.Regional {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// CanProceed reports the exact-count gate for leaving a selection phase.
func (s *Selection) CanProceed(kind ListKind) bool {
	return len(s.List(kind)) == kind.Capacity()
}

// SetRating stores the rating for a restaurant that must be in the working
// set; ratings for unknown ids are ignored to keep the ratings map keyed by
// current picks only.
func (s *Selection) SetRating(id string, rating Rating) bool {
	if !s.Contains(RegionalList, id) && !s.Contains(NationalList, id) {
		return false
	}
	if s.Ratings == nil {
		s.Ratings = map[string]Rating{}
	}
	s.Ratings[id] = rating
	return true
}

func (s *Selection) pruneRatings() {
	if len(s.Ratings) == 0 {
		return
	}
	for id := range s.Ratings {
		if !s.Contains(RegionalList, id) && !s.Contains(NationalList, id) {
			delete(s.Ratings, id)
		}
	}
}
