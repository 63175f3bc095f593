package domain

// Region is a geographic grouping of cities that a voter is assigned to for
// the regional selection phase. Read-only from the service's perspective.
type Region struct {
	ID       string
	Name     string
	Blurb    string
	ImageURL string
	Cities   []City
}

// City belongs to exactly one region.
type City struct {
	ID   string
	Name string
}

// HasCity reports whether the named city belongs to this region.
func (r Region) HasCity(name string) bool {
	for _, c := range r.Cities {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CityNames returns the city names in catalogue order.
func (r Region) CityNames() []string {
	names := make([]string, 0, len(r.Cities))
	for _, c := range r.Cities {
		names = append(names, c.Name)
	}
	return names
}
