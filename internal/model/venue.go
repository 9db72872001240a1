package model

// OpeningHoursSpec is one weekly opening-hours entry for a venue, as served
// by the venue directory.  Opens and Closes are wall-clock HH:MM strings in
// the venue's reference timezone.  DayOfWeek is Monday-first (Monday=1 ...
// Sunday=7).  A venue with no entry for a weekday is closed that day.
type OpeningHoursSpec struct {
	DayOfWeek    int    `json:"day_of_week"`
	Opens        string `json:"opens"`
	Closes       string `json:"closes"`
	ValidFrom    string `json:"valid_from"`
	ValidThrough string `json:"valid_through"`
}

// Venue is the directory document for a venue.  SpecialOpeningHours is
// carried through from the directory but not consulted when resolving an
// opening window; precedence over the weekly hours is undecided upstream.
type Venue struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	OpeningHours        []OpeningHoursSpec `json:"opening_hours"`
	SpecialOpeningHours []OpeningHoursSpec `json:"special_opening_hours"`
}

// Table describes a single table in a venue.  Tables are interchangeable
// units of capacity; the engine never inspects anything beyond Capacity.
type Table struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}
