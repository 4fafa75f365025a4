package domain

import "time"

// Venue represents a bookable venue with one or more spaces
type Venue struct {
	ID         int64
	Name       string
	City       string
	ManagerIDs []int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsManager returns true if the user manages this venue
func (v *Venue) IsManager(userID int64) bool {
	for _, id := range v.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Space represents a bookable sub-unit of a venue (hall, room, terrace)
type Space struct {
	ID        int64
	VenueID   int64
	VenueName string // denormalized from the venue for display
	Name      string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
