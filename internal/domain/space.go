package domain

import "time"

// SpaceType enumerates the bookable space categories
type SpaceType string

const (
	SpaceAuditorium   SpaceType = "auditorium"
	SpaceChapel       SpaceType = "chapel"
	SpaceEventHall    SpaceType = "event_hall"
	SpaceMultipurpose SpaceType = "multipurpose_room"
)

// AllSpaceTypes список допустимых типов помещений
var AllSpaceTypes = []SpaceType{
	SpaceAuditorium,
	SpaceChapel,
	SpaceEventHall,
	SpaceMultipurpose,
}

// IsValid returns true if the type is one of the allowed space types
func (t SpaceType) IsValid() bool {
	for _, st := range AllSpaceTypes {
		if t == st {
			return true
		}
	}
	return false
}

// Space represents a bookable shared space.
// Spaces are never hard-deleted: Deleted hides them from listings while
// keeping them resolvable by id for historical reservations.
type Space struct {
	ID          int64
	Name        string
	Description string
	Capacity    int
	Type        SpaceType
	Active      bool

	// DeactivationReason is present only when Active is false
	DeactivationReason *string

	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new reservations may target this space.
// Existing reservations on a deactivated space remain honored.
func (s *Space) IsBookable() bool {
	return s.Active && !s.Deleted
}
