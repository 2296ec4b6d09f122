package model

import (
	"time"

	"pawsit/shared/geo"
	"pawsit/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "sitter_profiles"
	EntityName = "sitter"

	FieldID             = "id"
	FieldFullName       = "full_name"
	FieldEmail          = "email"
	FieldActive         = "active"
	FieldAvailable      = "available"
	FieldPetTypes       = "pet_types"
	FieldLatitude       = "latitude"
	FieldLongitude      = "longitude"
	FieldRating         = "rating"
	FieldTotalBookings  = "total_bookings"
	FieldLastAssignedAt = "last_assigned_at"
)

const (
	AvailabilityTableName  = "sitter_availability"
	AvailabilityEntityName = "sitter availability"

	AvailabilityFieldSitterID = "sitter_id"
)

// Sitter is a sitter's marketplace profile, keyed by the owning user id.
type Sitter struct {
	ID             string         `db:"id"`
	FullName       string         `db:"full_name"`
	Email          string         `db:"email"`
	Active         bool           `db:"active"`
	Available      bool           `db:"available"`
	PetTypes       pq.StringArray `db:"pet_types"`
	Latitude       *float64       `db:"latitude"`
	Longitude      *float64       `db:"longitude"`
	Rating         float64        `db:"rating"`
	TotalBookings  int            `db:"total_bookings"`
	LastAssignedAt *time.Time     `db:"last_assigned_at"`
	model.Metadata
}

// Location returns the sitter's last known coordinates, or nil when either
// axis is missing.
func (s *Sitter) Location() *geo.Point {
	if s.Latitude == nil || s.Longitude == nil {
		return nil
	}

	return &geo.Point{Latitude: *s.Latitude, Longitude: *s.Longitude}
}

// Availability is a sitter's self-managed schedule. A sitter without a row is
// treated as fully available; that fail-open default is deliberate.
type Availability struct {
	SitterID     string         `db:"sitter_id"`
	IsAvailable  bool           `db:"is_available"`
	ActiveHours  []byte         `db:"active_hours"`
	BlockedDates pq.StringArray `db:"blocked_dates"`
	model.Metadata
}

// DefaultAvailability is the descriptor used when no availability row exists.
func DefaultAvailability(sitterID string) Availability {
	return Availability{
		SitterID:     sitterID,
		IsAvailable:  true,
		ActiveHours:  []byte("{}"),
		BlockedDates: pq.StringArray{},
	}
}

// Candidate is the read-only projection the assignment engine works with.
// Distance stays nil until the engine knows the booking's location.
type Candidate struct {
	ID             string
	FullName       string
	Email          string
	Active         bool
	Available      bool
	PetTypes       []string
	Availability   Availability
	Location       *geo.Point
	Rating         float64
	TotalBookings  int
	LastAssignedAt *time.Time
	DistanceKm     *float64
}
