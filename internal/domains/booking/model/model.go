package model

import (
	"time"

	"pawsit/shared/geo"
	"pawsit/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldClientID            = "client_id"
	FieldServiceType         = "service_type"
	FieldDate                = "date"
	FieldTimeOfDay           = "time_of_day"
	FieldDurationMinutes     = "duration_minutes"
	FieldPetIDs              = "pet_ids"
	FieldSpecialInstructions = "special_instructions"
	FieldStatus              = "status"
	FieldSitterID            = "sitter_id"
	FieldSitterName          = "sitter_name"
	FieldAssignedAt          = "assigned_at"
	FieldAssignmentMethod    = "assignment_method"
	FieldAddress             = "address"
	FieldLatitude            = "latitude"
	FieldLongitude           = "longitude"
	FieldCheckIn             = "check_in"
	FieldCheckOut            = "check_out"
)

const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	ServiceTypeWalk      = "walk"
	ServiceTypeSitting   = "sitting"
	ServiceTypeOvernight = "overnight"
	ServiceTypeDaycare   = "daycare"
)

// Booking is the demand-side record of a requested service engagement.
// Once a paired visit exists, in_progress/completed/cancelled are written
// only by the lifecycle synchronizer mirroring visit status.
type Booking struct {
	ID                  string         `db:"id"`
	ClientID            string         `db:"client_id"`
	ServiceType         string         `db:"service_type"`
	Date                time.Time      `db:"date"`
	TimeOfDay           string         `db:"time_of_day"`
	DurationMinutes     int            `db:"duration_minutes"`
	PetIDs              pq.StringArray `db:"pet_ids"`
	SpecialInstructions *string        `db:"special_instructions"`
	Status              string         `db:"status"`
	SitterID            *string        `db:"sitter_id"`
	SitterName          *string        `db:"sitter_name"`
	AssignedAt          *time.Time     `db:"assigned_at"`
	AssignmentMethod    *string        `db:"assignment_method"`
	Address             *string        `db:"address"`
	Latitude            *float64       `db:"latitude"`
	Longitude           *float64       `db:"longitude"`
	CheckIn             *time.Time     `db:"check_in"`
	CheckOut            *time.Time     `db:"check_out"`
	model.Metadata
}

// Location returns the booking's coordinates, or nil when either axis is
// missing.
func (b *Booking) Location() *geo.Point {
	if b.Latitude == nil || b.Longitude == nil {
		return nil
	}

	return &geo.Point{Latitude: *b.Latitude, Longitude: *b.Longitude}
}

// IsTerminal reports whether the booking can no longer change state.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
