package model

import (
	"time"

	"pawsit/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "visits"
	EntityName = "visit"

	FieldID             = "id"
	FieldSitterID       = "sitter_id"
	FieldSitterName     = "sitter_name"
	FieldClientID       = "client_id"
	FieldClientName     = "client_name"
	FieldServiceSummary = "service_summary"
	FieldScheduledStart = "scheduled_start"
	FieldScheduledEnd   = "scheduled_end"
	FieldStatus         = "status"
	FieldAddress        = "address"
	FieldNote           = "note"
	FieldPetIDs         = "pet_ids"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Visit is the execution record of an approved booking. Its id equals the
// booking id, which keeps the pairing explicit and makes the approval upsert
// idempotent.
type Visit struct {
	ID             string         `db:"id"`
	SitterID       *string        `db:"sitter_id"`
	SitterName     *string        `db:"sitter_name"`
	ClientID       string         `db:"client_id"`
	ClientName     string         `db:"client_name"`
	ServiceSummary string         `db:"service_summary"`
	ScheduledStart time.Time      `db:"scheduled_start"`
	ScheduledEnd   time.Time      `db:"scheduled_end"`
	Status         string         `db:"status"`
	Address        *string        `db:"address"`
	Note           *string        `db:"note"`
	PetIDs         pq.StringArray `db:"pet_ids"`
	model.Metadata
}

// IsTerminal reports whether the visit can no longer change state.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// CanTransition enforces the visit state machine: forward-only, with
// cancellation allowed from any non-terminal state.
func CanTransition(from, to string) bool {
	switch to {
	case StatusInProgress:
		return from == StatusScheduled
	case StatusCompleted:
		return from == StatusInProgress
	case StatusCancelled:
		return !IsTerminal(from)
	default:
		return false
	}
}
