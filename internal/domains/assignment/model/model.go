package model

import (
	"time"

	"pawsit/shared/geo"
	"pawsit/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "assignment_records"
	EntityName = "assignment"

	FieldBookingID    = "booking_id"
	FieldSitterID     = "sitter_id"
	FieldSitterName   = "sitter_name"
	FieldMethod       = "method"
	FieldStatus       = "status"
	FieldConfidence   = "confidence"
	FieldReasons      = "reasons"
	FieldCancelReason = "cancel_reason"
	FieldAssignedAt   = "assigned_at"
)

const (
	TrainingTableName  = "assignment_training"
	TrainingEntityName = "assignment training record"

	TrainingFieldID        = "id"
	TrainingFieldBookingID = "booking_id"
)

const (
	MethodAutomatic = "automatic"
	MethodRuleBased = "rule_based"
	MethodManual    = "manual"
	MethodFailed    = "failed"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

const CancelReasonSitterUnavailable = "sitterUnavailable"

// Record is the persisted audit of an assignment decision, keyed by booking
// id so a retried assignment merges into the same row.
type Record struct {
	BookingID    string         `db:"booking_id"`
	SitterID     *string        `db:"sitter_id"`
	SitterName   *string        `db:"sitter_name"`
	Method       string         `db:"method"`
	Status       string         `db:"status"`
	Confidence   float64        `db:"confidence"`
	Reasons      pq.StringArray `db:"reasons"`
	CancelReason *string        `db:"cancel_reason"`
	AssignedAt   time.Time      `db:"assigned_at"`
	model.Metadata
}

// TrainingRecord is one append-only row of the offline-analysis log. Feedback
// fields are attached post-hoc and stay nil until then.
type TrainingRecord struct {
	ID              string         `db:"id"`
	BookingID       string         `db:"booking_id"`
	SitterID        *string        `db:"sitter_id"`
	Method          string         `db:"method"`
	Confidence      float64        `db:"confidence"`
	Reasons         pq.StringArray `db:"reasons"`
	CandidateCount  int            `db:"candidate_count"`
	FeedbackRating  *int           `db:"feedback_rating"`
	FeedbackComment *string        `db:"feedback_comment"`
	FeedbackSuccess *bool          `db:"feedback_success"`
	model.Metadata
}

// Criteria is the engine's input, derived from a booking.
type Criteria struct {
	BookingID           string
	ClientID            string
	BookingLocation     *geo.Point
	PetTypes            []string
	ServiceType         string
	Date                time.Time
	DurationMinutes     int
	SpecialRequirements []string
	PreferredSitterID   *string
}

// Result is the engine's structured outcome. A nil SitterID with method
// "failed" signals that no assignment was committed; Reasons always explain
// the outcome either way.
type Result struct {
	BookingID  string    `json:"bookingId"`
	SitterID   *string   `json:"sitterId,omitempty"`
	SitterName *string   `json:"sitterName,omitempty"`
	Method     string    `json:"method"`
	Confidence float64   `json:"confidence"`
	Reasons    []string  `json:"reasons"`
	Timestamp  time.Time `json:"timestamp"`
}

// Failed builds a failure Result with zero confidence.
func Failed(bookingID string, at time.Time, reasons ...string) Result {
	return Result{
		BookingID:  bookingID,
		Method:     MethodFailed,
		Confidence: 0.0,
		Reasons:    reasons,
		Timestamp:  at,
	}
}
