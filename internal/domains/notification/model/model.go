package model

import (
	"pawsit/shared/model"
)

const (
	TableName  = "notification_intents"
	EntityName = "notification intent"

	FieldID          = "id"
	FieldRecipientID = "recipient_id"
	FieldType        = "type"
	FieldPayload     = "payload"
	FieldStatus      = "status"
)

const (
	StatusQueued    = "queued"
	StatusPublished = "published"
)

const (
	TypeBookingApproved   = "booking_approved"
	TypeSitterAssigned    = "sitter_assigned"
	TypeSitterUnavailable = "sitter_unavailable"
	TypeVisitStatusChange = "visit_status_change"
)

// Intent is a queued notification for the external dispatcher. The core
// records the intent and fans it out; delivery is not tracked here.
type Intent struct {
	ID          string `db:"id"`
	RecipientID string `db:"recipient_id"`
	Type        string `db:"type"`
	Payload     []byte `db:"payload"`
	Status      string `db:"status"`
	model.Metadata
}
