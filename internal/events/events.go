// Package events defines the payloads exchanged over the service's kafka
// topics. The consumers live in the worker subpackage.
package events

import "time"

// BookingApproved is published when a booking reaches the approved state,
// either through the payment webhook or an admin action. Consumers trigger
// sitter assignment and the visit upsert.
type BookingApproved struct {
	BookingID  string    `json:"bookingId"`
	ClientID   string    `json:"clientId"`
	ApprovedAt time.Time `json:"approvedAt"`
}

// VisitStatusChanged carries a visit status transition. Before and After may
// be equal when an upstream writer re-publishes an unchanged state; consumers
// must treat that as a no-op.
type VisitStatusChanged struct {
	VisitID   string    `json:"visitId"`
	Before    string    `json:"before"`
	After     string    `json:"after"`
	ChangedAt time.Time `json:"changedAt"`
}

// NotificationDispatch is the fan-out payload for the external notification
// dispatcher. Delivery is the dispatcher's problem.
type NotificationDispatch struct {
	NotificationID string         `json:"notificationId"`
	RecipientID    string         `json:"recipientId"`
	Type           string         `json:"type"`
	Payload        map[string]any `json:"payload,omitempty"`
}
