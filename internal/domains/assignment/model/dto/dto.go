package dto

import (
	"time"

	"pawsit/internal/domains/assignment/model"
)

type AssignRequest struct {
	BookingID         string  `json:"bookingId"         validate:"required"`
	PreferredSitterID *string `json:"preferredSitterId" validate:"omitempty"`
}

type SitterUnavailableRequest struct {
	SitterID  string `json:"sitterId"  validate:"required"`
	BookingID string `json:"bookingId" validate:"required"`
}

type FeedbackRequest struct {
	Rating  int     `json:"rating"  validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty"`
	Success bool    `json:"success"`
}

type RecordResponse struct {
	BookingID    string    `json:"bookingId"`
	SitterID     *string   `json:"sitterId,omitempty"`
	SitterName   *string   `json:"sitterName,omitempty"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	Confidence   float64   `json:"confidence"`
	Reasons      []string  `json:"reasons"`
	CancelReason *string   `json:"cancelReason,omitempty"`
	AssignedAt   time.Time `json:"assignedAt"`
}

func (d *RecordResponse) FromModel(m model.Record) {
	d.BookingID = m.BookingID
	d.SitterID = m.SitterID
	d.SitterName = m.SitterName
	d.Method = m.Method
	d.Status = m.Status
	d.Confidence = m.Confidence
	d.Reasons = m.Reasons
	d.CancelReason = m.CancelReason
	d.AssignedAt = m.AssignedAt
}
