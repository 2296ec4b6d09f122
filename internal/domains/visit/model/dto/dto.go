package dto

import (
	"time"

	"pawsit/internal/domains/visit/model"
	"pawsit/shared"
)

type VisitResponse struct {
	ID             string    `json:"id"`
	SitterID       *string   `json:"sitterId,omitempty"`
	SitterName     *string   `json:"sitterName,omitempty"`
	ClientID       string    `json:"clientId"`
	ClientName     string    `json:"clientName"`
	ServiceSummary string    `json:"serviceSummary"`
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
	Status         string    `json:"status"`
	Address        *string   `json:"address,omitempty"`
	Note           *string   `json:"note,omitempty"`
	PetIDs         []string  `json:"petIds,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (d *VisitResponse) FromModel(m model.Visit) {
	d.ID = m.ID
	d.SitterID = m.SitterID
	d.SitterName = m.SitterName
	d.ClientID = m.ClientID
	d.ClientName = m.ClientName
	d.ServiceSummary = m.ServiceSummary
	d.ScheduledStart = m.ScheduledStart
	d.ScheduledEnd = m.ScheduledEnd
	d.Status = m.Status
	d.Address = m.Address
	d.Note = m.Note
	d.PetIDs = m.PetIDs
	d.CreatedAt = m.CreatedAt
}

type GetVisitsResponse struct {
	Visits    []VisitResponse `json:"visits"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (d *GetVisitsResponse) FromModels(models []model.Visit, total, limit int) {
	d.TotalData = total
	d.TotalPage = shared.CalculateTotalPage(total, limit)

	d.Visits = make([]VisitResponse, len(models))
	for i, m := range models {
		d.Visits[i].FromModel(m)
	}
}

type UpdateNoteRequest struct {
	Note string `json:"note" validate:"required"`
}
