package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"pawsit/internal/domains/sitter/model"
	"pawsit/shared"
	"pawsit/shared/constant"
	"pawsit/shared/timezone"

	"github.com/lib/pq"
)

type SitterResponse struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Active         bool       `json:"isActive"`
	Available      bool       `json:"isAvailable"`
	PetTypes       []string   `json:"petTypes"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Rating         float64    `json:"rating"`
	TotalBookings  int        `json:"totalBookings"`
	LastAssignedAt *time.Time `json:"lastAssignedAt,omitempty"`
}

func (d *SitterResponse) FromModel(m model.Sitter) {
	d.ID = m.ID
	d.FullName = m.FullName
	d.Email = m.Email
	d.Active = m.Active
	d.Available = m.Available
	d.PetTypes = m.PetTypes
	d.Latitude = m.Latitude
	d.Longitude = m.Longitude
	d.Rating = m.Rating
	d.TotalBookings = m.TotalBookings
	d.LastAssignedAt = m.LastAssignedAt
}

type GetSittersResponse struct {
	Sitters   []SitterResponse `json:"sitters"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (d *GetSittersResponse) FromModels(models []model.Sitter, total, limit int) {
	d.TotalData = total
	d.TotalPage = shared.CalculateTotalPage(total, limit)

	d.Sitters = make([]SitterResponse, len(models))
	for i, m := range models {
		d.Sitters[i].FromModel(m)
	}
}

// ActiveHoursRange is a single working window within a weekday.
type ActiveHoursRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

type UpsertAvailabilityRequest struct {
	IsAvailable  bool                          `json:"isAvailable"`
	ActiveHours  map[string][]ActiveHoursRange `json:"activeHours"  validate:"omitempty"`
	BlockedDates []string                      `json:"blockedDates" validate:"omitempty,dive,required"`
}

func (d *UpsertAvailabilityRequest) ToModel(sitterID string) (model.Availability, error) {
	for _, date := range d.BlockedDates {
		if _, err := time.Parse(constant.DateOnlyFormat, date); err != nil {
			return model.Availability{}, fmt.Errorf("invalid blocked date %q: %w", date, err)
		}
	}

	activeHours := d.ActiveHours
	if activeHours == nil {
		activeHours = map[string][]ActiveHoursRange{}
	}

	raw, err := json.Marshal(activeHours)
	if err != nil {
		return model.Availability{}, fmt.Errorf("failed to encode active hours: %w", err)
	}

	now := timezone.Now()

	availability := model.Availability{
		SitterID:     sitterID,
		IsAvailable:  d.IsAvailable,
		ActiveHours:  raw,
		BlockedDates: pq.StringArray(d.BlockedDates),
	}
	availability.CreatedAt = now
	availability.CreatedBy = sitterID
	availability.ModifiedAt = now
	availability.ModifiedBy = sitterID

	return availability, nil
}
