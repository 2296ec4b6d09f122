package dto

import (
	"fmt"
	"time"

	"pawsit/internal/domains/booking/model"
	"pawsit/shared"
	"pawsit/shared/constant"
	"pawsit/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateBookingRequest struct {
	ServiceType         string   `json:"serviceType"         validate:"required,oneof=walk sitting overnight daycare"`
	Date                string   `json:"date"                validate:"required"`
	TimeOfDay           string   `json:"timeOfDay"           validate:"required"`
	DurationMinutes     int      `json:"durationMinutes"     validate:"required,gt=0"`
	PetIDs              []string `json:"petIds"              validate:"omitempty,dive,required"`
	SpecialInstructions *string  `json:"specialInstructions" validate:"omitempty"`
	Address             *string  `json:"address"             validate:"omitempty"`
	Latitude            *float64 `json:"latitude"            validate:"omitempty,latitude"`
	Longitude           *float64 `json:"longitude"           validate:"omitempty,longitude"`
}

func (d *CreateBookingRequest) ToModel(clientID string) (model.Booking, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, d.Date)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid booking date %q: %w", d.Date, err)
	}

	now := timezone.Now()

	// An omitted pet list is a valid booking; the column is NOT NULL so the
	// row must carry an empty array, not NULL.
	petIDs := d.PetIDs
	if petIDs == nil {
		petIDs = []string{}
	}

	booking := model.Booking{
		ID:                  uuid.NewString(),
		ClientID:            clientID,
		ServiceType:         d.ServiceType,
		Date:                date,
		TimeOfDay:           d.TimeOfDay,
		DurationMinutes:     d.DurationMinutes,
		PetIDs:              pq.StringArray(petIDs),
		SpecialInstructions: d.SpecialInstructions,
		Status:              model.StatusPending,
		Address:             d.Address,
		Latitude:            d.Latitude,
		Longitude:           d.Longitude,
	}
	booking.CreatedAt = now
	booking.CreatedBy = clientID
	booking.ModifiedAt = now
	booking.ModifiedBy = clientID

	return booking, nil
}

type BookingResponse struct {
	ID                  string     `json:"id"`
	ClientID            string     `json:"clientId"`
	ServiceType         string     `json:"serviceType"`
	Date                time.Time  `json:"date"`
	TimeOfDay           string     `json:"timeOfDay"`
	DurationMinutes     int        `json:"durationMinutes"`
	PetIDs              []string   `json:"petIds,omitempty"`
	SpecialInstructions *string    `json:"specialInstructions,omitempty"`
	Status              string     `json:"status"`
	SitterID            *string    `json:"sitterId,omitempty"`
	SitterName          *string    `json:"sitterName,omitempty"`
	AssignedAt          *time.Time `json:"assignedAt,omitempty"`
	AssignmentMethod    *string    `json:"assignmentMethod,omitempty"`
	Address             *string    `json:"address,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	CheckIn             *time.Time `json:"checkIn,omitempty"`
	CheckOut            *time.Time `json:"checkOut,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func (d *BookingResponse) FromModel(m model.Booking) {
	d.ID = m.ID
	d.ClientID = m.ClientID
	d.ServiceType = m.ServiceType
	d.Date = m.Date
	d.TimeOfDay = m.TimeOfDay
	d.DurationMinutes = m.DurationMinutes
	d.PetIDs = m.PetIDs
	d.SpecialInstructions = m.SpecialInstructions
	d.Status = m.Status
	d.SitterID = m.SitterID
	d.SitterName = m.SitterName
	d.AssignedAt = m.AssignedAt
	d.AssignmentMethod = m.AssignmentMethod
	d.Address = m.Address
	d.Latitude = m.Latitude
	d.Longitude = m.Longitude
	d.CheckIn = m.CheckIn
	d.CheckOut = m.CheckOut
	d.CreatedAt = m.CreatedAt
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (d *GetBookingsResponse) FromModels(models []model.Booking, total, limit int) {
	d.TotalData = total
	d.TotalPage = shared.CalculateTotalPage(total, limit)

	d.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		d.Bookings[i].FromModel(m)
	}
}

// PaymentWebhookRequest is the payment processor's completion callback. Only
// the booking correlation and event type matter to this service.
type PaymentWebhookRequest struct {
	EventType string `json:"eventType" validate:"required"`
	BookingID string `json:"bookingId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"omitempty"`
}

const PaymentEventCompleted = "payment.completed"
