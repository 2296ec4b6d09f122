package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawsit/internal/domains/booking/model"
	"pawsit/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	instructions := "Ring the bell twice"

	req := dto.CreateBookingRequest{
		ServiceType:         model.ServiceTypeWalk,
		Date:                "2024-06-01",
		TimeOfDay:           "10:00 AM",
		DurationMinutes:     45,
		PetIDs:              []string{"pet-1", "pet-2"},
		SpecialInstructions: &instructions,
	}

	booking, err := req.ToModel("client-1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, "client-1", booking.ClientID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, req.ServiceType, booking.ServiceType)
	assert.Equal(t, req.TimeOfDay, booking.TimeOfDay)
	assert.Equal(t, req.DurationMinutes, booking.DurationMinutes)
	assert.Len(t, booking.PetIDs, 2)
	assert.Equal(t, "client-1", booking.CreatedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_NoPets(t *testing.T) {
	req := dto.CreateBookingRequest{
		ServiceType:     model.ServiceTypeWalk,
		Date:            "2024-06-01",
		TimeOfDay:       "10:00 AM",
		DurationMinutes: 45,
	}

	booking, err := req.ToModel("client-1")

	require.NoError(t, err)
	require.NotNil(t, booking.PetIDs, "pet_ids must be an empty array, not NULL")
	assert.Empty(t, booking.PetIDs)

	value, err := booking.PetIDs.Value()
	require.NoError(t, err)
	assert.NotNil(t, value)
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		ServiceType:     model.ServiceTypeWalk,
		Date:            "June 1st",
		TimeOfDay:       "10:00 AM",
		DurationMinutes: 45,
	}

	_, err := req.ToModel("client-1")

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	sitterID := "sitter-1"

	booking := model.Booking{
		ID:          "booking-1",
		ClientID:    "client-1",
		ServiceType: model.ServiceTypeSitting,
		Status:      model.StatusAssigned,
		SitterID:    &sitterID,
		PetIDs:      []string{"pet-1"},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, booking.ClientID, response.ClientID)
	assert.Equal(t, booking.Status, response.Status)
	assert.Equal(t, booking.SitterID, response.SitterID)
	assert.Equal(t, []string{"pet-1"}, response.PetIDs)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1", Status: model.StatusPending},
		{ID: "booking-2", Status: model.StatusApproved},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 25, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
}
