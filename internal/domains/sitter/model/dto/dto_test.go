package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawsit/internal/domains/sitter/model"
	"pawsit/internal/domains/sitter/model/dto"
)

func TestUpsertAvailabilityRequest_ToModel(t *testing.T) {
	req := dto.UpsertAvailabilityRequest{
		IsAvailable: true,
		ActiveHours: map[string][]dto.ActiveHoursRange{
			"monday": {{Start: "09:00", End: "17:00"}},
		},
		BlockedDates: []string{"2024-06-01", "2024-06-02"},
	}

	availability, err := req.ToModel("sitter-1")

	require.NoError(t, err)
	assert.Equal(t, "sitter-1", availability.SitterID)
	assert.True(t, availability.IsAvailable)
	assert.Len(t, availability.BlockedDates, 2)
	assert.Equal(t, "sitter-1", availability.CreatedBy)

	var decoded map[string][]dto.ActiveHoursRange
	require.NoError(t, json.Unmarshal(availability.ActiveHours, &decoded))
	assert.Len(t, decoded["monday"], 1)
}

func TestUpsertAvailabilityRequest_ToModel_InvalidBlockedDate(t *testing.T) {
	req := dto.UpsertAvailabilityRequest{
		IsAvailable:  true,
		BlockedDates: []string{"next tuesday"},
	}

	_, err := req.ToModel("sitter-1")

	assert.Error(t, err)
}

func TestUpsertAvailabilityRequest_ToModel_NilActiveHours(t *testing.T) {
	req := dto.UpsertAvailabilityRequest{IsAvailable: false}

	availability, err := req.ToModel("sitter-1")

	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(availability.ActiveHours))
}

func TestSitterResponse_FromModel(t *testing.T) {
	lat := -6.2

	sitter := model.Sitter{
		ID:            "sitter-1",
		FullName:      "Sam Sitter",
		Email:         "sam@example.com",
		Active:        true,
		Available:     true,
		PetTypes:      []string{"dog", "cat"},
		Latitude:      &lat,
		Rating:        4.7,
		TotalBookings: 31,
	}

	var response dto.SitterResponse
	response.FromModel(sitter)

	assert.Equal(t, sitter.ID, response.ID)
	assert.Equal(t, sitter.FullName, response.FullName)
	assert.True(t, response.Active)
	assert.Equal(t, []string{"dog", "cat"}, response.PetTypes)
	assert.Equal(t, &lat, response.Latitude)
	assert.Equal(t, sitter.Rating, response.Rating)
}
