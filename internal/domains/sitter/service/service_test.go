package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pawsit/config"
	otelMocks "pawsit/infras/otel/mocks"
	bookingMocks "pawsit/internal/domains/booking/mocks"
	bookingModel "pawsit/internal/domains/booking/model"
	sitterMocks "pawsit/internal/domains/sitter/mocks"
	"pawsit/internal/domains/sitter/model"
	"pawsit/internal/domains/sitter/model/dto"
	"pawsit/internal/domains/sitter/service"
	"pawsit/shared/failure"
)

type sitterFixture struct {
	repo             *sitterMocks.MockSitter
	availabilityRepo *sitterMocks.MockAvailability
	bookingRepo      *bookingMocks.MockBooking
	svc              service.Sitter
}

func newSitterFixture(t *testing.T) *sitterFixture {
	ctrl := gomock.NewController(t)

	f := &sitterFixture{
		repo:             sitterMocks.NewMockSitter(ctrl),
		availabilityRepo: sitterMocks.NewMockAvailability(ctrl),
		bookingRepo:      bookingMocks.NewMockBooking(ctrl),
	}

	f.svc = service.New(f.repo, f.availabilityRepo, f.bookingRepo, &config.Config{}, otelMocks.NewOtel())

	return f
}

func activeSitter(id string) model.Sitter {
	return model.Sitter{
		ID:            id,
		FullName:      "Sitter " + id,
		Email:         id + "@example.com",
		Active:        true,
		Available:     true,
		PetTypes:      []string{"dog"},
		Rating:        4.5,
		TotalBookings: 12,
	}
}

func TestSitterService_FetchAvailableSitters(t *testing.T) {
	t.Run("enriches each profile with availability and last assignment", func(t *testing.T) {
		f := newSitterFixture(t)

		assignedAt := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
		profileFallback := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

		withHistory := activeSitter("sitter-1")
		neverAssigned := activeSitter("sitter-2")
		neverAssigned.LastAssignedAt = &profileFallback

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Sitter{withHistory, neverAssigned}, nil)

		// sitter-1 has an availability row; sitter-2 has none and must fall
		// open to the default descriptor.
		f.availabilityRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ ...string) (model.Availability, error) {
				return model.Availability{SitterID: "sitter-1", IsAvailable: true}, nil
			})
		f.availabilityRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{}, nil)

		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "booking-1", AssignedAt: &assignedAt}}, nil)
		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		candidates, err := f.svc.FetchAvailableSitters(context.Background())

		require.NoError(t, err)
		require.Len(t, candidates, 2)

		byID := map[string]model.Candidate{}
		for _, c := range candidates {
			byID[c.ID] = c
		}

		require.Contains(t, byID, "sitter-1")
		require.Contains(t, byID, "sitter-2")
		assert.True(t, byID["sitter-2"].Availability.IsAvailable)
	})

	t.Run("roster error fails the whole fetch", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("store down"))

		candidates, err := f.svc.FetchAvailableSitters(context.Background())

		require.Error(t, err)
		assert.Nil(t, candidates)
	})

	t.Run("enrichment error fails the whole fetch", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Sitter{activeSitter("sitter-1")}, nil)
		f.availabilityRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{}, errors.New("store down"))

		candidates, err := f.svc.FetchAvailableSitters(context.Background())

		require.Error(t, err)
		assert.Nil(t, candidates)
	})

	t.Run("profile fallback is used when no booking history exists", func(t *testing.T) {
		f := newSitterFixture(t)

		profileFallback := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
		sitter := activeSitter("sitter-1")
		sitter.LastAssignedAt = &profileFallback

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Sitter{sitter}, nil)
		f.availabilityRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{}, nil)
		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		candidates, err := f.svc.FetchAvailableSitters(context.Background())

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		require.NotNil(t, candidates[0].LastAssignedAt)
		assert.Equal(t, profileFallback, *candidates[0].LastAssignedAt)
	})

	t.Run("an unavailable descriptor is carried through", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Sitter{activeSitter("sitter-1")}, nil)
		f.availabilityRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{SitterID: "sitter-1", IsAvailable: false}, nil)
		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		candidates, err := f.svc.FetchAvailableSitters(context.Background())

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.False(t, candidates[0].Availability.IsAvailable)
	})
}

func TestSitterService_Get(t *testing.T) {
	t.Run("unknown sitter", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Sitter{}, nil)

		_, err := f.svc.Get(context.Background(), "sitter-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns the profile", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeSitter("sitter-1"), nil)

		res, err := f.svc.Get(context.Background(), "sitter-1")

		require.NoError(t, err)
		assert.Equal(t, "sitter-1", res.ID)
		assert.True(t, res.Available)
	})
}

func TestSitterService_UpsertAvailability(t *testing.T) {
	t.Run("unknown sitter", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.UpsertAvailability(context.Background(), dto.UpsertAvailabilityRequest{}, "sitter-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("invalid blocked date", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.UpsertAvailability(context.Background(), dto.UpsertAvailabilityRequest{
			IsAvailable:  true,
			BlockedDates: []string{"next tuesday"},
		}, "sitter-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("writes the descriptor", func(t *testing.T) {
		f := newSitterFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.availabilityRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, availability model.Availability, _ []string) error {
				assert.Equal(t, "sitter-1", availability.SitterID)
				assert.False(t, availability.IsAvailable)
				assert.Equal(t, []string{"2024-06-01"}, []string(availability.BlockedDates))

				return nil
			})

		err := f.svc.UpsertAvailability(context.Background(), dto.UpsertAvailabilityRequest{
			IsAvailable:  false,
			BlockedDates: []string{"2024-06-01"},
		}, "sitter-1")

		require.NoError(t, err)
	})
}
