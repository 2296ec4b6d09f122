package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "pawsit/infras/otel/mocks"
	bookingMocks "pawsit/internal/domains/booking/mocks"
	bookingModel "pawsit/internal/domains/booking/model"
	"pawsit/internal/domains/lifecycle/service"
	userMocks "pawsit/internal/domains/user/mocks"
	userModel "pawsit/internal/domains/user/model"
	visitMocks "pawsit/internal/domains/visit/mocks"
	visitModel "pawsit/internal/domains/visit/model"
	"pawsit/shared/timezone"
)

type lifecycleFixture struct {
	bookingRepo *bookingMocks.MockBooking
	visitRepo   *visitMocks.MockVisit
	userRepo    *userMocks.MockUser
	svc         service.Lifecycle
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	ctrl := gomock.NewController(t)

	f := &lifecycleFixture{
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		visitRepo:   visitMocks.NewMockVisit(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
	}

	f.svc = service.New(f.bookingRepo, f.visitRepo, f.userRepo, otelMocks.NewOtel())

	return f
}

func approvedBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:              "booking-1",
		ClientID:        "client-1",
		ServiceType:     bookingModel.ServiceTypeWalk,
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, timezone.GetLocation()),
		TimeOfDay:       "10:00 AM",
		DurationMinutes: 45,
		Status:          bookingModel.StatusApproved,
	}
}

func TestLifecycleService_HandleBookingApproved(t *testing.T) {
	fullName := "Jane Doe"

	t.Run("derives the visit from the booking", func(t *testing.T) {
		f := newLifecycleFixture(t)
		booking := approvedBooking()

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "client-1", FullName: &fullName}, nil)

		var got visitModel.Visit
		var gotColumns []string

		f.visitRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visit visitModel.Visit, mergeColumns []string) error {
				got = visit
				gotColumns = mergeColumns

				return nil
			})

		err := f.svc.HandleBookingApproved(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "booking-1", got.ID)
		assert.Equal(t, "Jane Doe", got.ClientName)
		assert.Equal(t, visitModel.StatusScheduled, got.Status)
		assert.Equal(t, 10, got.ScheduledStart.Hour())
		assert.Equal(t, 0, got.ScheduledStart.Minute())
		assert.Equal(t, 45*time.Minute, got.ScheduledEnd.Sub(got.ScheduledStart))

		// The column is NOT NULL, so a petless booking still writes an
		// empty array.
		assert.NotNil(t, got.PetIDs)
		assert.Empty(t, got.PetIDs)

		// A replay must never drag a progressed visit back, and absent
		// booking fields must not blank existing visit values.
		assert.NotContains(t, gotColumns, visitModel.FieldStatus)
		assert.NotContains(t, gotColumns, visitModel.FieldSitterID)
		assert.NotContains(t, gotColumns, visitModel.FieldAddress)
		assert.NotContains(t, gotColumns, visitModel.FieldPetIDs)
	})

	t.Run("merges sitter and address when the booking carries them", func(t *testing.T) {
		f := newLifecycleFixture(t)

		sitterID := "sitter-1"
		sitterName := "Sam Sitter"
		address := "1 Park Lane"

		booking := approvedBooking()
		booking.Status = bookingModel.StatusAssigned
		booking.SitterID = &sitterID
		booking.SitterName = &sitterName
		booking.Address = &address
		booking.PetIDs = []string{"pet-1"}

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "client-1", FullName: &fullName}, nil)

		var gotColumns []string

		f.visitRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visit visitModel.Visit, mergeColumns []string) error {
				gotColumns = mergeColumns

				return nil
			})

		err := f.svc.HandleBookingApproved(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Contains(t, gotColumns, visitModel.FieldSitterID)
		assert.Contains(t, gotColumns, visitModel.FieldSitterName)
		assert.Contains(t, gotColumns, visitModel.FieldAddress)
		assert.Contains(t, gotColumns, visitModel.FieldPetIDs)
		assert.NotContains(t, gotColumns, visitModel.FieldStatus)
	})

	t.Run("unparsable time falls back to midnight", func(t *testing.T) {
		f := newLifecycleFixture(t)

		booking := approvedBooking()
		booking.TimeOfDay = "whenever"

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "client-1", FullName: &fullName}, nil)

		var got visitModel.Visit

		f.visitRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visit visitModel.Visit, _ []string) error {
				got = visit

				return nil
			})

		err := f.svc.HandleBookingApproved(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, 0, got.ScheduledStart.Hour())
		assert.Equal(t, 0, got.ScheduledStart.Minute())
	})

	t.Run("unknown booking is skipped", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		err := f.svc.HandleBookingApproved(context.Background(), "booking-404")

		require.NoError(t, err)
	})

	t.Run("pending booking is skipped", func(t *testing.T) {
		f := newLifecycleFixture(t)

		booking := approvedBooking()
		booking.Status = bookingModel.StatusPending

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.HandleBookingApproved(context.Background(), "booking-1")

		require.NoError(t, err)
	})

	t.Run("unreadable client profile falls back to a generic name", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedBooking(), nil)
		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, errors.New("store down"))

		var got visitModel.Visit

		f.visitRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visit visitModel.Visit, _ []string) error {
				got = visit

				return nil
			})

		err := f.svc.HandleBookingApproved(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "Client", got.ClientName)
	})
}

func TestLifecycleService_MirrorVisitStatus(t *testing.T) {
	t.Run("equal before and after is a no-op", func(t *testing.T) {
		f := newLifecycleFixture(t)

		err := f.svc.MirrorVisitStatus(context.Background(), "booking-1", visitModel.StatusInProgress, visitModel.StatusInProgress)

		require.NoError(t, err)
	})

	t.Run("in progress stamps the booking check-in", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusAssigned}, nil)

		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updates map[string]any, _ any) error {
				assert.Equal(t, bookingModel.StatusInProgress, updates[bookingModel.FieldStatus])
				assert.Contains(t, updates, bookingModel.FieldCheckIn)
				assert.NotContains(t, updates, bookingModel.FieldCheckOut)

				return nil
			})

		err := f.svc.MirrorVisitStatus(context.Background(), "booking-1", visitModel.StatusScheduled, visitModel.StatusInProgress)

		require.NoError(t, err)
	})

	t.Run("completed stamps the booking check-out", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusInProgress}, nil)

		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updates map[string]any, _ any) error {
				assert.Equal(t, bookingModel.StatusCompleted, updates[bookingModel.FieldStatus])
				assert.Contains(t, updates, bookingModel.FieldCheckOut)

				return nil
			})

		err := f.svc.MirrorVisitStatus(context.Background(), "booking-1", visitModel.StatusInProgress, visitModel.StatusCompleted)

		require.NoError(t, err)
	})

	t.Run("replayed event finds the booking already mirrored", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusInProgress}, nil)

		err := f.svc.MirrorVisitStatus(context.Background(), "booking-1", visitModel.StatusScheduled, visitModel.StatusInProgress)

		require.NoError(t, err)
	})

	t.Run("unknown visit status is skipped", func(t *testing.T) {
		f := newLifecycleFixture(t)

		err := f.svc.MirrorVisitStatus(context.Background(), "booking-1", visitModel.StatusScheduled, "paused")

		require.NoError(t, err)
	})

	t.Run("missing booking is swallowed", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		err := f.svc.MirrorVisitStatus(context.Background(), "visit-orphan", visitModel.StatusInProgress, visitModel.StatusCompleted)

		require.NoError(t, err)
	})
}
