package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pawsit/config"
	otelMocks "pawsit/infras/otel/mocks"
	s3Mocks "pawsit/infras/s3/mocks"
	assignmentMocks "pawsit/internal/domains/assignment/mocks"
	"pawsit/internal/domains/assignment/model"
	"pawsit/internal/domains/assignment/model/dto"
	"pawsit/internal/domains/assignment/service"
	serviceMocks "pawsit/internal/domains/assignment/service/mocks"
	bookingMocks "pawsit/internal/domains/booking/mocks"
	bookingModel "pawsit/internal/domains/booking/model"
	notificationModel "pawsit/internal/domains/notification/model"
	notificationMocks "pawsit/internal/domains/notification/service/mocks"
	petMocks "pawsit/internal/domains/pet/mocks"
	sitterMocks "pawsit/internal/domains/sitter/mocks"
	sitterModel "pawsit/internal/domains/sitter/model"
	directoryMocks "pawsit/internal/domains/sitter/service/mocks"
	"pawsit/shared/failure"
	"pawsit/shared/geo"
)

type assignmentFixture struct {
	directory    *directoryMocks.MockSitter
	bookingRepo  *bookingMocks.MockBooking
	sitterRepo   *sitterMocks.MockSitter
	repo         *assignmentMocks.MockAssignment
	trainingRepo *assignmentMocks.MockTraining
	petRepo      *petMocks.MockPet
	notification *notificationMocks.MockNotification
	s3           *s3Mocks.MockS3
	tx           *serviceMocks.MockTxRunner
	svc          service.Assignment
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	ctrl := gomock.NewController(t)

	f := &assignmentFixture{
		directory:    directoryMocks.NewMockSitter(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		sitterRepo:   sitterMocks.NewMockSitter(ctrl),
		repo:         assignmentMocks.NewMockAssignment(ctrl),
		trainingRepo: assignmentMocks.NewMockTraining(ctrl),
		petRepo:      petMocks.NewMockPet(ctrl),
		notification: notificationMocks.NewMockNotification(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
		tx:           serviceMocks.NewMockTxRunner(ctrl),
	}

	cfg := &config.Config{}
	cfg.Assignment.TimeoutSeconds = 15

	f.svc = service.New(
		f.directory,
		f.bookingRepo,
		f.sitterRepo,
		f.repo,
		f.trainingRepo,
		f.petRepo,
		f.notification,
		f.s3,
		f.tx,
		cfg,
		otelMocks.NewOtel(),
	)

	return f
}

// expectOutcomeRecorded covers the best-effort training-log writes that every
// engine run produces.
func (f *assignmentFixture) expectOutcomeRecorded() {
	f.trainingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.s3.EXPECT().
		PutObjectBytes(gomock.Any(), "", gomock.Any(), gomock.Any(), "application/json", gomock.Any()).
		Return("https://cdn.example.com/archive.json", nil)
}

func (f *assignmentFixture) expectTxPassthrough() {
	f.tx.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func strongCandidate(id string) sitterModel.Candidate {
	return sitterModel.Candidate{
		ID:            id,
		FullName:      "Sitter " + id,
		Active:        true,
		Available:     true,
		Availability:  sitterModel.DefaultAvailability(id),
		PetTypes:      []string{"dog"},
		Rating:        4.9,
		TotalBookings: 30,
	}
}

func TestAssignmentService_AssignBestSitter(t *testing.T) {
	t.Run("picks the best candidate and commits", func(t *testing.T) {
		f := newAssignmentFixture(t)

		winner := strongCandidate("sitter-1")
		winner.Location = &geo.Point{Latitude: -6.2, Longitude: 106.81}

		distant := strongCandidate("sitter-2")
		distant.Rating = 3.2
		distant.TotalBookings = 2
		distant.Location = &geo.Point{Latitude: -7.5, Longitude: 110.0}

		f.directory.EXPECT().
			FetchAvailableSitters(gomock.Any()).
			Return([]sitterModel.Candidate{distant, winner}, nil)

		f.expectTxPassthrough()
		f.bookingRepo.EXPECT().
			UpdateCheckedTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.repo.EXPECT().
			UpsertTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, record model.Record, mergeColumns []string) error {
				assert.InDelta(t, 1.0, record.Confidence, 0.0001)
				assert.NotEmpty(t, record.Reasons, "audit row must carry the decision reasons")
				assert.Contains(t, mergeColumns, model.FieldConfidence)
				assert.Contains(t, mergeColumns, model.FieldReasons)

				return nil
			})
		f.sitterRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.notification.EXPECT().
			Enqueue(gomock.Any(), winner.ID, notificationModel.TypeSitterAssigned, gomock.Any())

		f.expectOutcomeRecorded()

		res := f.svc.AssignBestSitter(context.Background(), model.Criteria{
			BookingID:       "booking-1",
			ClientID:        "client-1",
			ServiceType:     bookingModel.ServiceTypeWalk,
			PetTypes:        []string{"dog"},
			BookingLocation: &geo.Point{Latitude: -6.21, Longitude: 106.82},
		})

		require.NotNil(t, res.SitterID)
		assert.Equal(t, "sitter-1", *res.SitterID)
		assert.Equal(t, model.MethodAutomatic, res.Method)
		assert.InDelta(t, 1.0, res.Confidence, 0.0001)
		assert.NotEmpty(t, res.Reasons)
	})

	t.Run("no eligible candidate yields a failed result", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.directory.EXPECT().FetchAvailableSitters(gomock.Any()).Return(nil, nil)
		f.expectOutcomeRecorded()

		res := f.svc.AssignBestSitter(context.Background(), model.Criteria{BookingID: "booking-1"})

		assert.Nil(t, res.SitterID)
		assert.Equal(t, model.MethodFailed, res.Method)
		assert.Zero(t, res.Confidence)
		assert.Equal(t, []string{service.ReasonNoCandidates}, res.Reasons)
	})

	t.Run("directory failure yields a failed result, not an error", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.directory.EXPECT().
			FetchAvailableSitters(gomock.Any()).
			Return(nil, errors.New("store down"))
		f.expectOutcomeRecorded()

		res := f.svc.AssignBestSitter(context.Background(), model.Criteria{BookingID: "booking-1"})

		assert.Nil(t, res.SitterID)
		assert.Equal(t, model.MethodFailed, res.Method)
		require.Len(t, res.Reasons, 1)
		assert.Contains(t, res.Reasons[0], "Sitter directory unavailable")
	})

	t.Run("losing the commit race reports a distinct reason", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.directory.EXPECT().
			FetchAvailableSitters(gomock.Any()).
			Return([]sitterModel.Candidate{strongCandidate("sitter-1")}, nil)

		f.expectTxPassthrough()
		f.bookingRepo.EXPECT().
			UpdateCheckedTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		f.expectOutcomeRecorded()

		res := f.svc.AssignBestSitter(context.Background(), model.Criteria{BookingID: "booking-1"})

		assert.Nil(t, res.SitterID)
		assert.Equal(t, model.MethodFailed, res.Method)
		assert.Equal(t, []string{"Booking is no longer eligible for assignment"}, res.Reasons)
	})
}

func TestAssignmentService_AssignToBooking(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := f.svc.AssignToBooking(context.Background(), "booking-404", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("booking already assigned", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusAssigned}, nil)

		_, err := f.svc.AssignToBooking(context.Background(), "booking-1", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("pending booking runs the engine", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{
				ID:          "booking-1",
				ClientID:    "client-1",
				ServiceType: bookingModel.ServiceTypeWalk,
				Status:      bookingModel.StatusPending,
			}, nil)

		f.directory.EXPECT().
			FetchAvailableSitters(gomock.Any()).
			Return([]sitterModel.Candidate{strongCandidate("sitter-1")}, nil)

		f.expectTxPassthrough()
		f.bookingRepo.EXPECT().
			UpdateCheckedTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.repo.EXPECT().
			UpsertTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.sitterRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.notification.EXPECT().
			Enqueue(gomock.Any(), "sitter-1", notificationModel.TypeSitterAssigned, gomock.Any())

		f.expectOutcomeRecorded()

		res, err := f.svc.AssignToBooking(context.Background(), "booking-1", nil)

		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, model.MethodAutomatic, res.Method)
	})
}

func TestAssignmentService_HandleSitterUnavailable(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		err := f.svc.HandleSitterUnavailable(context.Background(), "sitter-1", "booking-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cancels the record and reopens the booking", func(t *testing.T) {
		f := newAssignmentFixture(t)

		sitterID := "sitter-1"

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{
				ID:       "booking-1",
				ClientID: "client-1",
				Status:   bookingModel.StatusAssigned,
				SitterID: &sitterID,
			}, nil)

		f.expectTxPassthrough()

		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ any) error {
				assert.Equal(t, model.StatusCancelled, req[model.FieldStatus])
				assert.Equal(t, model.CancelReasonSitterUnavailable, req[model.FieldCancelReason])

				return nil
			})

		f.bookingRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ any) error {
				assert.Equal(t, bookingModel.StatusPending, req[bookingModel.FieldStatus])
				assert.Nil(t, req[bookingModel.FieldSitterID])
				assert.Nil(t, req[bookingModel.FieldAssignedAt])

				return nil
			})

		f.notification.EXPECT().
			Enqueue(gomock.Any(), "client-1", notificationModel.TypeSitterUnavailable, gomock.Any())

		err := f.svc.HandleSitterUnavailable(context.Background(), sitterID, "booking-1")

		require.NoError(t, err)
	})
}

func TestAssignmentService_GetRecord(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Record{}, nil)

		_, err := f.svc.GetRecord(context.Background(), "booking-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns the stored decision", func(t *testing.T) {
		f := newAssignmentFixture(t)

		sitterID := "sitter-1"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Record{
			BookingID:  "booking-1",
			SitterID:   &sitterID,
			Method:     model.MethodAutomatic,
			Status:     model.StatusActive,
			Confidence: 0.9,
			AssignedAt: time.Now(),
		}, nil)

		res, err := f.svc.GetRecord(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, model.MethodAutomatic, res.Method)
	})
}

func TestAssignmentService_AttachFeedback(t *testing.T) {
	req := dto.FeedbackRequest{Rating: 4, Success: true}

	t.Run("no training record for the booking", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.trainingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := f.svc.AttachFeedback(context.Background(), "booking-404", req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("stores the feedback fields", func(t *testing.T) {
		f := newAssignmentFixture(t)

		f.trainingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.TrainingRecord{{ID: "training-1", BookingID: "booking-1"}}, nil)

		f.trainingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, _ any) error {
				assert.Equal(t, 4, update["feedback_rating"])
				assert.Equal(t, true, update["feedback_success"])

				return nil
			})

		err := f.svc.AttachFeedback(context.Background(), "booking-1", req)

		require.NoError(t, err)
	})
}
