package assignment

import (
	"net/http"

	"pawsit/internal/domains/assignment/model/dto"
	"pawsit/internal/domains/assignment/service"
	"pawsit/shared/validator"
	"pawsit/transport/http/middleware"
	"pawsit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const requestParamBookingID = "bookingId"

type Handler struct {
	service service.Assignment
}

func New(service service.Assignment) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/assignments", func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.With(middleware.RequirePermission("assignment:trigger")).Post("/", h.Assign)
		r.With(middleware.RequirePermission("assignment:read")).Get("/{bookingId}", h.GetRecord)
		r.With(middleware.RequirePermission("assignment:feedback")).Post("/{bookingId}/feedback", h.Feedback)
		r.With(middleware.RequirePermission("assignment:recover")).Post("/sitter-unavailable", h.SitterUnavailable)
	})
}

// Assign runs the engine for a booking.
//
//	@Summary		Assign the best sitter
//	@Description	Selects, scores and commits the best sitter for the booking. A failed outcome is returned as data, not as an HTTP error.
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AssignRequest	true	"Assignment request"
//	@Success		200		{object}	response.Base{data=model.Result}
//	@Failure		404		{object}	response.Base
//	@Failure		409		{object}	response.Base
//	@Security		BearerToken
//	@Router			/v1/assignments [post]
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.AssignToBooking(r.Context(), req.BookingID, req.PreferredSitterID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRecord returns the assignment audit record for a booking.
//
//	@Summary	Get an assignment record
//	@Tags		assignments
//	@Produce	json
//	@Param		bookingId	path		string	true	"Booking id"
//	@Success	200			{object}	response.Base{data=dto.RecordResponse}
//	@Failure	404			{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/assignments/{bookingId} [get]
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GetRecord(r.Context(), chi.URLParam(r, requestParamBookingID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Feedback attaches post-hoc feedback to a booking's assignment.
//
//	@Summary	Attach assignment feedback
//	@Tags		assignments
//	@Accept		json
//	@Produce	json
//	@Param		bookingId	path		string				true	"Booking id"
//	@Param		request		body		dto.FeedbackRequest	true	"Feedback payload"
//	@Success	200			{object}	response.Base
//	@Failure	404			{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/assignments/{bookingId}/feedback [post]
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req dto.FeedbackRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	if err := h.service.AttachFeedback(r.Context(), chi.URLParam(r, requestParamBookingID), req); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "feedback recorded")
}

// SitterUnavailable resets an assignment whose sitter backed out.
//
//	@Summary		Recover from an unavailable sitter
//	@Description	Cancels the audit record and returns the booking to the pending pool.
//	@Tags			assignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SitterUnavailableRequest	true	"Recovery request"
//	@Success		200		{object}	response.Base
//	@Failure		404		{object}	response.Base
//	@Security		BearerToken
//	@Router			/v1/assignments/sitter-unavailable [post]
func (h *Handler) SitterUnavailable(w http.ResponseWriter, r *http.Request) {
	var req dto.SitterUnavailableRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	if err := h.service.HandleSitterUnavailable(r.Context(), req.SitterID, req.BookingID); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "booking returned to pending")
}
