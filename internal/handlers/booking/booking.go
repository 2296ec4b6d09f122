package booking

import (
	"net/http"

	"pawsit/internal/domains/booking/model"
	"pawsit/internal/domains/booking/model/dto"
	"pawsit/internal/domains/booking/service"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/validator"
	"pawsit/transport/http/middleware"
	"pawsit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
}

func New(service service.Booking) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.With(middleware.RequirePermission("booking:create")).Post("/", h.Create)
		r.With(middleware.RequirePermission("booking:read")).Get("/", h.GetAll)
		r.With(middleware.RequirePermission("booking:read")).Get("/{id}", h.Get)
		r.With(middleware.RequirePermission("booking:cancel")).Post("/{id}/cancel", h.Cancel)
	})
}

// Create creates a booking.
//
//	@Summary		Create a booking
//	@Description	Creates a pending booking for the authenticated client.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequest	true	"Booking payload"
//	@Success		201		{object}	response.Base{data=dto.BookingResponse}
//	@Failure		400		{object}	response.Base
//	@Security		BearerToken
//	@Router			/v1/bookings [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Get returns one booking.
//
//	@Summary	Get a booking
//	@Tags		bookings
//	@Produce	json
//	@Param		id	path		string	true	"Booking id"
//	@Success	200	{object}	response.Base{data=dto.BookingResponse}
//	@Failure	404	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/bookings/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Get(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAll lists bookings visible to the caller.
//
//	@Summary	List bookings
//	@Tags		bookings
//	@Produce	json
//	@Param		page	query		int	false	"Page"
//	@Param		limit	query		int	false	"Limit"
//	@Success	200		{object}	response.Base{data=dto.GetBookingsResponse}
//	@Security	BearerToken
//	@Router		/v1/bookings [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	var params gDto.QueryParams
	params.FromRequest(r, true)

	res, err := h.service.GetAll(r.Context(), params, scopeFilter(r))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Cancel cancels a pending booking.
//
//	@Summary	Cancel a booking
//	@Tags		bookings
//	@Produce	json
//	@Param		id	path		string	true	"Booking id"
//	@Success	200	{object}	response.Base
//	@Failure	409	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/bookings/{id}/cancel [post]
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	err := h.service.Cancel(r.Context(), chi.URLParam(r, constant.RequestParamID), middleware.UserID(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "booking cancelled")
}

// scopeFilter restricts listings to the caller's own records unless the
// caller is an admin.
func scopeFilter(r *http.Request) gDto.FilterGroup {
	ctx := r.Context()

	switch middleware.UserRole(ctx) {
	case constant.RoleClient:
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldClientID,
					Operator: gDto.FilterOperatorEq,
					Value:    middleware.UserID(ctx),
					Table:    model.TableName,
				},
			},
		}
	case constant.RoleSitter:
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldSitterID,
					Operator: gDto.FilterOperatorEq,
					Value:    middleware.UserID(ctx),
					Table:    model.TableName,
				},
			},
		}
	default:
		return gDto.FilterGroup{}
	}
}
