package sitter

import (
	"net/http"

	"pawsit/internal/domains/sitter/model"
	"pawsit/internal/domains/sitter/model/dto"
	"pawsit/internal/domains/sitter/service"
	"pawsit/shared"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/validator"
	"pawsit/transport/http/middleware"
	"pawsit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const requestParamAvailable = "available"

type Handler struct {
	service service.Sitter
}

func New(service service.Sitter) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/sitters", func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.With(middleware.RequirePermission("sitter:read")).Get("/", h.GetAll)
		r.With(middleware.RequirePermission("sitter:read")).Get("/{id}", h.Get)
		r.With(middleware.RequirePermission("sitter:availability")).Put("/availability", h.UpsertAvailability)
	})
}

// Get returns one sitter profile.
//
//	@Summary	Get a sitter
//	@Tags		sitters
//	@Produce	json
//	@Param		id	path		string	true	"Sitter id"
//	@Success	200	{object}	response.Base{data=dto.SitterResponse}
//	@Failure	404	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/sitters/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Get(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAll lists sitter profiles.
//
//	@Summary	List sitters
//	@Tags		sitters
//	@Produce	json
//	@Param		page		query		int		false	"Page"
//	@Param		limit		query		int		false	"Limit"
//	@Param		available	query		bool	false	"Only currently available sitters"
//	@Success	200			{object}	response.Base{data=dto.GetSittersResponse}
//	@Security	BearerToken
//	@Router		/v1/sitters [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	var params gDto.QueryParams
	params.FromRequest(r, true)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(requestParamAvailable)); available != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	res, err := h.service.GetAll(r.Context(), params, filter)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpsertAvailability replaces the caller's availability descriptor.
//
//	@Summary	Upsert own availability
//	@Tags		sitters
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpsertAvailabilityRequest	true	"Availability payload"
//	@Success	200		{object}	response.Base
//	@Failure	400		{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/sitters/availability [put]
func (h *Handler) UpsertAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertAvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	if err := h.service.UpsertAvailability(r.Context(), req, middleware.UserID(r.Context())); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "availability updated")
}
