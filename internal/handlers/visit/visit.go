package visit

import (
	"net/http"

	"pawsit/internal/domains/visit/model"
	"pawsit/internal/domains/visit/model/dto"
	"pawsit/internal/domains/visit/service"
	"pawsit/shared/constant"
	gDto "pawsit/shared/dto"
	"pawsit/shared/validator"
	"pawsit/transport/http/middleware"
	"pawsit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Visit
}

func New(service service.Visit) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/visits", func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.With(middleware.RequirePermission("visit:read")).Get("/", h.GetAll)
		r.With(middleware.RequirePermission("visit:read")).Get("/{id}", h.Get)
		r.With(middleware.RequirePermission("visit:transition")).Post("/{id}/check-in", h.CheckIn)
		r.With(middleware.RequirePermission("visit:transition")).Post("/{id}/check-out", h.CheckOut)
		r.With(middleware.RequirePermission("visit:transition")).Post("/{id}/cancel", h.Cancel)
		r.With(middleware.RequirePermission("visit:note")).Patch("/{id}/note", h.UpdateNote)
	})
}

// Get returns one visit.
//
//	@Summary	Get a visit
//	@Tags		visits
//	@Produce	json
//	@Param		id	path		string	true	"Visit id"
//	@Success	200	{object}	response.Base{data=dto.VisitResponse}
//	@Failure	404	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/visits/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Get(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAll lists visits visible to the caller.
//
//	@Summary	List visits
//	@Tags		visits
//	@Produce	json
//	@Param		page	query		int	false	"Page"
//	@Param		limit	query		int	false	"Limit"
//	@Success	200		{object}	response.Base{data=dto.GetVisitsResponse}
//	@Security	BearerToken
//	@Router		/v1/visits [get]
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

// CheckIn starts a scheduled visit.
//
//	@Summary	Check in to a visit
//	@Tags		visits
//	@Produce	json
//	@Param		id	path		string	true	"Visit id"
//	@Success	200	{object}	response.Base
//	@Failure	409	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/visits/{id}/check-in [post]
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	err := h.service.CheckIn(r.Context(), chi.URLParam(r, constant.RequestParamID), middleware.UserID(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "visit started")
}

// CheckOut completes an in-progress visit.
//
//	@Summary	Check out of a visit
//	@Tags		visits
//	@Produce	json
//	@Param		id	path		string	true	"Visit id"
//	@Success	200	{object}	response.Base
//	@Failure	409	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/visits/{id}/check-out [post]
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	err := h.service.CheckOut(r.Context(), chi.URLParam(r, constant.RequestParamID), middleware.UserID(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "visit completed")
}

// Cancel cancels a visit.
//
//	@Summary	Cancel a visit
//	@Tags		visits
//	@Produce	json
//	@Param		id	path		string	true	"Visit id"
//	@Success	200	{object}	response.Base
//	@Failure	409	{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/visits/{id}/cancel [post]
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	err := h.service.Cancel(r.Context(), chi.URLParam(r, constant.RequestParamID), middleware.UserID(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "visit cancelled")
}

// UpdateNote replaces the visit note.
//
//	@Summary	Update the visit note
//	@Tags		visits
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Visit id"
//	@Param		request	body		dto.UpdateNoteRequest	true	"Note payload"
//	@Success	200		{object}	response.Base
//	@Security	BearerToken
//	@Router		/v1/visits/{id}/note [patch]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateNoteRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	err := h.service.UpdateNote(r.Context(), chi.URLParam(r, constant.RequestParamID), middleware.UserID(r.Context()), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "note updated")
}

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
