package position

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-records/internal/query"
	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/internal/transport"
)

type ServiceAPI interface {
	GetByID(ctx context.Context, id int64, fields string) (response.Response[query.Record], error)
	Create(ctx context.Context, cmd CreateCommand) (response.Response[int64], error)
	Update(ctx context.Context, id int64, cmd UpdateCommand) (response.Response[int64], error)
	Delete(ctx context.Context, id int64) (response.Response[int64], error)
	List(ctx context.Context, q ListQuery) (response.Paged[[]query.Record], error)
	Table(ctx context.Context, q query.TableParams) (response.Table[[]query.Record], error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := ListQuery{
		Params: transport.ListParams(r),
		Filter: Filter{
			Title:    transport.QueryString(r, "title"),
			Number:   transport.QueryString(r, "number"),
			UnitName: transport.QueryString(r, "unitName"),
		},
	}

	resp, err := h.Service.List(r.Context(), q)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	var q query.TableParams
	if err := h.DecodeJSON(r, &q); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp, err := h.Service.Table(r.Context(), q)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp, err := h.Service.GetByID(r.Context(), id, transport.QueryString(r, "fields"))
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := h.DecodeJSON(r, &cmd); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	if err := cmd.Validate(); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp, err := h.Service.Create(r.Context(), cmd)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	var cmd UpdateCommand
	if err := h.DecodeJSON(r, &cmd); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	if err := cmd.Validate(); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp, err := h.Service.Update(r.Context(), id, cmd)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}
