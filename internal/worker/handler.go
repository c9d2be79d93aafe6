package worker

import (
	"context"
	"net/http"
	"strings"

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
	filter, err := parseFilter(r)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp, err := h.Service.List(r.Context(), ListQuery{Params: transport.ListParams(r), Filter: filter})
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func parseFilter(r *http.Request) (Filter, error) {
	f := Filter{
		FirstName:    transport.QueryString(r, "firstName"),
		LastName:     transport.QueryString(r, "lastName"),
		Email:        transport.QueryString(r, "email"),
		WorkerNumber: transport.QueryString(r, "workerNumber"),
		Phone:        transport.QueryString(r, "phone"),
		Title:        transport.QueryString(r, "title"),
	}

	if g := transport.QueryString(r, "gender"); g != "" {
		gender := Gender(strings.ToLower(g))
		f.Gender = &gender
	}

	var err error
	if f.SalaryMin, err = transport.QueryDecimal(r, "salaryMin"); err != nil {
		return Filter{}, err
	}
	if f.SalaryMax, err = transport.QueryDecimal(r, "salaryMax"); err != nil {
		return Filter{}, err
	}
	if f.BirthdayFrom, err = transport.QueryDate(r, "birthdayFrom"); err != nil {
		return Filter{}, err
	}
	if f.BirthdayTo, err = transport.QueryDate(r, "birthdayTo"); err != nil {
		return Filter{}, err
	}
	return f, nil
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
		h.Logger.Debug("Create: invalid worker command", "error", err)
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
		h.Logger.Debug("Update: invalid worker command", "error", err, "worker_id", id)
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
