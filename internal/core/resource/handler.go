package resource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI[D any] interface {
	List(ctx context.Context) ([]D, error)
	Get(ctx context.Context, id int64) (D, error)
	Create(ctx context.Context, dto D) (D, error)
	Replace(ctx context.Context, id int64, dto D) error
	Delete(ctx context.Context, id int64) error
}

type Handler[D any] struct {
	*transport.BaseHandler
	Service  ServiceAPI[D]
	name     string
	basePath string
	idOf     func(D) int64
}

// NewHandler serves one resource. basePath is the mount point used to build
// the Location header of a created resource, e.g. "/api/department".
func NewHandler[D any](baseHandler *transport.BaseHandler, service ServiceAPI[D], name, basePath string, idOf func(D) int64) *Handler[D] {
	return &Handler[D]{
		BaseHandler: baseHandler,
		Service:     service,
		name:        name,
		basePath:    basePath,
		idOf:        idOf,
	}
}

// Routes registers the five operations on a router mounted at basePath.
func (h *Handler[D]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Replace)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler[D]) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("List: service error", "resource", h.name, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler[D]) Get(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.PathID(r, "id")
	if appErr != nil {
		h.Logger.Warn("Get: invalid id", "resource", h.name, "id", chi.URLParam(r, "id"))
		h.HandleError(w, appErr)
		return
	}

	dto, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler[D]) Create(w http.ResponseWriter, r *http.Request) {
	var dto D
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Logger.Warn("Create: invalid request body", "resource", h.name, "error", appErr.Cause)
		h.HandleError(w, appErr)
		return
	}

	created, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", h.basePath, h.idOf(created)))
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler[D]) Replace(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.PathID(r, "id")
	if appErr != nil {
		h.Logger.Warn("Replace: invalid id", "resource", h.name, "id", chi.URLParam(r, "id"))
		h.HandleError(w, appErr)
		return
	}

	var dto D
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Logger.Warn("Replace: invalid request body", "resource", h.name, "error", appErr.Cause)
		h.HandleError(w, appErr)
		return
	}

	if err := h.Service.Replace(r.Context(), id, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler[D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.PathID(r, "id")
	if appErr != nil {
		h.Logger.Warn("Delete: invalid id", "resource", h.name, "id", chi.URLParam(r, "id"))
		h.HandleError(w, appErr)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
