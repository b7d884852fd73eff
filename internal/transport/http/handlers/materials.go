package http_handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type MaterialStore interface {
	Insert(ctx context.Context, m domain.Material) (string, error)
	List(ctx context.Context) ([]domain.Material, error)
	ListByTutorEmail(ctx context.Context, email string) ([]domain.Material, error)
	ListBySessionIDs(ctx context.Context, sessionIDs []string) ([]domain.Material, error)
	Update(ctx context.Context, id string, link string, image string) (domain.UpdateCounts, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type MaterialHandler struct {
	store MaterialStore
}

func NewMaterialHandler(store MaterialStore) *MaterialHandler {
	return &MaterialHandler{store: store}
}

func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m domain.Material
	if err := response.DecodeJSON(r, &m); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.store.Insert(r.Context(), m)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.InsertResult{InsertedID: id})
}

func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, all)
}

func (h *MaterialHandler) ListByTutor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	got, err := h.store.ListByTutorEmail(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}

// ListBySessions serves a student's materials for every session they
// booked: ?sessionIds=a,b,c.
func (h *MaterialHandler) ListBySessions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("sessionIds")
	if raw == "" {
		response.WriteError(w, r, domain.ErrMissingField("sessionIds"))
		return
	}

	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	got, err := h.store.ListBySessionIDs(r.Context(), ids)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}

func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateMaterialRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	counts, err := h.store.Update(r.Context(), id, req.Link, req.Image)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, counts)
}

func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.store.Delete(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.DeleteResult{DeletedCount: n})
}
