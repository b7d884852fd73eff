package http_handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type NoteStore interface {
	Insert(ctx context.Context, n domain.Note) (string, error)
	List(ctx context.Context) ([]domain.Note, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Note, error)
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	Update(ctx context.Context, id string, title, description string) (domain.UpdateCounts, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type NoteHandler struct {
	store NoteStore
}

func NewNoteHandler(store NoteStore) *NoteHandler {
	return &NoteHandler{store: store}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var n domain.Note
	if err := response.DecodeJSON(r, &n); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.store.Insert(r.Context(), n)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.InsertResult{InsertedID: id})
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, all)
}

func (h *NoteHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	got, err := h.store.ListByEmail(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, n)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateNoteRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	counts, err := h.store.Update(r.Context(), id, req.Title, req.Description)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, counts)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.store.Delete(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.DeleteResult{DeletedCount: n})
}
