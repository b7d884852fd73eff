package http_handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type ReviewStore interface {
	Insert(ctx context.Context, r domain.Review) (string, error)
	List(ctx context.Context) ([]domain.Review, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Review, error)
}

type ReviewHandler struct {
	store ReviewStore
}

func NewReviewHandler(store ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rev domain.Review
	if err := response.DecodeJSON(r, &rev); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.store.Insert(r.Context(), rev)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.InsertResult{InsertedID: id})
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, all)
}

func (h *ReviewHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	got, err := h.store.ListBySessionID(r.Context(), sessionID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}
