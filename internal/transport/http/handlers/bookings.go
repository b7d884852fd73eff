package http_handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type BookingStore interface {
	Insert(ctx context.Context, b domain.BookedSession) (string, error)
	List(ctx context.Context) ([]domain.BookedSession, error)
	ListByStudentEmail(ctx context.Context, email string) ([]domain.BookedSession, error)
}

type BookingHandler struct {
	store BookingStore
}

func NewBookingHandler(store BookingStore) *BookingHandler {
	return &BookingHandler{store: store}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b domain.BookedSession
	if err := response.DecodeJSON(r, &b); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.store.Insert(r.Context(), b)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.InsertResult{InsertedID: id})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, all)
}

func (h *BookingHandler) ListByStudent(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	got, err := h.store.ListByStudentEmail(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}
