package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/application/users"
	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/logger"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type UserHandler struct {
	svc *users.Service
}

func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create is idempotent on email: a duplicate insert reports the existing
// record and writes nothing.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := response.DecodeJSON(r, &u); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Create(r.Context(), u)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, res)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, all)
}

// RoleByEmail bootstraps client UI state. Absent users report student.
func (h *UserHandler) RoleByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	role, err := h.svc.RoleFor(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.RoleResponse{Role: role})
}

func (h *UserHandler) ListTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := h.svc.ListTutors(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, tutors)
}

func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SetRoleRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	counts, err := h.svc.SetRole(r.Context(), id, req.Role)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", id).
		Str("role", req.Role).
		Msg("user_role_changed")

	response.OK(w, counts)
}

// Search is the admin user search: case-insensitive substring on name.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	got, err := h.svc.Search(r.Context(), search)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}
