package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studysphere/server/internal/application/sessions"
	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/logger"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

// approvedHomeLimit caps the home-page carousel of approved sessions.
const approvedHomeLimit = 6

type SessionHandler struct {
	svc *sessions.Service
}

func NewSessionHandler(svc *sessions.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s domain.StudySession
	if err := response.DecodeJSON(r, &s); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.svc.Create(r.Context(), s)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.InsertResult{InsertedID: id})
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context(), sessions.Filter{})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, all)
}

func (h *SessionHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	got, err := h.svc.List(r.Context(), sessions.Filter{
		Status: domain.StatusApproved,
		Limit:  approvedHomeLimit,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	// nil serializes as null; the client treats that as "not found".
	response.OK(w, s)
}

func (h *SessionHandler) ListByTutor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	got, err := h.svc.List(r.Context(), sessions.Filter{TutorEmail: email})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}

func (h *SessionHandler) ListApprovedByTutor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	got, err := h.svc.List(r.Context(), sessions.Filter{
		TutorEmail: email,
		Status:     domain.StatusApproved,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, got)
}

// Revert puts a session back to pending so it can be re-reviewed.
func (h *SessionHandler) Revert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	counts, err := h.svc.Revert(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, counts)
}

func (h *SessionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ApproveSessionRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	counts, err := h.svc.Approve(r.Context(), id, req.RegistrationFee)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("session_id", id).
		Float64("registration_fee", req.RegistrationFee).
		Msg("session_approved")

	response.OK(w, counts)
}

func (h *SessionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.RejectSessionRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	counts, err := h.svc.Reject(r.Context(), id, req.RejectionReason, req.Feedback)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("session_id", id).
		Msg("session_rejected")

	response.OK(w, counts)
}

// Update applies a free-form field-set update from the tutor dashboard.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := response.DecodeJSON(r, &fields); err != nil {
		response.WriteError(w, r, err)
		return
	}

	counts, err := h.svc.Update(r.Context(), id, fields)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, counts)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.DeleteResult{DeletedCount: n})
}
