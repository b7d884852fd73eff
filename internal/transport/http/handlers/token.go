package http_handlers

import (
	"net/http"

	"github.com/studysphere/server/internal/infrastructure/security"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type TokenIssuer interface {
	Issue(claims security.Claims) (string, error)
}

type TokenHandler struct {
	issuer TokenIssuer
}

func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

// Issue signs whatever claims body the caller supplies. No credential
// check happens here: trust is established upstream, and authorization
// strength comes from the per-request role lookup at the gate, never from
// the token's own contents.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var claims security.Claims
	if err := response.DecodeJSON(r, &claims); err != nil {
		response.WriteError(w, r, err)
		return
	}

	token, err := h.issuer.Issue(claims)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.TokenResponse{Token: token})
}
