package http_handlers

import (
	"context"
	"math"
	"net/http"

	"github.com/studysphere/server/internal/domain"
	"github.com/studysphere/server/internal/logger"
	"github.com/studysphere/server/internal/transport/http/dto"
	"github.com/studysphere/server/internal/transport/http/response"
)

type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, p domain.Payment) (string, error)
}

type PaymentHandler struct {
	provider IntentCreator
	store    PaymentStore
}

func NewPaymentHandler(provider IntentCreator, store PaymentStore) *PaymentHandler {
	return &PaymentHandler{provider: provider, store: store}
}

// CreateIntent charges price * 100 minor units in USD and returns only the
// client-facing secret. The charge record itself arrives later through
// Create once the client confirms.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	amount := int64(math.Round(req.Price * 100))

	secret, err := h.provider.CreateIntent(r.Context(), amount)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("amount_cents", amount).
		Msg("payment_intent_created")

	response.OK(w, dto.PaymentIntentResponse{ClientSecret: secret})
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Payment
	if err := response.DecodeJSON(r, &p); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.store.Insert(r.Context(), p)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.InsertResult{InsertedID: id})
}
