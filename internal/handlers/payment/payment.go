// Package payment receives the payment processor's webhook. The protocol is
// intentionally thin: a signed "payment completed" event flips its booking to
// approved, everything else about the payment flow stays with the processor.
package payment

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"pawsit/config"
	"pawsit/internal/domains/booking/model/dto"
	bookingService "pawsit/internal/domains/booking/service"
	"pawsit/shared/constant"
	"pawsit/shared/failure"
	"pawsit/shared/validator"
	"pawsit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service bookingService.Booking
	cfg     *config.Config
}

func New(service bookingService.Booking, cfg *config.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

func (h *Handler) Router(r chi.Router) {
	r.Post("/payments/webhook", h.Webhook)
}

// Webhook handles payment completion callbacks.
//
//	@Summary		Payment webhook
//	@Description	Verifies the HMAC signature and flips the referenced booking to approved on a completed payment.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Signature	header		string						true	"Hex HMAC-SHA256 of the raw body"
//	@Param			request				body		dto.PaymentWebhookRequest	true	"Webhook payload"
//	@Success		200					{object}	response.Base
//	@Failure		401					{object}	response.Base
//	@Router			/v1/payments/webhook [post]
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("unreadable webhook body"))

		return
	}

	if !h.verifySignature(body, r.Header.Get(constant.RequestHeaderWebhookSignature)) {
		response.WithError(w, failure.Unauthorized("invalid webhook signature"))

		return
	}

	var req dto.PaymentWebhookRequest
	if err := validator.Validate(bytes.NewReader(body), &req); err != nil {
		response.WithError(w, err)

		return
	}

	if req.EventType != dto.PaymentEventCompleted {
		log.Info().Str("event_type", req.EventType).Msg("ignoring unhandled payment event")

		response.WithMessage(w, http.StatusOK, "event ignored")

		return
	}

	if err := h.service.ConfirmPayment(r.Context(), req.BookingID); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "booking approved")
}

func (h *Handler) verifySignature(body []byte, signature string) bool {
	if signature == constant.Empty {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.cfg.External.Payment.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
