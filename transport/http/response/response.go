package response

import (
	"encoding/json"
	"net/http"

	"pawsit/shared/constant"
	"pawsit/shared/failure"

	"github.com/rs/zerolog/log"
)

// Base is the envelope for every JSON response.
type Base struct {
	Data    *any    `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
}

// WithJSON sends a payload wrapped in the response envelope.
func WithJSON(w http.ResponseWriter, code int, jsonPayload any) {
	respond(w, code, Base{Data: &jsonPayload})
}

// WithMessage sends a message-only response.
func WithMessage(w http.ResponseWriter, code int, message string) {
	respond(w, code, Base{Message: &message})
}

// WithError resolves the HTTP status from the error and sends it.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	respond(w, code, Base{Error: &errMsg})
}

func respond(w http.ResponseWriter, code int, payload Base) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response payload")
	}
}
