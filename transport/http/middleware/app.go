package middleware

import (
	"net/http"
	"time"

	"pawsit/config"
	"pawsit/shared/constant"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CORS builds the CORS middleware from configuration. Disabled CORS returns
// a pass-through.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	if !cfg.App.CORS.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORS.AllowedOrigins,
		AllowedMethods:   cfg.App.CORS.AllowedMethods,
		AllowedHeaders:   cfg.App.CORS.AllowedHeaders,
		AllowCredentials: cfg.App.CORS.AllowCredentials,
		MaxAge:           cfg.App.CORS.MaxAgeSeconds,
	})
}

// RequestID attaches an id to the request and response for correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constant.RequestHeaderRequestID)
		if requestID == constant.Empty {
			requestID = uuid.NewString()
		}

		w.Header().Set(constant.RequestHeaderRequestID, requestID)

		next.ServeHTTP(w, r)
	})
}

// Logger logs one line per request with method, path, status and latency.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("latency", time.Since(start)).
			Str("request_id", w.Header().Get(constant.RequestHeaderRequestID)).
			Msg("request handled")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
