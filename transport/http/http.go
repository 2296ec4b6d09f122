package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawsit/config"
	"pawsit/shared/cache"
	"pawsit/shared/constant"
	"pawsit/transport/http/middleware"
	"pawsit/transport/http/response"
	"pawsit/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ServerState tracks where the server is in its lifecycle so the health
// endpoint can fail readiness ahead of the actual shutdown.
type ServerState int

const (
	ServerStateReady ServerState = iota
	ServerStatePreparingShutdown
	ServerStateShuttingDown
)

type HTTP struct {
	cfg    *config.Config
	router router.Router
	cache  cache.RedisCache
	state  ServerState
}

func New(cfg *config.Config, rt router.Router, redisCache cache.RedisCache) *HTTP {
	return &HTTP{
		cfg:    cfg,
		router: rt,
		cache:  redisCache,
	}
}

// SetupAndServe builds the mux and serves until a termination signal, then
// drains with the configured cleanup and grace periods.
func (h *HTTP) SetupAndServe() {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logger)
	mux.Use(middleware.CORS(h.cfg))
	mux.Use(middleware.RateLimiter(h.cfg, h.cache))

	mux.Get("/health", h.health)

	h.router.SetupRoutes(mux)

	addr := fmt.Sprintf("%s:%s", h.cfg.Server.Host, h.cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Str("env", h.cfg.Server.Env).Msg("HTTP server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	h.shutdown(server)
}

// shutdown flips readiness first so load balancers stop routing here, waits
// out the cleanup period, then drains in-flight requests.
func (h *HTTP) shutdown(server *http.Server) {
	h.state = ServerStatePreparingShutdown
	log.Info().Msg("Preparing for shutdown, failing readiness")

	time.Sleep(time.Duration(h.cfg.Server.Shutdown.CleanupPeriodSeconds) * time.Second)

	h.state = ServerStateShuttingDown

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.cfg.Server.Shutdown.GracePeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server gracefully")

		return
	}

	log.Info().Msg("HTTP server shut down gracefully")
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	switch h.state {
	case ServerStatePreparingShutdown:
		response.WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
	case ServerStateShuttingDown:
		response.WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
	default:
		response.WithMessage(w, http.StatusOK, "OK")
	}
}
