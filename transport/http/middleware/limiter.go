package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"

	"pawsit/config"
	"pawsit/shared"
	"pawsit/shared/cache"
	"pawsit/shared/constant"
	"pawsit/transport/http/response"

	"github.com/rs/zerolog/log"
)

const limiterKeyPrefix = "limiter"

// RateLimiter throttles requests per client IP over a fixed window, backed
// by redis so the limit holds across instances. A cache failure lets the
// request through: throttling is protection, not a correctness guarantee.
func RateLimiter(cfg *config.Config, redisCache cache.RedisCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.App.RateLimiter.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := shared.BuildCacheKey(limiterKeyPrefix, clientIP(r))

			var count int
			if err := redisCache.Get(ctx, key, &count); err != nil && !errors.Is(err, cache.Nil) {
				log.Error().Err(err).Msg("rate limiter cache unavailable, letting request through")

				next.ServeHTTP(w, r)

				return
			}

			if count >= cfg.App.RateLimiter.MaxRequests {
				w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(cfg.App.RateLimiter.MaxRequests))
				w.Header().Set(constant.RequestHeaderRateLimitRemaining, "0")
				w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(cfg.App.RateLimiter.WindowSeconds))

				response.WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)

				return
			}

			if err := redisCache.Save(ctx, key, count+1, cfg.App.RateLimiter.WindowSeconds); err != nil {
				log.Error().Err(err).Msg("failed to bump rate limiter counter")
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(cfg.App.RateLimiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(cfg.App.RateLimiter.MaxRequests-count-1))

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != constant.Empty {
		return forwarded
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != constant.Empty {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
