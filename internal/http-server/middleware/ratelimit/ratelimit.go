package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"seatBooker/internal/lib/api/response"
	"seatBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Limiter
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// New limits requests per client address under the given scope. Limiter
// errors let the request through.
//
// The client address is the TCP peer unless trustedProxies is positive. In
// that case it is the X-Forwarded-For entry appended by the outermost of
// those proxies; entries to its left are client controlled and ignored.
func New(log *slog.Logger, limiter Limiter, scope string, trustedProxies int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/ratelimit"),
			slog.String("scope", scope),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientIP(r, trustedProxies)

			allowed, retryAfter, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.Warn("rate limiter unavailable", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				secs := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))

				log.Info("request rate limited", slog.String("key", key))

				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func clientIP(r *http.Request, trustedProxies int) string {
	if trustedProxies > 0 {
		var hops []string
		for _, h := range r.Header.Values("X-Forwarded-For") {
			for _, part := range strings.Split(h, ",") {
				hops = append(hops, strings.TrimSpace(part))
			}
		}

		if i := len(hops) - trustedProxies; i >= 0 {
			if ip := net.ParseIP(hops[i]); ip != nil {
				return ip.String()
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
