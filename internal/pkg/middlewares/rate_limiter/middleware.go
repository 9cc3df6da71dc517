package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"parcel-service/internal/pkg/middlewares/metrics"
	"parcel-service/internal/pkg/middlewares/request_id"
	"parcel-service/pkg/logger"
)

const rejectBody = `{"message":"Rate limit exceeded. Try again later."}`

// Middleware ограничивает частоту запросов отдельно для каждого клиента.
// qps попадает в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := ClientKey(r)
			route := metrics.RouteTemplate(r)

			if limiter.Allow(client) {
				RateLimiterDecisionsTotal.WithLabelValues(decisionAllowed, r.Method, route).Inc()
				next.ServeHTTP(w, r)
				return
			}

			log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("client", client),
			).Warn("rate limit exceeded")

			RateLimiterDecisionsTotal.WithLabelValues(decisionRejected, r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(rejectBody))
			if err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				)
			}
		})
	}
}

// ClientKey - IP клиента без порта.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
