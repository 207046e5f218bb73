package middleware

import (
	"net/http"
	"strconv"

	"travelog/shared"
	"travelog/shared/constant"
	"travelog/transport/http/response"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client in a fixed window backed by Redis.
// A cache failure lets the request through.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

		count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
		if err != nil {
			next.ServeHTTP(w, r)

			return
		}

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(w)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(w, r)
	})
}
