package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ulule/limiter/v3"
	limiterStdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/frahmantamala/hr-records/internal/response"
)

// RateLimit limits requests per client IP using a formatted rate such as
// "100-M" (100 per minute). Counters live in process memory.
func RateLimit(rate string) (func(http.Handler) http.Handler, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	instance := limiter.New(memory.NewStore(), parsed)
	m := limiterStdlib.NewMiddleware(instance,
		limiterStdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(response.Failure("Too many requests."))
		}),
	)
	return m.Handler, nil
}
