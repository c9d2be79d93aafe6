package middleware

import (
	"net/http"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/pkg/logger"
)

const ActorHeader = "X-User-ID"

// Actor labels the request with the caller named in X-User-ID. It is trusted
// as given: the service sits behind an authenticating gateway.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(ActorHeader)
		if actor == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := internal.ContextWithActor(r.Context(), actor)
		ctx = logger.With(ctx, "actor", actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
