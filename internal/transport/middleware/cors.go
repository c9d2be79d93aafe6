package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS allows the comma-separated origins; "*" allows any. An empty list
// disables cross-origin access entirely.
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	origins := make([]string, 0)
	for _, origin := range strings.Split(allowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader, ActorHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler
}
