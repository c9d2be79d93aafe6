package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/pkg/logger"
)

// RequestValidator checks requests against an OpenAPI document before they
// reach a handler. Requests for paths the document does not describe pass
// through untouched.
type RequestValidator struct {
	router routers.Router
}

func NewRequestValidator(ctx context.Context, spec []byte) (*RequestValidator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return &RequestValidator{router: router}, nil
}

func (v *RequestValidator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := v.router.FindRoute(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				MultiError:         true,
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			logger.From(r.Context()).Debug("request rejected by openapi validation", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(response.Failure("Validation failed", validationMessages(err)...))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func validationMessages(err error) []string {
	var multi openapi3.MultiError
	if !errors.As(err, &multi) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(multi))
	for _, e := range multi {
		var reqErr *openapi3filter.RequestError
		if errors.As(e, &reqErr) {
			messages = append(messages, reqErr.Error())
			continue
		}
		messages = append(messages, e.Error())
	}
	return messages
}
