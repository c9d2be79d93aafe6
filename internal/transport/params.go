package transport

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/query"
)

const dateLayout = "2006-01-02"

// ListParams reads the paging and shaping parameters shared by every list
// endpoint. Missing or unparsable numbers are left at zero so the paginator
// applies its defaults.
func ListParams(r *http.Request) query.Params {
	q := r.URL.Query()
	return query.Params{
		PageNumber: queryInt(q.Get("pageNumber")),
		PageSize:   queryInt(q.Get("pageSize")),
		Fields:     q.Get("fields"),
		OrderBy:    q.Get("orderBy"),
	}
}

func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// QueryString returns the trimmed value of key.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// QueryDecimal parses an optional money bound.
func QueryDecimal(r *http.Request, key string) (*decimal.Decimal, error) {
	raw := QueryString(r, key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, internal.NewValidationFieldError(key, key+" must be a number", internal.ErrCodeInvalidRequest)
	}
	return &d, nil
}

// QueryDate parses an optional date bound, either a plain date or RFC 3339.
func QueryDate(r *http.Request, key string) (*time.Time, error) {
	raw := QueryString(r, key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, internal.NewValidationFieldError(key, key+" must be a date (YYYY-MM-DD)", internal.ErrCodeInvalidRequest)
}
