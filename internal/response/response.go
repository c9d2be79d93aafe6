// Package response holds the envelopes every endpoint answers with.
package response

import "github.com/frahmantamala/hr-records/internal/query"

type Response[T any] struct {
	Succeeded bool     `json:"succeeded"`
	Message   *string  `json:"message"`
	Errors    []string `json:"errors"`
	Data      T        `json:"data"`
}

func New[T any](data T) Response[T] {
	return Response[T]{Succeeded: true, Data: data}
}

func NewWithMessage[T any](data T, message string) Response[T] {
	r := New(data)
	r.Message = &message
	return r
}

// Failure builds the envelope for a failed request. Data is always null.
func Failure(message string, errs ...string) Response[any] {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return Response[any]{Message: &message, Errors: errs}
}

// Paged is a list result with the paging window and both record counts.
type Paged[T any] struct {
	Response[T]
	PageNumber      int   `json:"pageNumber"`
	PageSize        int   `json:"pageSize"`
	RecordsTotal    int64 `json:"recordsTotal"`
	RecordsFiltered int64 `json:"recordsFiltered"`
}

func NewPaged[T any](data T, page query.Page, count query.RecordsCount) Paged[T] {
	return Paged[T]{
		Response:        New(data),
		PageNumber:      page.Number,
		PageSize:        page.Size,
		RecordsTotal:    count.Total,
		RecordsFiltered: count.Filtered,
	}
}

// Table is the data-grid contract: the client's draw counter is echoed so it
// can discard out-of-order replies.
type Table[T any] struct {
	Draw            int    `json:"draw"`
	RecordsTotal    int64  `json:"recordsTotal"`
	RecordsFiltered int64  `json:"recordsFiltered"`
	Data            T      `json:"data"`
	Error           string `json:"error,omitempty"`
}

func NewTable[T any](draw int, data T, count query.RecordsCount) Table[T] {
	return Table[T]{
		Draw:            draw,
		RecordsTotal:    count.Total,
		RecordsFiltered: count.Filtered,
		Data:            data,
	}
}
