package worker_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal/query"
	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/internal/transport"
	"github.com/frahmantamala/hr-records/internal/worker"
)

// stubService records the list query the handler built.
type stubService struct {
	worker.ServiceAPI
	lastQuery worker.ListQuery
	created   *worker.CreateCommand
}

func (s *stubService) List(ctx context.Context, q worker.ListQuery) (response.Paged[[]query.Record], error) {
	s.lastQuery = q
	return response.NewPaged([]query.Record{}, query.NewPage(q.PageNumber, q.PageSize), query.RecordsCount{}), nil
}

func (s *stubService) Create(ctx context.Context, cmd worker.CreateCommand) (response.Response[int64], error) {
	s.created = &cmd
	return response.New(int64(11)), nil
}

var _ = Describe("Worker Handler", func() {
	var (
		stub    *stubService
		handler *worker.Handler
	)

	BeforeEach(func() {
		stub = &stubService{}
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = worker.NewHandler(transport.NewBaseHandler(slogger), stub)
	})

	It("should build the filter from query parameters", func() {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/workers?firstName=John&gender=MALE&salaryMin=1000.50&birthdayTo=1990-12-31&pageSize=500&orderBy=lastName%20desc", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		q := stub.lastQuery
		Expect(q.FirstName).To(Equal("John"))
		Expect(*q.Gender).To(Equal(worker.GenderMale))
		Expect(q.SalaryMin.String()).To(Equal("1000.5"))
		Expect(q.SalaryMax).To(BeNil())
		Expect(q.BirthdayTo.Format("2006-01-02")).To(Equal("1990-12-31"))
		Expect(q.OrderBy).To(Equal("lastName desc"))

		var body map[string]any
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("pageSize", BeNumerically("==", query.MaxPageSize)))
	})

	It("should reject an unparsable salary bound", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/workers?salaryMax=lots", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("salaryMax must be a number"))
	})

	It("should accept salary as a JSON number or string", func() {
		body := `{"workerNumber":"W-9","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com",
			"gender":"female","birthday":"1815-12-10T00:00:00Z","salary":"75000.00","positionId":3}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(stub.created.Salary.String()).To(Equal("75000"))
		Expect(w.Body.String()).To(ContainSubstring(`"data":11`))
	})

	It("should not call the service for an invalid email", func() {
		body := `{"workerNumber":"W-9","firstName":"Ada","lastName":"Lovelace","email":"nope",
			"gender":"female","birthday":"1815-12-10T00:00:00Z","salary":75000,"positionId":3}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("email must be a valid email"))
		Expect(stub.created).To(BeNil())
	})
})
