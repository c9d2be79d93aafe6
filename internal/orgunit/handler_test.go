package orgunit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal/orgunit"
	"github.com/frahmantamala/hr-records/internal/transport"
)

type envelope struct {
	Succeeded       bool            `json:"succeeded"`
	Message         *string         `json:"message"`
	Errors          []string        `json:"errors"`
	Data            json.RawMessage `json:"data"`
	RecordsTotal    int64           `json:"recordsTotal"`
	RecordsFiltered int64           `json:"recordsFiltered"`
	Draw            int             `json:"draw"`
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decode(w *httptest.ResponseRecorder) envelope {
	var env envelope
	Expect(json.NewDecoder(w.Body).Decode(&env)).To(Succeed())
	return env
}

var _ = Describe("OrgUnit Handler", func() {
	var (
		repo    *mockRepository
		handler *orgunit.Handler
	)

	BeforeEach(func() {
		repo = newMockRepository()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := orgunit.NewService(repo, nil, slogger)
		handler = orgunit.NewHandler(transport.NewBaseHandler(slogger), service)

		for _, name := range []string{"Human Resources", "Engineering", "Marketing", "Finance", "Operations"} {
			_, err := service.Create(context.Background(), orgunit.CreateCommand{Name: name})
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("should list with query parameters", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/org-units?pageNumber=2&pageSize=2&fields=name", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
		env := decode(w)
		Expect(env.Succeeded).To(BeTrue())
		Expect(env.RecordsTotal).To(Equal(int64(5)))
		Expect(string(env.Data)).To(MatchJSON(`[{"name":"Marketing"},{"name":"Finance"}]`))
	})

	It("should answer the table endpoint", func() {
		body := bytes.NewBufferString(`{"draw":3,"pageNumber":1,"pageSize":10,"search":{"value":"ing"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/org-units/table", body)
		w := httptest.NewRecorder()

		handler.Table(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		env := decode(w)
		Expect(env.Draw).To(Equal(3))
		Expect(env.RecordsFiltered).To(Equal(int64(2)))
	})

	It("should create and return 201", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/org-units", bytes.NewBufferString(`{"name":"Legal"}`))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(string(decode(w).Data)).To(Equal("6"))
	})

	It("should reject an invalid command before reaching the service", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/org-units", bytes.NewBufferString(`{"description":"no name"}`))
		w := httptest.NewRecorder()

		handler.Create(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		env := decode(w)
		Expect(env.Succeeded).To(BeFalse())
		Expect(env.Errors).To(ContainElement("name is required"))
		Expect(repo.units).To(HaveLen(5))
	})

	It("should map a missing unit to 404", func() {
		req := withID(httptest.NewRequest(http.MethodDelete, "/api/v1/org-units/77", nil), "77")
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		env := decode(w)
		Expect(*env.Message).To(Equal("Organizational Unit Not Found."))
		Expect(string(env.Data)).To(Equal("null"))
	})

	It("should reject a malformed id", func() {
		req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/org-units/abc", nil), "abc")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should update an existing unit", func() {
		req := withID(httptest.NewRequest(http.MethodPut, "/api/v1/org-units/2", bytes.NewBufferString(`{"name":"R&D"}`)), "2")
		w := httptest.NewRecorder()

		handler.Update(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(repo.units[2].Name).To(Equal("R&D"))
	})

	It("should write 499 when the client went away", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/org-units", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		handler.List(w, req)

		Expect(w.Code).To(Equal(499))
	})
})
