package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-records/api"
	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/band"
	bandPostgres "github.com/frahmantamala/hr-records/internal/band/postgres"
	bandDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/band"
	orgunitDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/orgunit"
	positionDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/position"
	workerDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/worker"
	"github.com/frahmantamala/hr-records/internal/orgunit"
	orgunitPostgres "github.com/frahmantamala/hr-records/internal/orgunit/postgres"
	"github.com/frahmantamala/hr-records/internal/position"
	positionPostgres "github.com/frahmantamala/hr-records/internal/position/postgres"
	"github.com/frahmantamala/hr-records/internal/transport"
	"github.com/frahmantamala/hr-records/internal/transport/rest"
	"github.com/frahmantamala/hr-records/internal/worker"
	workerPostgres "github.com/frahmantamala/hr-records/internal/worker/postgres"
)

var _ = Describe("Router", func() {
	var (
		router *chi.Mux
		logs   *bytes.Buffer
	)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = bytes.NewBufferString(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-User-ID", "router-test")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		DeferCleanup(sqlDB.Close)
		Expect(db.AutoMigrate(
			&orgunitDatamodel.OrgUnit{}, &bandDatamodel.Band{}, &positionDatamodel.Position{}, &workerDatamodel.Worker{},
		)).To(Succeed())

		logs = &bytes.Buffer{}
		slogger := slog.New(slog.NewJSONHandler(logs, nil))
		base := transport.NewBaseHandler(slogger)
		handlers := rest.Handlers{
			OrgUnits:  orgunit.NewHandler(base, orgunit.NewService(orgunitPostgres.NewOrgUnitRepository(db), nil, slogger)),
			Workers:   worker.NewHandler(base, worker.NewService(workerPostgres.NewWorkerRepository(db), nil, slogger)),
			Positions: position.NewHandler(base, position.NewService(positionPostgres.NewPositionRepository(db), nil, slogger)),
			Bands:     band.NewHandler(base, band.NewService(bandPostgres.NewBandRepository(db), nil, slogger)),
		}

		cfg := &internal.Config{}
		cfg.Observability.Metrics.Enabled = true
		cfg.Observability.Metrics.Path = "/metrics"
		cfg.OpenAPI.ValidateRequests = true

		router = chi.NewRouter()
		Expect(rest.RegisterAllRoutes(router, sqlDB, handlers, cfg, slogger)).To(Succeed())
	})

	It("should run a unit through create, read, list and delete", func() {
		w := do(http.MethodPost, "/api/v1/org-units", `{"name":"Engineering","description":"Builds things"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = do(http.MethodGet, "/api/v1/org-units/1?fields=name,createdBy", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"succeeded":true,"message":null,"errors":null,"data":{"name":"Engineering","createdBy":"router-test"}}`))

		w = do(http.MethodGet, "/api/v1/org-units?name=eng&fields=id", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		var paged map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &paged)).To(Succeed())
		Expect(paged).To(HaveKeyWithValue("recordsFiltered", BeNumerically("==", 1)))
		Expect(paged).To(HaveKeyWithValue("pageNumber", BeNumerically("==", 1)))

		Expect(do(http.MethodDelete, "/api/v1/org-units/1", "").Code).To(Equal(http.StatusOK))
		Expect(do(http.MethodGet, "/api/v1/org-units/1", "").Code).To(Equal(http.StatusNotFound))
	})

	It("should serve the band table endpoint", func() {
		for _, body := range []string{
			`{"name":"Level 1","currency":"EUR","minSalary":1000,"maxSalary":"2000.50"}`,
			`{"name":"Level 2","currency":"EUR","minSalary":3000,"maxSalary":4000}`,
		} {
			Expect(do(http.MethodPost, "/api/v1/compensation-bands", body).Code).To(Equal(http.StatusCreated))
		}

		w := do(http.MethodPost, "/api/v1/compensation-bands/table", `{"draw":5,"search":{"value":"level 2"}}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		var table map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &table)).To(Succeed())
		Expect(table).To(HaveKeyWithValue("draw", BeNumerically("==", 5)))
		Expect(table).To(HaveKeyWithValue("recordsTotal", BeNumerically("==", 2)))
		Expect(table).To(HaveKeyWithValue("recordsFiltered", BeNumerically("==", 1)))
	})

	It("should reject an inverted salary range", func() {
		w := do(http.MethodPost, "/api/v1/compensation-bands", `{"name":"Bad","currency":"EUR","minSalary":5,"maxSalary":1}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("maxSalary must be greater than minSalary"))
	})

	It("should reject requests the document forbids", func() {
		w := do(http.MethodPost, "/api/v1/workers", `{"firstName":"Jane"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(`"succeeded":false`))
	})

	It("should map unknown ids to 404 with the resource message", func() {
		w := do(http.MethodPut, "/api/v1/workers/9",
			`{"workerNumber":"W-1","firstName":"A","lastName":"B","email":"a@b.io","gender":"other","birthday":"1990-01-01T00:00:00Z","salary":1,"positionId":1}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("Worker Not Found."))
	})

	It("should compress large responses for clients that accept gzip", func() {
		req := httptest.NewRequest(http.MethodGet, "/openapi.yml", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Encoding")).To(Equal("gzip"))
		Expect(w.Body.Len()).To(BeNumerically("<", len(api.Spec)))
		Expect(logs.String()).To(ContainSubstring(fmt.Sprintf(`"response_size":%d`, len(api.Spec))))
	})

	It("should expose health, the document and metrics", func() {
		Expect(do(http.MethodGet, "/api/v1/health", "").Code).To(Equal(http.StatusOK))
		Expect(do(http.MethodGet, "/openapi.yml", "").Body.String()).To(ContainSubstring("openapi: 3.0.3"))

		do(http.MethodGet, "/api/v1/ping", "")
		w := do(http.MethodGet, "/metrics", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`hr_records_http_requests_total{method="GET",route="/api/v1/ping",status="200"}`))
	})
})
