package internal_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-records/internal"
)

func setEnv(key, value string) {
	previous, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, previous)
		} else {
			os.Unsetenv(key)
		}
	})
}

var _ = Describe("Config", func() {
	Describe("LoadConfigFromEnv", func() {
		It("should apply defaults and environment overrides", func() {
			setEnv("DB_SOURCE", "postgres://hr:hr@localhost:5432/hr?sslmode=disable")
			setEnv("HTTP_PORT", "9090")
			setEnv("LOG_FORMAT", "text")

			cfg, err := internal.LoadConfigFromEnv(filepath.Join(GinkgoT().TempDir(), "missing.env"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Port).To(Equal(9090))
			Expect(cfg.Server.ShutdownTimeout).To(Equal(30 * time.Second))
			Expect(cfg.Database.MaxOpenConns).To(Equal(20))
			Expect(cfg.Observability.Logging.Format).To(Equal("text"))
			Expect(cfg.Observability.Metrics.Path).To(Equal("/metrics"))
			Expect(cfg.OpenAPI.ValidateRequests).To(BeTrue())
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should read values from an env file", func() {
			file := filepath.Join(GinkgoT().TempDir(), ".env")
			Expect(os.WriteFile(file, []byte("DB_SOURCE=postgres://from-file\nLOG_LEVEL=debug\n"), 0o600)).To(Succeed())
			DeferCleanup(func() {
				os.Unsetenv("DB_SOURCE")
				os.Unsetenv("LOG_LEVEL")
			})

			cfg, err := internal.LoadConfigFromEnv(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Database.Source).To(Equal("postgres://from-file"))
			Expect(cfg.Observability.Logging.Level).To(Equal("debug"))
		})
	})

	Describe("Validate", func() {
		var cfg internal.Config

		BeforeEach(func() {
			cfg = internal.Config{
				Server: internal.ServerConfig{Port: 8080, ReadHeaderTimeout: time.Second, ReadTimeout: 2 * time.Second},
				Database: internal.DatabaseConfig{
					MaxOpenConns: 10, MaxIdleConns: 2,
					ConnMaxLifetime: time.Hour, ConnMaxIdleTime: time.Minute,
					Source: "postgres://localhost/hr",
				},
				Observability: internal.ObservabilityConfig{
					Logging: internal.LoggingConfig{Level: "info", Format: "json"},
				},
			}
		})

		It("should accept a complete configuration", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject more idle than open connections", func() {
			cfg.Database.MaxIdleConns = 20
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("max_idle_conns")))
		})

		It("should reject an unknown log level", func() {
			cfg.Observability.Logging.Level = "verbose"
			Expect(cfg.Validate()).To(HaveOccurred())
		})

		It("should require a metrics path when metrics are enabled", func() {
			cfg.Observability.Metrics.Enabled = true
			Expect(cfg.Validate()).To(HaveOccurred())
			cfg.Observability.Metrics.Path = "/metrics"
			Expect(cfg.Validate()).To(Succeed())
		})
	})
})
