package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/4tbox/toolbox/internal/catalog"
	"github.com/4tbox/toolbox/internal/intake"
	"github.com/4tbox/toolbox/internal/metrics"
)

const defaultMaxBodyBytes = 1 << 20

// Options configures a Server. Intake and Metrics may be nil.
type Options struct {
	Port         int
	Version      string
	APIToken     string
	MaxBodyBytes int64
	Catalog      *catalog.Catalog
	Intake       *intake.Service
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

type Server struct {
	router  *chi.Mux
	http    *http.Server
	version string
	catalog *catalog.Catalog
	intake  *intake.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(opts.MaxBodyBytes))

	s := &Server{
		router:  router,
		version: opts.Version,
		catalog: opts.Catalog,
		intake:  opts.Intake,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		now:     time.Now,
	}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	router.Get("/health", s.health)
	if s.metrics != nil {
		router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.status)

		r.Get("/tools", s.listTools)
		r.Get("/tools/{id}", s.getTool)

		r.Route("/text", func(r chi.Router) {
			r.Post("/compare", s.instrument("text-compare", s.compareText))
			r.Post("/stats", s.instrument("word-counter", s.textStats))
			r.Post("/reverse", s.instrument("text-reverse", s.reverseText))
			r.Post("/dedupe", s.instrument("remove-duplicates", s.dedupeText))
			r.Post("/whitespace", s.instrument("whitespace-remover", s.cleanWhitespace))
			r.Post("/density", s.instrument("word-density", s.wordDensity))
			r.Post("/case", s.instrument("text-case-converter", s.convertCase))
		})

		r.Route("/convert", func(r chi.Router) {
			r.Post("/csv-to-json", s.instrument("csv-json", s.csvToJSON))
			r.Post("/json-to-csv", s.instrument("json-csv", s.jsonToCSV))
		})

		r.Route("/dev", func(r chi.Router) {
			r.Post("/json/format", s.instrument("json-formatter", s.formatJSON))
			r.Post("/json/minify", s.instrument("json-minifier", s.minifyJSON))
			r.Post("/jwt/decode", s.instrument("jwt-decoder", s.decodeJWT))
			r.Post("/regex/test", s.instrument("regex-tester", s.testRegex))
			r.Get("/uuid", s.instrument("uuid-generator", s.newUUIDs))
		})

		r.Post("/calc/youtube-ratio", s.instrument("youtube-ratio", s.youtubeRatio))
		r.Get("/generate/lorem", s.instrument("lorem-ipsum", s.lorem))
		r.With(middleware.RealIP).Get("/network/ip", s.instrument("my-ip", s.clientIP))

		r.Route("/encode", func(r chi.Router) {
			r.Post("/base64", s.instrument("base64", s.base64))
			r.Post("/url", s.instrument("url-encoder", s.urlEncode))
		})

		r.Route("/intake", func(r chi.Router) {
			r.Post("/tool-requests", s.submitToolRequest)
			r.Post("/contact", s.submitContact)
			r.With(BearerAuthMiddleware(opts.APIToken)).Get("/tool-requests", s.listToolRequests)
		})
	})

	return s
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("API server starting", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	intakeState := "disabled"
	if s.intake != nil {
		intakeState = "enabled"
	}
	tools := 0
	if s.catalog != nil {
		tools = len(s.catalog.All())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "4tbox",
		"status":  "ok",
		"version": s.version,
		"intake":  intakeState,
		"tools":   tools,
	})
}
