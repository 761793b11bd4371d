// Package httpadapter exposes the register, record writes, analytics and
// assistant services over a chi router.
package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vantage/internal/metrics"
	"vantage/internal/ports"
)

type Server struct {
	register ports.Register
	records  ports.Records
	assist   ports.Assistant // nil when no model is configured
	log      *slog.Logger
}

func New(register ports.Register, records ports.Records, assist ports.Assistant, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{register: register, records: records, assist: assist, log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware(func(req *http.Request) string {
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			return rctx.RoutePattern()
		}
		return req.URL.Path
	}))

	r.Get("/healthz", s.getHealthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/risks", func(r chi.Router) {
			r.Get("/", s.listRisks)
			r.Post("/", s.createRisk)
			r.Get("/{id}", s.getRisk)
			r.Put("/{id}", s.updateRisk)
			r.Delete("/{id}", s.deleteRisk)
		})
		r.Route("/issues", func(r chi.Router) {
			r.Get("/", s.listIssues)
			r.Post("/", s.createIssue)
			r.Get("/{id}", s.getIssue)
			r.Put("/{id}", s.updateIssue)
			r.Delete("/{id}", s.deleteIssue)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Post("/", s.createProduct)
			r.Put("/{id}", s.updateProduct)
		})
		r.Route("/register", func(r chi.Router) {
			r.Get("/", s.getRegister)
			r.Get("/heatmap", s.getHeatMap)
			r.Get("/levels", s.getLevels)
			r.Get("/statuses", s.getStatuses)
			r.Get("/categories", s.getCategories)
			r.Get("/overdue", s.getOverdue)
			r.Get("/benchmark", s.getBenchmark)
		})
		r.Post("/records/{id}/convert", s.convertRecord)
		r.Route("/assist", func(r chi.Router) {
			r.Use(s.requireAssistant)
			r.Post("/rephrase", s.assistRephrase)
			r.Post("/title", s.assistTitle)
			r.Post("/category", s.assistCategory)
			r.Post("/mitigations", s.assistMitigations)
			r.Post("/similar", s.assistSimilar)
			r.Post("/ask", s.assistAsk)
		})
	})
	return r
}

func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requireAssistant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.assist == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "assistant not configured"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
