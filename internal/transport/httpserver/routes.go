package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"split-app-go/internal/config"
	"split-app-go/internal/metrics"
	"split-app-go/internal/transport/httpserver/handler"
	"split-app-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if m != nil {
		r.Use(m.Instrument)
	}
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Post("/groups", handlers.Groups.CreateGroup)
		r.Route("/groups/{id}", func(r chi.Router) {
			r.Get("/", handlers.Groups.GetGroup)
			r.Post("/", handlers.Expenses.CreateExpense)
			r.Get("/balances", handlers.Expenses.GroupBalances)
			r.Post("/settle", handlers.Expenses.Settle)
			r.Get("/expenses", handlers.Expenses.ListExpenses)
			r.Post("/friends", handlers.Groups.AddFriend)
			r.Post("/members", handlers.Groups.AddMember)
		})
	})

	return r
}
