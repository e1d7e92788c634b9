package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"delivery-fee-service/internal/http/handlers"
	mw "delivery-fee-service/internal/http/middleware"
	"delivery-fee-service/internal/http/middleware/ratelimit"
	"delivery-fee-service/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// A nil rate limit middleware leaves the quote endpoint unlimited.
func New(
	logger logx.Logger,
	h *handlers.Handlers,
	quote *handlers.QuoteHandler,
	tariff *handlers.TariffHandler,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if rl != nil {
			r.Use(rl.Handler())
		}
		r.Post("/delivery/quote", quote.Quote)
	})

	r.Route("/admin/tariffs", func(r chi.Router) {
		r.Route("/distance", func(r chi.Router) {
			r.Get("/", tariff.ListDistance)
			r.Post("/", tariff.CreateDistance)
			r.Put("/{id}", tariff.UpdateDistance)
			r.Delete("/{id}", tariff.DeleteDistance)
		})
		r.Route("/weight", func(r chi.Router) {
			r.Get("/", tariff.ListWeight)
			r.Post("/", tariff.CreateWeight)
			r.Put("/{id}", tariff.UpdateWeight)
			r.Delete("/{id}", tariff.DeleteWeight)
		})
		r.Route("/windows/{kind}", func(r chi.Router) {
			r.Get("/", tariff.ListWindows)
			r.Post("/", tariff.CreateWindow)
			r.Put("/{id}", tariff.UpdateWindow)
			r.Delete("/{id}", tariff.DeleteWindow)
		})
		r.Get("/settings", tariff.GetSettings)
		r.Put("/settings", tariff.UpdateSettings)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
