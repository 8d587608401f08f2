// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"goldvault/internal/api/handler"
	"goldvault/internal/service"
)

// Deps collects everything the router needs.
type Deps struct {
	Auth      *handler.AuthHandler
	Price     *handler.PriceHandler
	Order     *handler.OrderHandler
	Portfolio *handler.PortfolioHandler
	Voucher   *handler.VoucherHandler
	Catalog   *handler.CatalogHandler

	AuthService    service.AuthService
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAuth := handler.RequireAuth(d.AuthService, d.Logger)

	r.Route("/api", func(r chi.Router) {
		// Health check endpoint
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/session", d.Auth.ExchangeSession)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", d.Auth.Me)
				r.Post("/logout", d.Auth.Logout)
			})
		})

		r.Route("/gold", func(r chi.Router) {
			r.Get("/prices/current", d.Price.Current)
			r.Get("/prices/historical", d.Price.Historical)
			r.Get("/qar", d.Price.Live)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", d.Order.Create)
				r.Get("/", d.Order.List)
				r.Get("/{orderID}", d.Order.Get)
			})
			r.Get("/portfolio", d.Portfolio.Get)
			r.Route("/vouchers", func(r chi.Router) {
				r.Post("/", d.Voucher.Create)
				r.Get("/", d.Voucher.List)
			})
		})

		r.Get("/jewelry", d.Catalog.Jewelry)
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", d.Catalog.Stores)
			r.Get("/{storeID}", d.Catalog.Store)
			r.Get("/{storeID}/products", d.Catalog.StoreProducts)
		})
	})

	return r
}
