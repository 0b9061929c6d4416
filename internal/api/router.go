package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shareledger/dividend-backend/internal/api/handlers"
	custommiddleware "github.com/shareledger/dividend-backend/internal/api/middleware"
	"github.com/shareledger/dividend-backend/internal/config"
	"github.com/shareledger/dividend-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(db *sql.DB, productService *service.ProductService, ledgerService *service.LedgerService, dividendService *service.DividendService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/product", func(r chi.Router) {
			productHandler := handlers.NewProductHandler(productService)
			r.Get("/", productHandler.GetAllProducts)
			r.Post("/", productHandler.CreateProduct)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", productHandler.GetProduct)
			})
		})

		r.Route("/event", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(ledgerService)
			r.Post("/", eventHandler.RecordEvent)

			r.Route("/account/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", eventHandler.EventsPerAccount)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Post("/approve", eventHandler.ApproveEvent)
				r.Post("/reject", eventHandler.RejectEvent)
			})
		})

		r.Route("/dividend", func(r chi.Router) {
			payoutHandler := handlers.NewPayoutHandler(dividendService)
			r.Post("/", payoutHandler.ComputeDividend)

			r.Route("/product/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", payoutHandler.PayoutsPerProduct)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", payoutHandler.GetPayout)
				r.Post("/approve", payoutHandler.ApprovePayout)
				r.Delete("/", payoutHandler.DeletePayout)
			})
		})
	})

	return r
}
