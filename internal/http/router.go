package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/elelcahyani/uangku/internal/http/budget"
	"github.com/elelcahyani/uangku/internal/http/category"
	"github.com/elelcahyani/uangku/internal/http/export"
	"github.com/elelcahyani/uangku/internal/http/importcsv"
	"github.com/elelcahyani/uangku/internal/http/report"
	"github.com/elelcahyani/uangku/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	categoriesV1 *category.Handler,
	budgetsV1 *budget.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if authSecret != "" {
			r.Use(RequireToken(authSecret))
		}

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
