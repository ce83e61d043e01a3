package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/services/order/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router.
// The router must already run auth.RequireAuth.
func OrderRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.AllRoles, a.Logger))
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateOrderHandler(svcs).Execute)
			r.Get("/form", handlers.NewFormDataHandler(svcs).Execute)
			r.Get("/monthly", handlers.NewMonthlyReportHandler(svcs).Execute)
			r.Get("/product-price/{id}", handlers.NewProductPriceHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteOrderHandler(svcs).Execute)
			r.With(auth.RequireRole(auth.CashierOrAdmin, a.Logger)).
				Put("/{id}", handlers.NewReplaceOrderHandler(svcs).Execute)
		})
	})
}
