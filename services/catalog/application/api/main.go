package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
)

// ProductRoutes registers catalog endpoints on the provided chi router.
// The router must already run auth.RequireAuth.
func ProductRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.AccountantOrAdmin, a.Logger))
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateProductHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewUpdateProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
	})
}
