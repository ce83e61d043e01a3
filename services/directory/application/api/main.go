package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/services/directory/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/directory/application/services"
)

// PublicRoutes registers the endpoints reachable without a session.
func PublicRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Post("/auth/login", handlers.NewLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
}

// DirectoryRoutes registers session and user administration endpoints.
// The router must already run auth.RequireAuth.
func DirectoryRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", handlers.NewLogoutHandler(a.SessionStore).Execute)
		r.Get("/me", handlers.NewMeHandler().Execute)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.AdminOnly, a.Logger))
		r.Route("/admin", func(r chi.Router) {
			r.Get("/roles", handlers.NewListRolesHandler().Execute)
			r.Route("/users", func(r chi.Router) {
				r.Get("/", handlers.NewListUsersHandler(svcs).Execute)
				r.Post("/", handlers.NewCreateUserHandler(svcs).Execute)
				r.Post("/password", handlers.NewChangePasswordHandler(svcs).Execute)
				r.Get("/{id}", handlers.NewGetUserHandler(svcs).Execute)
				r.Put("/{id}", handlers.NewUpdateUserHandler(svcs).Execute)
				r.Put("/{id}/role", handlers.NewAssignRoleHandler(svcs).Execute)
				r.Delete("/{id}", handlers.NewDeleteUserHandler(svcs).Execute)
			})
		})
	})
}
