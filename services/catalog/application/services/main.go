package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/catalog/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := sqlstore.NewProductRepository(a.Db)
	return &Services{
		Product: NewProductService(repo, a.Logger),
	}
}
