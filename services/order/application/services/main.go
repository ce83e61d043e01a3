package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	catalogsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
	directorysvcs "github.com/ghuser/orderdesk/services/directory/application/services"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/sqlstore"
	"github.com/ghuser/orderdesk/services/order/infrastructure/readers"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Order *OrderService
}

// New wires the order service. The catalog and directory are reached only
// through their application services.
func New(a *app.Application, catalog *catalogsvcs.Services, directory *directorysvcs.Services) *Services {
	return &Services{
		Order: NewOrderService(
			sqlstore.NewOrderRepository(a.Db),
			readers.NewCatalog(catalog.Product),
			readers.NewDirectory(directory.User),
			a.ReportLocation,
			a.Logger,
		),
	}
}
