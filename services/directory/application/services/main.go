package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/services/directory/infrastructure/persistence/sqlstore"
	"github.com/ghuser/orderdesk/services/directory/infrastructure/security"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	User *UserService
}

// New wires all directory application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := sqlstore.NewUserRepository(a.Db)
	return &Services{
		User: NewUserService(repo, security.NewBcryptHasher(0), a.Logger),
	}
}
