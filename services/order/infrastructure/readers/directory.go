package readers

import (
	"context"
	"errors"

	"github.com/google/uuid"

	dirdomain "github.com/ghuser/orderdesk/services/directory/domain"
	dirmodels "github.com/ghuser/orderdesk/services/directory/domain/models"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// UserSource is the subset of the directory user service the order context
// reads from.
type UserSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dirmodels.User, error)
	List(ctx context.Context) ([]*dirmodels.User, error)
}

// Directory implements repositories.DirectoryReader. Customers are directory
// users; the snapshot name on an order is the user's full name.
type Directory struct {
	src UserSource
}

func NewDirectory(src UserSource) *Directory {
	return &Directory{src: src}
}

// FindUser treats a malformed id the same as an unknown one.
func (d *Directory) FindUser(ctx context.Context, id string) (models.Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Customer{}, orderdomain.ErrCustomerNotFound
	}
	u, err := d.src.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, dirdomain.ErrUserNotFound) {
			return models.Customer{}, orderdomain.ErrCustomerNotFound
		}
		return models.Customer{}, err
	}
	return toCustomer(u), nil
}

func (d *Directory) ListUsers(ctx context.Context) ([]models.Customer, error) {
	users, err := d.src.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Customer, len(users))
	for i, u := range users {
		out[i] = toCustomer(u)
	}
	return out, nil
}

func toCustomer(u *dirmodels.User) models.Customer {
	return models.Customer{ID: u.ID.String(), DisplayName: u.FullName, Email: u.Email}
}
