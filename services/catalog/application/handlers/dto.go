package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/catalog/domain/models"
)

// ProductRequest is the request body for POST /products and PUT /products/{id}.
// Price accepts a JSON number or string.
type ProductRequest struct {
	Name  string          `json:"name"  validate:"required,max=100" example:"Widget"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
} // @name ProductRequest

// ProductResponse is one catalog product.
type ProductResponse struct {
	ID        int64     `json:"id"         example:"1"`
	Name      string    `json:"name"       example:"Widget"`
	Price     string    `json:"price"      example:"9.99"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name.String(),
		Price:     p.Price.StringFixed(2),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
