package handlers

import (
	"time"

	"github.com/ghuser/orderdesk/services/order/domain/models"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
)

// OrderLineRequest is one requested line. Lines with a non-positive product
// ID or quantity are dropped before validation.
type OrderLineRequest struct {
	ProductID int64 `json:"product_id"                               example:"1"`
	Quantity  int   `json:"quantity"   validate:"lte=2147483647" example:"3"`
} // @name OrderLineRequest

// OrderRequest is the request body for POST /orders and PUT /orders/{id}.
type OrderRequest struct {
	CustomerID string             `json:"customer_id"                      example:"123e4567-e89b-12d3-a456-426614174000"`
	Notes      string             `json:"notes"       validate:"max=500"   example:"Leave at the front desk"`
	Lines      []OrderLineRequest `json:"lines"       validate:"dive"`
} // @name OrderRequest

// OrderLineResponse is one priced order line.
type OrderLineResponse struct {
	ID          int64  `json:"id"           example:"10"`
	ProductID   int64  `json:"product_id"   example:"1"`
	ProductName string `json:"product_name" example:"Widget"`
	Quantity    int    `json:"quantity"     example:"3"`
	UnitPrice   string `json:"unit_price"   example:"9.99"`
	Subtotal    string `json:"subtotal"     example:"29.97"`
} // @name OrderLineResponse

// OrderResponse is an order with its lines.
type OrderResponse struct {
	ID           int64               `json:"id"            example:"1"`
	CustomerName string              `json:"customer_name" example:"Alice Smith"`
	OrderDate    time.Time           `json:"order_date"    example:"2025-01-15T10:30:00Z"`
	TotalAmount  string              `json:"total_amount"  example:"29.97"`
	TotalItems   int                 `json:"total_items"   example:"3"`
	Notes        string              `json:"notes,omitempty"`
	Lines        []OrderLineResponse `json:"lines"`
} // @name OrderResponse

// ProductOptionResponse is one entry of the order form product picker.
type ProductOptionResponse struct {
	ID    int64  `json:"id"    example:"1"`
	Label string `json:"label" example:"Widget - $9.99"`
	Price string `json:"price" example:"9.99"`
} // @name ProductOptionResponse

// CustomerResponse is one selectable customer.
type CustomerResponse struct {
	ID    string `json:"id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Name  string `json:"name"  example:"Alice Smith"`
	Email string `json:"email" example:"alice@example.com"`
} // @name CustomerResponse

// FormDataResponse is returned by GET /orders/form.
type FormDataResponse struct {
	Products  []ProductOptionResponse `json:"products"`
	Customers []CustomerResponse      `json:"customers"`
} // @name FormDataResponse

// PriceResponse is returned by GET /orders/product-price/{id}.
// Unknown products yield {"price": 0, "name": ""}.
type PriceResponse struct {
	Price float64 `json:"price" example:"9.99"`
	Name  string  `json:"name"  example:"Widget"`
} // @name PriceResponse

// OrderSummaryResponse is one order row in a monthly group.
type OrderSummaryResponse struct {
	ID           int64     `json:"id"            example:"1"`
	CustomerName string    `json:"customer_name" example:"Alice Smith"`
	OrderDate    time.Time `json:"order_date"    example:"2025-01-15T10:30:00Z"`
	TotalAmount  string    `json:"total_amount"  example:"29.97"`
	TotalItems   int       `json:"total_items"   example:"3"`
	Notes        string    `json:"notes,omitempty"`
} // @name OrderSummaryResponse

// MonthlyGroupResponse is one month of the revenue report.
type MonthlyGroupResponse struct {
	Year         int                    `json:"year"          example:"2025"`
	Month        int                    `json:"month"         example:"1"`
	Label        string                 `json:"label"         example:"January 2025"`
	OrderCount   int                    `json:"order_count"   example:"2"`
	TotalRevenue string                 `json:"total_revenue" example:"45.00"`
	TotalItems   int                    `json:"total_items"   example:"5"`
	Orders       []OrderSummaryResponse `json:"orders"`
} // @name MonthlyGroupResponse

// ErrorResponse is returned on all error responses. Fields is present for
// order validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"            example:"Validation failed"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorResponse

func (req *OrderRequest) toBuildRequest() domainsvcs.BuildRequest {
	lines := make([]models.LineRequest, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = models.LineRequest{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return domainsvcs.BuildRequest{CustomerRef: req.CustomerID, Notes: req.Notes, Lines: lines}
}

func toOrderResponse(o *models.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Subtotal:    l.Subtotal.StringFixed(2),
		}
	}
	return OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate,
		TotalAmount:  o.TotalAmount.StringFixed(2),
		TotalItems:   o.TotalItems(),
		Notes:        o.Notes,
		Lines:        lines,
	}
}

func toMonthlyResponse(groups []domainsvcs.MonthlyGroup) []MonthlyGroupResponse {
	out := make([]MonthlyGroupResponse, len(groups))
	for i, g := range groups {
		orders := make([]OrderSummaryResponse, len(g.Orders))
		for j, o := range g.Orders {
			orders[j] = OrderSummaryResponse{
				ID:           o.ID,
				CustomerName: o.CustomerName,
				OrderDate:    o.OrderDate,
				TotalAmount:  o.TotalAmount.StringFixed(2),
				TotalItems:   o.TotalItems,
				Notes:        o.Notes,
			}
		}
		out[i] = MonthlyGroupResponse{
			Year:         g.Year,
			Month:        g.MonthNumber,
			Label:        g.Label,
			OrderCount:   g.OrderCount,
			TotalRevenue: g.TotalRevenue.StringFixed(2),
			TotalItems:   g.TotalItems,
			Orders:       orders,
		}
	}
	return out
}
