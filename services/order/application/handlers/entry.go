package handlers

import (
	"net/http"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// FormDataHandler handles GET /orders/form.
type FormDataHandler struct {
	svc *appsvcs.Services
}

func NewFormDataHandler(svc *appsvcs.Services) *FormDataHandler {
	return &FormDataHandler{svc: svc}
}

// Execute lists the products and customers for the order entry form.
//
//	@Summary	Order form data
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	FormDataResponse
//	@Failure	409	{object}	ErrorResponse	"catalog is empty"
//	@Router		/orders/form [get]
func (h *FormDataHandler) Execute(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Order.FormData(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	out := FormDataResponse{
		Products:  make([]ProductOptionResponse, len(data.Products)),
		Customers: make([]CustomerResponse, len(data.Customers)),
	}
	for i, p := range data.Products {
		out.Products[i] = ProductOptionResponse{ID: p.ID, Label: p.Label, Price: p.Price.StringFixed(2)}
	}
	for i, c := range data.Customers {
		out.Customers[i] = CustomerResponse{ID: c.ID, Name: c.DisplayName, Email: c.Email}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ProductPriceHandler handles GET /orders/product-price/{id}.
type ProductPriceHandler struct {
	svc *appsvcs.Services
}

func NewProductPriceHandler(svc *appsvcs.Services) *ProductPriceHandler {
	return &ProductPriceHandler{svc: svc}
}

// Execute quotes the current catalog price of a product.
//
//	@Summary	Product price
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	PriceResponse
//	@Router		/orders/product-price/{id} [get]
func (h *ProductPriceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.JSON(w, http.StatusOK, PriceResponse{})
		return
	}
	quote, err := h.svc.Order.ProductPrice(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, PriceResponse{Price: quote.Price.InexactFloat64(), Name: quote.Name})
}

// MonthlyReportHandler handles GET /orders/monthly.
type MonthlyReportHandler struct {
	svc *appsvcs.Services
}

func NewMonthlyReportHandler(svc *appsvcs.Services) *MonthlyReportHandler {
	return &MonthlyReportHandler{svc: svc}
}

// Execute groups orders by calendar month, newest month first.
//
//	@Summary	Monthly report
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	MonthlyGroupResponse
//	@Router		/orders/monthly [get]
func (h *MonthlyReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Order.Monthly(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toMonthlyResponse(groups))
}
