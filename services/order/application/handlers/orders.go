package handlers

import (
	"net/http"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// ListOrdersHandler handles GET /orders.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists every order, newest first.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GetOrderHandler handles GET /orders/{id}.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute returns one order with its lines.
//
//	@Summary	Get order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	order, err := h.svc.Order.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// CreateOrderHandler handles POST /orders.
type CreateOrderHandler struct {
	svc *appsvcs.Services
}

func NewCreateOrderHandler(svc *appsvcs.Services) *CreateOrderHandler {
	return &CreateOrderHandler{svc: svc}
}

// Execute builds, prices and stores a new order.
//
//	@Summary		Create order
//	@Description	Prices are taken from the catalog at the time of the request
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OrderRequest	true	"Order"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *CreateOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	order, err := h.svc.Order.Create(r.Context(), req.toBuildRequest())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toOrderResponse(order))
}

// ReplaceOrderHandler handles PUT /orders/{id}.
type ReplaceOrderHandler struct {
	svc *appsvcs.Services
}

func NewReplaceOrderHandler(svc *appsvcs.Services) *ReplaceOrderHandler {
	return &ReplaceOrderHandler{svc: svc}
}

// Execute replaces the customer, notes and lines of an order. The order
// keeps its ID and original date; prices are taken afresh.
//
//	@Summary	Replace order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Order ID"
//	@Param		request	body		OrderRequest	true	"Order"
//	@Success	200		{object}	OrderResponse
//	@Failure	403		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/orders/{id} [put]
func (h *ReplaceOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	order, err := h.svc.Order.Replace(r.Context(), id, req.toBuildRequest())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// DeleteOrderHandler handles DELETE /orders/{id}.
type DeleteOrderHandler struct {
	svc *appsvcs.Services
}

func NewDeleteOrderHandler(svc *appsvcs.Services) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute deletes an order and its lines.
//
//	@Summary	Delete order
//	@Tags		orders
//	@Param		id	path	int	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
