package handlers

import (
	"net/http"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
)

// ListProductsHandler handles GET /products.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists the catalog ordered by name.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GetProductHandler handles GET /products/{id}.
type GetProductHandler struct {
	svc *appsvcs.Services
}

func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute returns one product.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	p, err := h.svc.Product.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

// CreateProductHandler handles POST /products.
type CreateProductHandler struct {
	svc *appsvcs.Services
}

func NewCreateProductHandler(svc *appsvcs.Services) *CreateProductHandler {
	return &CreateProductHandler{svc: svc}
}

// Execute adds a product to the catalog.
//
//	@Summary		Create product
//	@Description	Name is 1-100 characters; price is at least 0.01 with two decimals at most
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProductRequest	true	"Product"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *CreateProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.Create(r.Context(), req.Name, req.Price)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toProductResponse(p))
}

// UpdateProductHandler handles PUT /products/{id}.
type UpdateProductHandler struct {
	svc *appsvcs.Services
}

func NewUpdateProductHandler(svc *appsvcs.Services) *UpdateProductHandler {
	return &UpdateProductHandler{svc: svc}
}

// Execute renames and reprices a product. Existing orders keep their prices.
//
//	@Summary	Update product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Product ID"
//	@Param		request	body		ProductRequest	true	"Product"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (h *UpdateProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.Update(r.Context(), id, req.Name, req.Price)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

// DeleteProductHandler handles DELETE /products/{id}.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute removes a product that no order references.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.Product.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
