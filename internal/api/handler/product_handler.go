package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crudify/crudify-server/internal/api/metrics"
	"github.com/crudify/crudify-server/internal/core/domain"
	"github.com/crudify/crudify-server/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product inventory.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /products/:id. All four mutable fields are replaced.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		metrics.ProductsDeletedTotal.WithLabelValues("missing").Inc()
		return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
	}

	metrics.ProductsDeletedTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /products/search?name=. An empty name matches all.
//
// @Summary      Search products by name
// @Tags         products
// @Produce      json
// @Param        name  query    string  false  "Substring to match, case-insensitive"
// @Success      200   {array}  productResponse
// @Router       /products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.service.SearchByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// MinQuantity handles GET /products/quantity?min=. Returns products with
// quantity strictly greater than min.
//
// @Summary      Filter products by minimum quantity
// @Tags         products
// @Produce      json
// @Param        min  query     int  true  "Quantity threshold (exclusive)"
// @Success      200  {array}   productResponse
// @Failure      400  {object}  errorResponse
// @Router       /products/quantity [get]
func (h *ProductHandler) MinQuantity(c echo.Context) error {
	min, err := strconv.Atoi(c.QueryParam("min"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "min must be an integer"})
	}

	products, err := h.service.FilterByMinQuantity(c.Request().Context(), min)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
