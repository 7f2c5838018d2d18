package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/grocery-service/internal/app/catalog/contracts"
	"github.com/light-bringer/grocery-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/grocery-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/grocery-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

// CatalogHandler handles product catalog endpoints.
type CatalogHandler struct {
	listProducts  *list_products.Query
	getProduct    *get_product.Query
	createProduct *create_product.Interactor
	updateProduct *update_product.Interactor
	deleteProduct *delete_product.Interactor
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	deleteProduct *delete_product.Interactor,
) *CatalogHandler {
	return &CatalogHandler{
		listProducts:  listProducts,
		getProduct:    getProduct,
		createProduct: createProduct,
		updateProduct: updateProduct,
		deleteProduct: deleteProduct,
	}
}

// productResponse is the JSON shape for a catalog product.
type productResponse struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	UnitPrice   float64   `json:"unit_price"`
	Stock       int64     `json:"stock_quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(dto *contracts.ProductDTO) productResponse {
	return productResponse{
		ProductID:   dto.ProductID,
		Name:        dto.Name,
		Description: dto.Description,
		Category:    dto.Category,
		Price:       dto.Price,
		UnitPrice:   dto.UnitPrice,
		Stock:       dto.Stock,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &list_products.Request{
		Search: q.Get("search"),
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	result, err := h.listProducts.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	products := make([]productResponse, 0, len(result.Products))
	for _, dto := range result.Products {
		products = append(products, toProductResponse(dto))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products":    products,
		"total_count": result.TotalCount,
	})
}

// Get handles GET /api/products/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getProduct.Execute(r.Context(), &get_product.Request{
		ProductID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(dto))
}

// createProductRequest is the JSON shape for product creation. Prices are
// decimal strings or JSON numbers; both parse exactly.
type createProductRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       json.Number `json:"price"`
	Stock       int64       `json:"stock_quantity"`
}

// Create handles POST /api/products.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	price, err := parsePrice(body.Price)
	if err != nil {
		writeError(w, err)
		return
	}

	productID, err := h.createProduct.Execute(r.Context(), &create_product.Request{
		Principal:   principalFrom(r.Context()),
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		UnitPrice:   price,
		Stock:       body.Stock,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"product_id": productID})
}

// updateProductRequest is the JSON shape for product updates. Absent
// fields stay unchanged.
type updateProductRequest struct {
	Name          *string      `json:"name"`
	Description   *string      `json:"description"`
	Category      *string      `json:"category"`
	Price         *json.Number `json:"price"`
	Stock         *int64       `json:"stock_quantity"`
	ChangedReason string       `json:"changed_reason"`
}

// Update handles PUT /api/products/{id}.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body updateProductRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	req := &update_product.Request{
		Principal:     principalFrom(r.Context()),
		ProductID:     r.PathValue("id"),
		Name:          body.Name,
		Description:   body.Description,
		Category:      body.Category,
		Stock:         body.Stock,
		ChangedReason: body.ChangedReason,
	}

	if body.Price != nil {
		price, err := parsePrice(*body.Price)
		if err != nil {
			writeError(w, err)
			return
		}
		req.UnitPrice = price
	}

	if err := h.updateProduct.Execute(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /api/products/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.deleteProduct.Execute(r.Context(), &delete_product.Request{
		Principal: principalFrom(r.Context()),
		ProductID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parsePrice converts a JSON number or decimal string to exact money.
func parsePrice(n json.Number) (*money.Money, error) {
	if n == "" {
		return nil, fmt.Errorf("%w: price is required", errBadRequest)
	}
	price, err := money.Parse(n.String())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid price %q", errBadRequest, n.String())
	}
	return price, nil
}
