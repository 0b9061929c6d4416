package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/api/response"
	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/service"
	"github.com/shareledger/dividend-backend/internal/validation"
)

// ProductHandler handles HTTP requests for share product endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new ProductHandler with the provided service dependency.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct handles POST requests to create a share product.
//
// Endpoint: POST /api/product
// Request Body: CreateProductRequest (name, currency, currencyDigits, minimumActivePeriodDays)
// Response: 201 Created with ShareProduct
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateProductRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProduct(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create share product", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, product)
}

// GetAllProducts handles GET requests to retrieve all share products.
//
// Endpoint: GET /api/product
// Response: 200 OK with array of ShareProduct
// Error: 500 Internal Server Error if retrieval fails
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, _ *http.Request) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProducts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET requests to retrieve a single share product.
//
// Endpoint: GET /api/product/{uuid}
// Response: 200 OK with ShareProduct
// Error: 400 Bad Request if the product ID is invalid (validated by middleware)
// Error: 404 Not Found if the product does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "uuid")

	product, err := h.productService.GetProduct(productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProductNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProducts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, product)
}
