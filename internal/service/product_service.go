package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/model"
	"github.com/shareledger/dividend-backend/internal/repository"
)

// ProductService handles share product configuration.
type ProductService struct {
	productRepo *repository.ProductRepository
}

// NewProductService creates a new ProductService with the provided repository dependency.
func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// CreateProduct stores a new share product with its dividend configuration.
func (s *ProductService) CreateProduct(ctx context.Context, req request.CreateProductRequest) (*model.ShareProduct, error) {
	product := &model.ShareProduct{
		ID:                      uuid.New().String(),
		Name:                    req.Name,
		Currency:                req.Currency,
		CurrencyDigits:          req.CurrencyDigits,
		MinimumActivePeriodDays: req.MinimumActivePeriodDays,
		CreatedAt:               time.Now().UTC(),
	}

	if err := s.productRepo.InsertProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create share product: %w", err)
	}

	return product, nil
}

// GetAllProducts retrieves all share products.
func (s *ProductService) GetAllProducts() ([]model.ShareProduct, error) {
	return s.productRepo.GetProducts()
}

// GetProduct retrieves a single share product by ID.
func (s *ProductService) GetProduct(productID string) (model.ShareProduct, error) {
	return s.productRepo.GetProduct(productID)
}
