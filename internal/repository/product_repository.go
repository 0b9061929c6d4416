package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shareledger/dividend-backend/internal/apperrors"
	"github.com/shareledger/dividend-backend/internal/model"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// InsertProduct stores a new share product.
func (r *ProductRepository) InsertProduct(ctx context.Context, product *model.ShareProduct) error {
	query := `
		INSERT INTO share_product (id, name, currency, currency_digits, minimum_active_period_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Currency,
		product.CurrencyDigits,
		product.MinimumActivePeriodDays,
		product.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert share product: %w", err)
	}
	return nil
}

// GetProducts returns all share products ordered by name.
func (r *ProductRepository) GetProducts() ([]model.ShareProduct, error) {
	query := `
		SELECT id, name, currency, currency_digits, minimum_active_period_days, created_at
		FROM share_product
		ORDER BY name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query share_product table: %w", err)
	}
	defer rows.Close()

	products := []model.ShareProduct{}
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating share_product table: %w", err)
	}

	return products, nil
}

// GetProduct returns a single share product by ID.
// Returns apperrors.ErrProductNotFound if no such product exists.
func (r *ProductRepository) GetProduct(productID string) (model.ShareProduct, error) {
	query := `
		SELECT id, name, currency, currency_digits, minimum_active_period_days, created_at
		FROM share_product
		WHERE id = ?
	`

	row := r.db.QueryRow(query, productID)
	product, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShareProduct{}, apperrors.ErrProductNotFound
	}
	return product, err
}

// GetDividendConfig returns the dividend configuration of a product.
// Satisfies dividend.ProductConfigPort.
func (r *ProductRepository) GetDividendConfig(_ context.Context, productID string) (model.ShareProduct, error) {
	return r.GetProduct(productID)
}

func scanProduct(scan func(dest ...any) error) (model.ShareProduct, error) {
	var product model.ShareProduct
	var createdAtStr string

	err := scan(
		&product.ID,
		&product.Name,
		&product.Currency,
		&product.CurrencyDigits,
		&product.MinimumActivePeriodDays,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ShareProduct{}, err
		}
		return model.ShareProduct{}, fmt.Errorf("failed to scan share_product row: %w", err)
	}

	product.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.ShareProduct{}, err
	}
	return product, nil
}
