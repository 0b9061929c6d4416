package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shareledger/dividend-backend/internal/api/handlers"
	"github.com/shareledger/dividend-backend/internal/api/request"
	"github.com/shareledger/dividend-backend/internal/model"
	"github.com/shareledger/dividend-backend/internal/testutil"
)

func setupProductHandler(t *testing.T) (*sql.DB, *handlers.ProductHandler) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	handler := handlers.NewProductHandler(testutil.NewTestProductService(t, db))
	return db, handler
}

func TestCreateProductEndpoint(t *testing.T) {
	t.Run("returns 201 with the product", func(t *testing.T) {
		db, handler := setupProductHandler(t)

		body := request.CreateProductRequest{
			Name:                    "Cooperative Shares",
			Currency:                "EUR",
			CurrencyDigits:          2,
			MinimumActivePeriodDays: 10,
		}
		rec := httptest.NewRecorder()

		handler.CreateProduct(rec, testutil.NewJSONRequest(t, http.MethodPost, "/api/product", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var product model.ShareProduct
		if err := json.NewDecoder(rec.Body).Decode(&product); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if product.MinimumActivePeriodDays != 10 {
			t.Errorf("Expected minimum active period of 10 days, got %d", product.MinimumActivePeriodDays)
		}
		testutil.AssertRowCount(t, db, "share_product", 1)
	})

	t.Run("returns 400 for an invalid currency code", func(t *testing.T) {
		_, handler := setupProductHandler(t)

		body := request.CreateProductRequest{
			Name:           "Cooperative Shares",
			Currency:       "EURO",
			CurrencyDigits: 2,
		}
		rec := httptest.NewRecorder()

		handler.CreateProduct(rec, testutil.NewJSONRequest(t, http.MethodPost, "/api/product", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

func TestGetProductEndpoints(t *testing.T) {
	t.Run("get returns the product", func(t *testing.T) {
		db, handler := setupProductHandler(t)
		product := testutil.NewProduct().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/product/"+product.ID, map[string]string{"uuid": product.ID})
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var stored model.ShareProduct
		if err := json.NewDecoder(rec.Body).Decode(&stored); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if stored.ID != product.ID {
			t.Errorf("Expected product %s, got %s", product.ID, stored.ID)
		}
	})

	t.Run("get returns 404 for an unknown product", func(t *testing.T) {
		_, handler := setupProductHandler(t)
		unknown := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/product/"+unknown, map[string]string{"uuid": unknown})
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})

	t.Run("list returns all products", func(t *testing.T) {
		db, handler := setupProductHandler(t)
		testutil.NewProduct().WithName("Product A").Build(t, db)
		testutil.NewProduct().WithName("Product B").Build(t, db)

		rec := httptest.NewRecorder()
		handler.GetAllProducts(rec, httptest.NewRequest(http.MethodGet, "/api/product", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var products []model.ShareProduct
		if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(products) != 2 {
			t.Errorf("Expected 2 products, got %d", len(products))
		}
	})
}
