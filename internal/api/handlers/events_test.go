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

func setupEventHandler(t *testing.T) (*sql.DB, *handlers.EventHandler) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	handler := handlers.NewEventHandler(testutil.NewTestLedgerService(t, db))
	return db, handler
}

func TestRecordEventEndpoint(t *testing.T) {
	t.Run("returns 201 with the applied event", func(t *testing.T) {
		db, handler := setupEventHandler(t)
		product := testutil.NewProduct().Build(t, db)

		body := request.CreateShareEventRequest{
			AccountID: testutil.MakeID(),
			ProductID: product.ID,
			Type:      model.EventTypePurchase,
			Quantity:  100,
			EventDate: "2024-01-01",
		}
		rec := httptest.NewRecorder()

		handler.RecordEvent(rec, testutil.NewJSONRequest(t, http.MethodPost, "/api/event", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var event model.ShareEvent
		if err := json.NewDecoder(rec.Body).Decode(&event); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if event.Status != model.EventStatusApplied {
			t.Errorf("Expected APPLIED status, got %s", event.Status)
		}
		testutil.AssertRowCount(t, db, "share_event", 1)
	})

	t.Run("returns 400 for an unknown event type", func(t *testing.T) {
		db, handler := setupEventHandler(t)
		product := testutil.NewProduct().Build(t, db)

		body := request.CreateShareEventRequest{
			AccountID: testutil.MakeID(),
			ProductID: product.ID,
			Type:      "TRANSFER",
			Quantity:  100,
			EventDate: "2024-01-01",
		}
		rec := httptest.NewRecorder()

		handler.RecordEvent(rec, testutil.NewJSONRequest(t, http.MethodPost, "/api/event", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for a zero-quantity purchase", func(t *testing.T) {
		db, handler := setupEventHandler(t)
		product := testutil.NewProduct().Build(t, db)

		body := request.CreateShareEventRequest{
			AccountID: testutil.MakeID(),
			ProductID: product.ID,
			Type:      model.EventTypePurchase,
			Quantity:  0,
			EventDate: "2024-01-01",
		}
		rec := httptest.NewRecorder()

		handler.RecordEvent(rec, testutil.NewJSONRequest(t, http.MethodPost, "/api/event", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

func TestEventApprovalEndpoints(t *testing.T) {
	t.Run("approve returns 204 then 409 on repeat", func(t *testing.T) {
		db, handler := setupEventHandler(t)
		product := testutil.NewProduct().Build(t, db)
		event := testutil.NewShareEvent(product.ID, testutil.MakeID()).Purchase(100).On("2024-01-01").Build(t, db)
		params := map[string]string{"uuid": event.ID}

		first := httptest.NewRecorder()
		handler.ApproveEvent(first, testutil.NewRequestWithURLParams(http.MethodPost, "/api/event/"+event.ID+"/approve", params))
		if first.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		handler.ApproveEvent(second, testutil.NewRequestWithURLParams(http.MethodPost, "/api/event/"+event.ID+"/approve", params))
		if second.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", second.Code)
		}
	})

	t.Run("reject returns 404 for an unknown event", func(t *testing.T) {
		_, handler := setupEventHandler(t)
		unknown := testutil.MakeID()

		rec := httptest.NewRecorder()
		handler.RejectEvent(rec, testutil.NewRequestWithURLParams(http.MethodPost, "/api/event/"+unknown+"/reject", map[string]string{"uuid": unknown}))

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

func TestEventsPerAccountEndpoint(t *testing.T) {
	db, handler := setupEventHandler(t)
	product := testutil.NewProduct().Build(t, db)
	accountID := testutil.MakeID()
	testutil.CreateApprovedPurchase(t, db, product.ID, accountID, 100, "2024-01-01")
	testutil.CreateApprovedRedeem(t, db, product.ID, accountID, 40, "2024-01-11")

	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/event/account/"+accountID, map[string]string{"uuid": accountID})
	rec := httptest.NewRecorder()

	handler.EventsPerAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var events []model.ShareEvent
	if err := json.NewDecoder(rec.Body).Decode(&events); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(events))
	}
}
