package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Share product table
		CREATE TABLE share_product (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			currency VARCHAR(3) NOT NULL,
			currency_digits INTEGER NOT NULL,
			minimum_active_period_days INTEGER DEFAULT 0 NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Share event ledger table
		CREATE TABLE share_event (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL,
			product_id VARCHAR(36) NOT NULL,
			type VARCHAR(14) NOT NULL,
			status VARCHAR(8) NOT NULL,
			quantity INTEGER NOT NULL,
			event_date DATE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(product_id) REFERENCES share_product(id) ON DELETE CASCADE
		);

		-- Dividend payout table
		CREATE TABLE dividend_payout (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			product_id VARCHAR(36) NOT NULL,
			pool_amount TEXT NOT NULL,
			period_start DATE NOT NULL,
			period_end DATE NOT NULL,
			status VARCHAR(16) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(product_id) REFERENCES share_product(id),
			CONSTRAINT unique_product_period UNIQUE (product_id, period_start, period_end)
		);

		-- Dividend allocation table
		CREATE TABLE dividend_allocation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			payout_id VARCHAR(36) NOT NULL,
			account_id VARCHAR(36) NOT NULL,
			share_days INTEGER NOT NULL,
			amount TEXT NOT NULL,
			FOREIGN KEY(payout_id) REFERENCES dividend_payout(id) ON DELETE CASCADE
		);

		-- Indexes for performance
		CREATE INDEX ix_share_event_account_id ON share_event(account_id);
		CREATE INDEX ix_share_event_product_id_status ON share_event(product_id, status);
		CREATE INDEX ix_share_event_event_date ON share_event(event_date);
		CREATE INDEX ix_dividend_payout_product_id ON dividend_payout(product_id);
		CREATE INDEX ix_dividend_allocation_payout_id ON dividend_allocation(payout_id);
		CREATE INDEX ix_dividend_allocation_account_id ON dividend_allocation(account_id);
	`

	_, err := db.Exec(schema)
	return err
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "dividend_payout", 1)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
