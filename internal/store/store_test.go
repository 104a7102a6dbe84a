// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"shopcatalog/internal/database"
	"shopcatalog/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "catalog")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "catalog")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testHierarchy creates a fresh parent category with one sub-category so a
// test can filter on IDs nobody else uses. Everything it creates, including
// products attached to it, is removed in t.Cleanup().
func testHierarchy(t *testing.T, db *sql.DB, kind models.ParentKind, theme models.Theme) (*models.ParentCategory, *models.SubCategory) {
	t.Helper()
	ctx := context.Background()
	cs := NewCategoryStore(db)

	parent, err := cs.CreateParent(ctx, &models.ParentCategory{
		Name: "test-parent-" + uuid.NewString()[:8], Kind: kind, Theme: theme,
	})
	if err != nil {
		t.Fatalf("CreateParent: %v", err)
	}
	sub, err := cs.CreateSub(ctx, &models.SubCategory{
		ParentID: parent.ID, Name: "test-sub-" + uuid.NewString()[:8],
	})
	if err != nil {
		t.Fatalf("CreateSub: %v", err)
	}

	t.Cleanup(func() { cleanHierarchy(t, db, parent.ID) })
	return parent, sub
}

// cleanHierarchy removes a parent category together with its sub-categories
// and products. Call in t.Cleanup().
func cleanHierarchy(t *testing.T, db *sql.DB, parentID int64) {
	t.Helper()
	db.Exec("DELETE FROM products WHERE parent_id = $1", parentID)
	db.Exec("DELETE FROM sub_categories WHERE parent_id = $1", parentID)
	db.Exec("DELETE FROM parent_categories WHERE id = $1", parentID)
}

// cleanFAQs removes test FAQs by question. Call in t.Cleanup().
func cleanFAQs(t *testing.T, db *sql.DB, questions ...string) {
	t.Helper()
	for _, q := range questions {
		db.Exec("DELETE FROM faqs WHERE question = $1", q)
	}
}
