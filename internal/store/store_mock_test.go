// store_mock_test.go checks the exact statements the stores issue, using
// go-sqlmock in place of a live PostgreSQL server.
package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
)

func TestProductListThemeQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT p.id, p.name, p.price, p.description, p.parent_id, p.sub_id, COALESCE(pi.file_name, '') " +
			"FROM products p JOIN parent_categories pc ON pc.id = p.parent_id " +
			"LEFT JOIN product_images pi ON pi.product_id = p.id AND pi.ord = 0 " +
			"WHERE p.del_flag = FALSE AND pc.theme = $1 ORDER BY p.id DESC LIMIT $2 OFFSET $3")).
		WithArgs("FOCUS", int64(10), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "parent_id", "sub_id", "file_name"}).
			AddRow(int64(12), "Chess Set", int64(3900), "walnut", int64(5), int64(21), "chess.jpg").
			AddRow(int64(11), "Sketchbook", int64(900), "A5", int64(5), int64(22), ""))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM products p JOIN parent_categories pc ON pc.id = p.parent_id " +
			"WHERE p.del_flag = FALSE AND pc.theme = $1")).
		WithArgs("FOCUS").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	s := NewProductStore(db)
	items, total, err := s.List(context.Background(), ProductFilter{
		Theme: models.ThemeFocus,
		Page:  pagination.NewRequest(2, 10, "", ""),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, total)
	require.Len(t, items, 2)
	assert.Equal(t, "chess.jpg", items[0].Thumbnail)
	assert.Empty(t, items[1].Thumbnail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductListParentAndKeywordQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE p.del_flag = FALSE AND p.parent_id = $1 AND (p.name ILIKE $2 OR p.description ILIKE $3) " +
			"ORDER BY p.id DESC LIMIT $4")).
		WithArgs(int64(3), "%tea%", "%tea%", int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "parent_id", "sub_id", "file_name"}))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM products p WHERE p.del_flag = FALSE AND p.parent_id = $1 AND (p.name ILIKE $2 OR p.description ILIKE $3)")).
		WithArgs(int64(3), "%tea%", "%tea%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	s := NewProductStore(db)
	items, total, err := s.List(context.Background(), ProductFilter{
		ParentID: 3,
		Page:     pagination.NewRequest(1, 20, "", "tea"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductListCountError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT p.id.*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "parent_id", "sub_id", "file_name"}))
	mock.ExpectQuery("SELECT COUNT.*").WillReturnError(errors.New("err-count"))

	s := NewProductStore(db)
	_, _, err = s.List(context.Background(), ProductFilter{Page: pagination.NewRequest(1, 10, "", "")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count products")
	assert.Contains(t, err.Error(), "err-count")
}

func TestProductFindByIDNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, price.* FROM products WHERE id = \\$1 AND del_flag = FALSE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := NewProductStore(db).FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductCreateRollsBackOnImageFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Mug", int64(1500), "stoneware", int64(2), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	prep := mock.ExpectPrepare("INSERT INTO product_images")
	prep.ExpectExec().WithArgs(int64(7), int64(0), "mug.jpg").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(int64(7), int64(1), "mug-side.jpg").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = NewProductStore(db).Create(context.Background(), &models.Product{
		Name: "Mug", Price: 1500, Description: "stoneware", ParentID: 2, SubID: 8,
		Images: []models.ProductImage{{FileName: "mug.jpg"}, {FileName: "mug-side.jpg"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert product image 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateMissingLeavesImages(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET").
		WithArgs("Mug", int64(1500), "", int64(2), int64(8), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ok, err := NewProductStore(db).Update(context.Background(), &models.Product{
		ID: 99, Name: "Mug", Price: 1500, ParentID: 2, SubID: 8,
		Images: []models.ProductImage{{FileName: "mug.jpg"}},
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQListCategoryQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT " + faqColumns + " FROM faqs WHERE del_flag = FALSE AND category = $1 AND answer ILIKE $2 ORDER BY id DESC LIMIT $3")).
		WithArgs("RETURN", `%100\%%`, int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question", "answer", "view_count", "category", "del_flag", "created_at", "updated_at"}).
			AddRow(int64(4), "Refunds?", "100% refund within 14 days", 3, "RETURN", false, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM faqs WHERE del_flag = FALSE AND category = $1 AND answer ILIKE $2")).
		WithArgs("RETURN", `%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	items, total, err := NewFAQStore(db).List(context.Background(), FAQFilter{
		Category: models.FAQReturn,
		Page:     pagination.NewRequest(1, 10, "c", "100%"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, models.FAQReturn, items[0].Category)
	assert.Equal(t, int64(3), items[0].ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFAQSoftDeleteUnknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE faqs SET").WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := NewFAQStore(db).SoftDelete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryIsSameHierarchyArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(14), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewCategoryStore(db).IsSameHierarchy(context.Background(), 3, 14)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
