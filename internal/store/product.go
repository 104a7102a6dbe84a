// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
	"shopcatalog/internal/query"
)

// ProductFilter is the immutable descriptor for one product listing.
// Zero values mean "no restriction" on that dimension.
type ProductFilter struct {
	ParentID int64
	SubID    int64
	Theme    models.Theme
	Page     pagination.Request
}

// ProductStore handles product and product image persistence.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore with the given database connection.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, price, description, parent_id, sub_id, del_flag, created_at, updated_at`

// scanProduct scans a product row (without images).
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Price, &p.Description,
		&p.ParentID, &p.SubID, &p.Deleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// predicate builds the shared FROM/JOIN/WHERE part of a product listing.
// Soft-deleted rows are always excluded, whatever the filter.
func (f ProductFilter) predicate() *query.Builder {
	b := query.From("products p").Where(query.IsFalse("p.del_flag"))

	if f.Theme != "" {
		b = b.Join("parent_categories pc ON pc.id = p.parent_id").
			Where(query.Eq("pc.theme", string(f.Theme)))
	}
	if f.ParentID > 0 {
		b = b.Where(query.Eq("p.parent_id", f.ParentID))
	}
	if f.SubID > 0 {
		b = b.Where(query.Eq("p.sub_id", f.SubID))
	}

	if f.Page.HasKeyword() {
		switch f.Page.Type {
		case pagination.SearchTitle:
			b = b.Where(query.Contains(f.Page.Keyword, "p.name"))
		case pagination.SearchContent:
			b = b.Where(query.Contains(f.Page.Keyword, "p.description"))
		default:
			b = b.Where(query.Contains(f.Page.Keyword, "p.name", "p.description"))
		}
	}
	return b
}

// List returns one page of live products matching f, newest first, and the
// total number of matching rows. The page and the count are separate
// queries and may observe different snapshots under concurrent writes.
func (s *ProductStore) List(ctx context.Context, f ProductFilter) ([]models.ProductSummary, int, error) {
	base := f.predicate()

	page := base.
		LeftJoin("product_images pi ON pi.product_id = p.id AND pi.ord = 0").
		Select("p.id", "p.name", "p.price", "p.description", "p.parent_id", "p.sub_id",
			"COALESCE(pi.file_name, '')").
		OrderBy("p.id", query.Desc).
		Limit(int64(f.Page.Limit())).
		Offset(int64(f.Page.Offset())).
		Build()

	rows, err := s.db.QueryContext(ctx, page.SQL, page.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := []models.ProductSummary{}
	for rows.Next() {
		var p models.ProductSummary
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Description,
			&p.ParentID, &p.SubID, &p.Thumbnail,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	count := base.Count().Build()
	var total int
	if err := s.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	return items, total, nil
}

// FindByID retrieves a live product with its ordered images.
// Returns nil if the product does not exist or is soft-deleted.
func (s *ProductStore) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND del_flag = FALSE`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}

	p.Images, err = s.images(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// images returns the image sequence of a product ordered by position.
func (s *ProductStore) images(ctx context.Context, productID int64) ([]models.ProductImage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ord, file_name FROM product_images WHERE product_id = $1 ORDER BY ord`, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	images := []models.ProductImage{}
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.Ord, &img.FileName); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Create inserts a product and its image sequence in one transaction and
// returns the generated ID. Image positions follow slice order.
func (s *ProductStore) Create(ctx context.Context, p *models.Product) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (name, price, description, parent_id, sub_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Name, p.Price, p.Description, p.ParentID, p.SubID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	if err := insertImages(ctx, tx, id, p.Images); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit product: %w", err)
	}
	return id, nil
}

// Update replaces every mutable field of a live product, including its
// image sequence. The ID and delete flag are never changed. Returns false
// if no live product has p.ID.
func (s *ProductStore) Update(ctx context.Context, p *models.Product) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products SET
			name = $1, price = $2, description = $3, parent_id = $4, sub_id = $5,
			updated_at = NOW()
		WHERE id = $6 AND del_flag = FALSE
	`, p.Name, p.Price, p.Description, p.ParentID, p.SubID, p.ID)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update product rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, p.ID); err != nil {
		return false, fmt.Errorf("clear product images: %w", err)
	}
	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit product update: %w", err)
	}
	return true, nil
}

// SoftDelete flags a live product as deleted. Returns false if no live
// product has the given ID.
func (s *ProductStore) SoftDelete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products SET del_flag = TRUE, updated_at = NOW()
		WHERE id = $1 AND del_flag = FALSE
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product rows affected: %w", err)
	}
	return n > 0, nil
}

// insertImages writes an image sequence with positions 0..n-1.
func insertImages(ctx context.Context, tx *sql.Tx, productID int64, images []models.ProductImage) error {
	if len(images) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO product_images (product_id, ord, file_name) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("prepare image insert: %w", err)
	}
	defer stmt.Close()

	for i, img := range images {
		if _, err := stmt.ExecContext(ctx, productID, i, img.FileName); err != nil {
			return fmt.Errorf("insert product image %d: %w", i, err)
		}
	}
	return nil
}
