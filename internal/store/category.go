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
)

// CategoryStore reads the two-level category hierarchy. Soft-deleted parent
// and sub-categories are invisible to every lookup.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const parentColumns = `id, name, kind, theme, del_flag`

const subColumns = `id, parent_id, name, del_flag`

// scanParent scans a row into a ParentCategory struct.
func scanParent(scanner interface{ Scan(...any) error }) (*models.ParentCategory, error) {
	var c models.ParentCategory
	if err := scanner.Scan(&c.ID, &c.Name, &c.Kind, &c.Theme, &c.Deleted); err != nil {
		return nil, err
	}
	return &c, nil
}

// scanSub scans a row into a SubCategory struct.
func scanSub(scanner interface{ Scan(...any) error }) (*models.SubCategory, error) {
	var c models.SubCategory
	if err := scanner.Scan(&c.ID, &c.ParentID, &c.Name, &c.Deleted); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindParent retrieves a live parent category by ID. Returns nil if not found.
func (s *CategoryStore) FindParent(ctx context.Context, id int64) (*models.ParentCategory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+parentColumns+` FROM parent_categories WHERE id = $1 AND del_flag = FALSE`, id)
	c, err := scanParent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find parent category: %w", err)
	}
	return c, nil
}

// FindSub retrieves a live sub-category by ID. Returns nil if not found.
func (s *CategoryStore) FindSub(ctx context.Context, id int64) (*models.SubCategory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+subColumns+` FROM sub_categories WHERE id = $1 AND del_flag = FALSE`, id)
	c, err := scanSub(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sub category: %w", err)
	}
	return c, nil
}

// IsSameHierarchy reports whether the live sub-category subID belongs to parentID.
func (s *CategoryStore) IsSameHierarchy(ctx context.Context, parentID, subID int64) (bool, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM sub_categories
			WHERE id = $1 AND parent_id = $2 AND del_flag = FALSE
		)`, subID, parentID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check category hierarchy: %w", err)
	}
	return ok, nil
}

// ListParents returns all live parent categories ordered by ID.
func (s *CategoryStore) ListParents(ctx context.Context) ([]models.ParentCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+parentColumns+` FROM parent_categories WHERE del_flag = FALSE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list parent categories: %w", err)
	}
	defer rows.Close()

	items := []models.ParentCategory{}
	for rows.Next() {
		c, err := scanParent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parent category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListSubs returns the live sub-categories of a parent ordered by ID.
func (s *CategoryStore) ListSubs(ctx context.Context, parentID int64) ([]models.SubCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+subColumns+` FROM sub_categories WHERE parent_id = $1 AND del_flag = FALSE ORDER BY id`,
		parentID)
	if err != nil {
		return nil, fmt.Errorf("list sub categories: %w", err)
	}
	defer rows.Close()

	items := []models.SubCategory{}
	for rows.Next() {
		c, err := scanSub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// CreateParent inserts a parent category and returns it. An empty theme
// falls back to models.DefaultTheme.
func (s *CategoryStore) CreateParent(ctx context.Context, c *models.ParentCategory) (*models.ParentCategory, error) {
	if !c.Kind.Valid() {
		return nil, fmt.Errorf("create parent category: invalid kind %q", c.Kind)
	}
	theme := c.Theme
	if theme == "" {
		theme = models.DefaultTheme
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO parent_categories (name, kind, theme)
		VALUES ($1, $2, $3)
		RETURNING `+parentColumns,
		c.Name, c.Kind, theme,
	)
	result, err := scanParent(row)
	if err != nil {
		return nil, fmt.Errorf("create parent category: %w", err)
	}
	return result, nil
}

// CreateSub inserts a sub-category under an existing parent and returns it.
func (s *CategoryStore) CreateSub(ctx context.Context, c *models.SubCategory) (*models.SubCategory, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO sub_categories (parent_id, name)
		VALUES ($1, $2)
		RETURNING `+subColumns,
		c.ParentID, c.Name,
	)
	result, err := scanSub(row)
	if err != nil {
		return nil, fmt.Errorf("create sub category: %w", err)
	}
	return result, nil
}
