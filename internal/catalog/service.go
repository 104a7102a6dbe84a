// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements product listing and product mutations on top
// of the store package. Listings are filtered views over live products;
// mutations validate category references before anything is written.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
	"shopcatalog/internal/store"
)

// ProductRepository is the product persistence the service needs.
// *store.ProductStore satisfies it.
type ProductRepository interface {
	List(ctx context.Context, f store.ProductFilter) ([]models.ProductSummary, int, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (int64, error)
	Update(ctx context.Context, p *models.Product) (bool, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// CategoryRepository is the category lookup the service needs.
// *store.CategoryStore satisfies it.
type CategoryRepository interface {
	FindParent(ctx context.Context, id int64) (*models.ParentCategory, error)
	FindSub(ctx context.Context, id int64) (*models.SubCategory, error)
	IsSameHierarchy(ctx context.Context, parentID, subID int64) (bool, error)
}

// ImageResolver maps stored image keys to public URLs and back.
// *storage.Client satisfies it.
type ImageResolver interface {
	FileURL(key string) string
	ExtractKey(rawURL string) (string, bool)
}

// Service answers product queries and applies product mutations.
type Service struct {
	products   ProductRepository
	categories CategoryRepository
	images     ImageResolver
}

// NewService creates a catalog Service. images may be nil, in which case
// no image URLs are resolved.
func NewService(products ProductRepository, categories CategoryRepository, images ImageResolver) *Service {
	return &Service{products: products, categories: categories, images: images}
}

// List returns one page of all live products.
func (s *Service) List(ctx context.Context, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	return s.list(ctx, store.ProductFilter{Page: req})
}

// ListByCategory returns one page of the live products under a parent
// category. AllCategories behaves exactly like List.
func (s *Service) ListByCategory(ctx context.Context, parentID int64, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	if parentID < 0 {
		return pagination.Response[models.ProductSummary]{}, fmt.Errorf("%w: category %d", ErrInvalidInput, parentID)
	}
	return s.list(ctx, store.ProductFilter{ParentID: parentID, Page: req})
}

// ListBySubCategory returns one page of the live products in a sub-category.
// An unknown sub-category yields an empty page.
func (s *Service) ListBySubCategory(ctx context.Context, subID int64, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	if subID < 1 {
		return pagination.Response[models.ProductSummary]{}, fmt.Errorf("%w: sub-category %d", ErrInvalidInput, subID)
	}
	return s.list(ctx, store.ProductFilter{SubID: subID, Page: req})
}

// ListByTheme returns one page of the live products whose parent category
// carries the given theme.
func (s *Service) ListByTheme(ctx context.Context, theme models.Theme, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	if !theme.Valid() {
		return pagination.Response[models.ProductSummary]{}, fmt.Errorf("%w: theme %q", ErrInvalidInput, theme)
	}
	return s.list(ctx, store.ProductFilter{Theme: theme, Page: req})
}

func (s *Service) list(ctx context.Context, f store.ProductFilter) (pagination.Response[models.ProductSummary], error) {
	items, total, err := s.products.List(ctx, f)
	if err != nil {
		return pagination.Response[models.ProductSummary]{}, fmt.Errorf("list products: %w", err)
	}
	for i := range items {
		items[i].ThumbnailURL = s.imageURL(items[i].Thumbnail)
	}
	return pagination.NewResponse(items, total, f.Page), nil
}

// Get returns a live product with its ordered images, their URLs and
// the thumbnail URL.
func (s *Service) Get(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	for i := range p.Images {
		p.Images[i].URL = s.imageURL(p.Images[i].FileName)
	}
	p.ThumbnailURL = s.imageURL(p.Thumbnail())
	return p, nil
}

// Create validates in, checks that its categories exist and form one
// hierarchy, and persists the product with its images.
func (s *Service) Create(ctx context.Context, in ProductInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	if err := s.checkReferences(ctx, in.ParentID, in.SubID); err != nil {
		return 0, err
	}

	id, err := s.products.Create(ctx, s.toProduct(0, in))
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	slog.Info("product created", "id", id, "category", in.ParentID, "sub_category", in.SubID)
	return id, nil
}

// Update replaces every writable field of a live product, images included.
func (s *Service) Update(ctx context.Context, id int64, in ProductInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	if existing == nil {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err := s.checkReferences(ctx, in.ParentID, in.SubID); err != nil {
		return 0, err
	}

	ok, err := s.products.Update(ctx, s.toProduct(id, in))
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	// Deleted between the lookup and the write.
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	slog.Info("product updated", "id", id)
	return id, nil
}

// Delete soft-deletes a live product.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	ok, err := s.products.SoftDelete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	slog.Info("product deleted", "id", id)
	return id, nil
}

// checkReferences verifies that both categories are live and that the
// sub-category belongs to the parent.
func (s *Service) checkReferences(ctx context.Context, parentID, subID int64) error {
	parent, err := s.categories.FindParent(ctx, parentID)
	if err != nil {
		return fmt.Errorf("check parent category: %w", err)
	}
	if parent == nil {
		return fmt.Errorf("%w: parent category %d", ErrReferenceNotFound, parentID)
	}

	sub, err := s.categories.FindSub(ctx, subID)
	if err != nil {
		return fmt.Errorf("check sub category: %w", err)
	}
	if sub == nil {
		return fmt.Errorf("%w: sub-category %d", ErrReferenceNotFound, subID)
	}

	same, err := s.categories.IsSameHierarchy(ctx, parentID, subID)
	if err != nil {
		return fmt.Errorf("check category hierarchy: %w", err)
	}
	if !same {
		return fmt.Errorf("%w: sub-category %d, parent category %d", ErrHierarchyMismatch, subID, parentID)
	}
	return nil
}

// toProduct builds the persisted form of in. Image URLs pointing into the
// bucket are reduced to their object keys.
func (s *Service) toProduct(id int64, in ProductInput) *models.Product {
	p := &models.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		ParentID:    in.ParentID,
		SubID:       in.SubID,
		Images:      make([]models.ProductImage, 0, len(in.Images)),
	}
	for i, name := range in.Images {
		name = strings.TrimSpace(name)
		if s.images != nil {
			if key, ok := s.images.ExtractKey(name); ok {
				name = key
			}
		}
		p.Images = append(p.Images, models.ProductImage{Ord: i, FileName: name})
	}
	return p
}

func (s *Service) imageURL(key string) string {
	if key == "" || s.images == nil {
		return ""
	}
	return s.images.FileURL(key)
}
