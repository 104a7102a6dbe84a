// Package faq implements the FAQ list engine: paged, filterable reads over
// live entries plus create, update and idempotent soft delete.
package faq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
	"shopcatalog/internal/store"
)

var (
	// ErrNotFound means the FAQ does not exist (or, for reads and updates,
	// is soft-deleted).
	ErrNotFound = errors.New("faq not found")
	// ErrInvalidInput means a field failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

const (
	maxQuestionLen = 500
	maxAnswerLen   = 5_000
)

// Repository is the FAQ persistence the service needs.
// *store.FAQStore satisfies it.
type Repository interface {
	List(ctx context.Context, f store.FAQFilter) ([]models.FAQ, int, error)
	IncrementViews(ctx context.Context, id int64) (*models.FAQ, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, f *models.FAQ) (int64, error)
	Update(ctx context.Context, f *models.FAQ) (bool, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// Input is the writable part of a FAQ.
type Input struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer"`
	Category models.FAQCategory `json:"category"`
}

// Validate returns an error wrapping ErrInvalidInput for the first problem
// found.
func (in Input) Validate() error {
	q := strings.TrimSpace(in.Question)
	switch {
	case q == "":
		return fmt.Errorf("%w: question is required", ErrInvalidInput)
	case utf8.RuneCountInString(q) > maxQuestionLen:
		return fmt.Errorf("%w: question is too long (max 500 characters)", ErrInvalidInput)
	case strings.TrimSpace(in.Answer) == "":
		return fmt.Errorf("%w: answer is required", ErrInvalidInput)
	case utf8.RuneCountInString(in.Answer) > maxAnswerLen:
		return fmt.Errorf("%w: answer is too long (max 5,000 characters)", ErrInvalidInput)
	case !in.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	return nil
}

// Service serves FAQ reads and writes.
type Service struct {
	repo Repository
}

// NewService creates a FAQ Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of live FAQs, newest first. A nil category lists
// every category.
func (s *Service) List(ctx context.Context, req pagination.Request, category *models.FAQCategory) (pagination.Response[models.FAQ], error) {
	f := store.FAQFilter{Page: req}
	if category != nil {
		if !category.Valid() {
			return pagination.Response[models.FAQ]{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *category)
		}
		f.Category = *category
	}

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return pagination.Response[models.FAQ]{}, fmt.Errorf("list faqs: %w", err)
	}
	return pagination.NewResponse(items, total, req), nil
}

// Read returns a live FAQ and counts the view.
func (s *Service) Read(ctx context.Context, id int64) (*models.FAQ, error) {
	f, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read faq: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return f, nil
}

// Create validates and stores a new FAQ.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, &models.FAQ{
		Question: strings.TrimSpace(in.Question),
		Answer:   in.Answer,
		Category: in.Category,
	})
	if err != nil {
		return 0, fmt.Errorf("create faq: %w", err)
	}
	slog.Info("faq created", "id", id, "category", in.Category)
	return id, nil
}

// Update replaces the question, answer and category of a live FAQ.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}
	ok, err := s.repo.Update(ctx, &models.FAQ{
		ID:       id,
		Question: strings.TrimSpace(in.Question),
		Answer:   in.Answer,
		Category: in.Category,
	})
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	slog.Info("faq updated", "id", id)
	return nil
}

// SoftDelete flags a FAQ as deleted. Deleting an already-deleted FAQ
// succeeds without changes; an unknown ID yields ErrNotFound.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	slog.Info("faq deleted", "id", id)
	return nil
}

// Exists reports whether a FAQ row exists, deleted or not.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check faq: %w", err)
	}
	return ok, nil
}
