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

// FAQFilter is the descriptor for one FAQ listing. An empty Category lists
// every category.
type FAQFilter struct {
	Category models.FAQCategory
	Page     pagination.Request
}

// FAQStore handles FAQ persistence. Deletion is always a flag flip.
type FAQStore struct {
	db *sql.DB
}

// NewFAQStore creates a new FAQStore with the given database connection.
func NewFAQStore(db *sql.DB) *FAQStore {
	return &FAQStore{db: db}
}

const faqColumns = `id, question, answer, view_count, category, del_flag, created_at, updated_at`

func scanFAQ(scanner interface{ Scan(...any) error }) (*models.FAQ, error) {
	var f models.FAQ
	err := scanner.Scan(
		&f.ID, &f.Question, &f.Answer, &f.ViewCount,
		&f.Category, &f.Deleted, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (f FAQFilter) predicate() *query.Builder {
	b := query.From("faqs").Where(query.IsFalse("del_flag"))
	if f.Category != "" {
		b = b.Where(query.Eq("category", string(f.Category)))
	}
	if f.Page.HasKeyword() {
		switch f.Page.Type {
		case pagination.SearchTitle:
			b = b.Where(query.Contains(f.Page.Keyword, "question"))
		case pagination.SearchContent:
			b = b.Where(query.Contains(f.Page.Keyword, "answer"))
		default:
			b = b.Where(query.Contains(f.Page.Keyword, "question", "answer"))
		}
	}
	return b
}

// List returns one page of live FAQs, newest first, and the total number of
// matching rows.
func (s *FAQStore) List(ctx context.Context, f FAQFilter) ([]models.FAQ, int, error) {
	base := f.predicate()

	page := base.
		Select(faqColumns).
		OrderBy("id", query.Desc).
		Limit(int64(f.Page.Limit())).
		Offset(int64(f.Page.Offset())).
		Build()

	rows, err := s.db.QueryContext(ctx, page.SQL, page.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	items := []models.FAQ{}
	for rows.Next() {
		item, err := scanFAQ(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate faqs: %w", err)
	}

	count := base.Count().Build()
	var total int
	if err := s.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count faqs: %w", err)
	}

	return items, total, nil
}

// IncrementViews bumps the view counter of a live FAQ and returns the
// updated row. Returns nil if not found or soft-deleted.
func (s *FAQStore) IncrementViews(ctx context.Context, id int64) (*models.FAQ, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE faqs SET view_count = view_count + 1
		WHERE id = $1 AND del_flag = FALSE
		RETURNING `+faqColumns, id)
	f, err := scanFAQ(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("increment faq views: %w", err)
	}
	return f, nil
}

// Exists reports whether a FAQ row exists at all, deleted or not.
func (s *FAQStore) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM faqs WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check faq exists: %w", err)
	}
	return ok, nil
}

// Create inserts a FAQ and returns its generated ID.
func (s *FAQStore) Create(ctx context.Context, f *models.FAQ) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING id
	`, f.Question, f.Answer, f.Category).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create faq: %w", err)
	}
	return id, nil
}

// Update replaces the question, answer and category of a live FAQ.
// Returns false if no live FAQ has f.ID.
func (s *FAQStore) Update(ctx context.Context, f *models.FAQ) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE faqs SET question = $1, answer = $2, category = $3, updated_at = NOW()
		WHERE id = $4 AND del_flag = FALSE
	`, f.Question, f.Answer, f.Category, f.ID)
	if err != nil {
		return false, fmt.Errorf("update faq: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update faq rows affected: %w", err)
	}
	return n > 0, nil
}

// SoftDelete flags a FAQ as deleted. Deleting an already-deleted FAQ
// leaves the row untouched and still reports true; only an unknown ID
// reports false.
func (s *FAQStore) SoftDelete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE faqs SET
			del_flag = TRUE,
			updated_at = CASE WHEN del_flag THEN updated_at ELSE NOW() END
		WHERE id = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete faq: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete faq rows affected: %w", err)
	}
	return n > 0, nil
}
