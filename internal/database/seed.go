package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

type seedParent struct {
	name  string
	kind  string
	theme string
	subs  []string
}

var seedCategories = []seedParent{
	{name: "Food", kind: "FOOD", theme: "VITALITY", subs: []string{"Tea", "Snacks", "Supplements"}},
	{name: "Living", kind: "LIVING", theme: "RELAXATION", subs: []string{"Candles", "Bedding", "Diffusers"}},
	{name: "Beauty", kind: "BEAUTY", theme: "COMFORT", subs: []string{"Skincare", "Bath"}},
	{name: "Fashion", kind: "FASHION", theme: "COMFORT", subs: []string{"Loungewear", "Socks"}},
	{name: "Hobby", kind: "HOBBY", theme: "FOCUS", subs: []string{"Puzzles", "Journals"}},
}

var seedFAQs = []struct {
	category string
	question string
	answer   string
}{
	{"ORDER", "How do I change my order?", "Orders can be changed until they are shipped."},
	{"DELIVERY", "How long does delivery take?", "Most orders arrive within 2-3 business days."},
	{"PAYMENT", "Which payment methods are accepted?", "Cards and bank transfer are accepted."},
	{"RETURN", "Can I return an opened item?", "Opened items can be returned within 7 days if unused."},
	{"ACCOUNT", "How do I reset my password?", "Use the reset link on the sign-in page."},
}

// Seed populates the database with development data: one parent category
// per kind with its sub-categories, a product in each sub-category, and a
// handful of FAQs. It is a no-op when any parent category already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM parent_categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	products := 0
	for _, p := range seedCategories {
		var parentID int64
		err := tx.QueryRow(`
			INSERT INTO parent_categories (name, kind, theme)
			VALUES ($1, $2, $3)
			RETURNING id
		`, p.name, p.kind, p.theme).Scan(&parentID)
		if err != nil {
			return fmt.Errorf("seed insert parent %s: %w", p.name, err)
		}

		for _, sub := range p.subs {
			var subID int64
			err := tx.QueryRow(`
				INSERT INTO sub_categories (parent_id, name)
				VALUES ($1, $2)
				RETURNING id
			`, parentID, sub).Scan(&subID)
			if err != nil {
				return fmt.Errorf("seed insert sub %s: %w", sub, err)
			}

			var productID int64
			err = tx.QueryRow(`
				INSERT INTO products (name, price, description, parent_id, sub_id)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, "Sample "+sub, 10000, "A sample product in "+sub+".", parentID, subID).Scan(&productID)
			if err != nil {
				return fmt.Errorf("seed insert product for %s: %w", sub, err)
			}

			if _, err := tx.Exec(`
				INSERT INTO product_images (product_id, ord, file_name)
				VALUES ($1, 0, $2)
			`, productID, fmt.Sprintf("products/sample-%d.jpg", productID)); err != nil {
				return fmt.Errorf("seed insert image for %s: %w", sub, err)
			}
			products++
		}
	}

	for _, f := range seedFAQs {
		if _, err := tx.Exec(`
			INSERT INTO faqs (category, question, answer)
			VALUES ($1, $2, $3)
		`, f.category, f.question, f.answer); err != nil {
			return fmt.Errorf("seed insert faq: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"parent_categories", len(seedCategories),
		"products", products,
		"faqs", len(seedFAQs),
	)
	return nil
}
