package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validation limits for product fields.
const (
	maxNameLen        = 200
	maxDescriptionLen = 5_000
	maxImages         = 10
)

// AllCategories is the parent reference that disables category filtering.
const AllCategories int64 = 0

// ProductInput is the writable part of a product. Images are file names
// (or public URLs of this store's bucket) in display order; the first one
// becomes the thumbnail.
type ProductInput struct {
	Name        string   `json:"pname"`
	Price       int64    `json:"price"`
	Description string   `json:"pdesc"`
	ParentID    int64    `json:"categoryCno"`
	SubID       int64    `json:"subCategoryScno"`
	Images      []string `json:"uploadFileNames"`
}

// Validate checks field limits and returns an error wrapping
// ErrInvalidInput for the first problem found.
func (in ProductInput) Validate() error {
	if msg := validateProduct(in); msg != "" {
		return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
	}
	return nil
}

func validateProduct(in ProductInput) string {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "name is too long (max 200 characters)"
	}
	if in.Price < 0 {
		return "price must not be negative"
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return "description is too long (max 5,000 characters)"
	}
	if len(in.Images) > maxImages {
		return "too many images (max 10)"
	}
	for i, img := range in.Images {
		if strings.TrimSpace(img) == "" {
			return fmt.Sprintf("image %d has an empty file name", i)
		}
	}
	return ""
}

// ParseParentRef reads a parent category reference from a query string.
// "all" (any case) and "0" both mean AllCategories.
func ParseParentRef(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return AllCategories, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: category reference %q", ErrInvalidInput, s)
	}
	return id, nil
}
