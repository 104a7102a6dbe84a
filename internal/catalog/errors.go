package catalog

import "errors"

var (
	// ErrNotFound means the product does not exist or is soft-deleted.
	ErrNotFound = errors.New("product not found")
	// ErrReferenceNotFound means a referenced parent or sub-category does
	// not exist or is soft-deleted.
	ErrReferenceNotFound = errors.New("category not found")
	// ErrHierarchyMismatch means the sub-category does not belong to the
	// given parent category.
	ErrHierarchyMismatch = errors.New("sub-category does not belong to parent category")
	// ErrInvalidInput means a field failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
