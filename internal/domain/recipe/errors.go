package recipe

import "errors"

// Catalog validation errors.

var (
	ErrMissingName     = errors.New("recipe name is required")
	ErrInvalidServings = errors.New("recipe servings must be greater than 0")
	ErrUnknownCategory = errors.New("recipe category is not recognized")
	ErrMissingFoodID   = errors.New("ingredient food id is required")
	ErrInvalidQuantity = errors.New("ingredient quantity must be greater than 0")

	// ErrFoodNotFound is returned by catalog adapters when an ingredient's
	// food id cannot be resolved.
	ErrFoodNotFound = errors.New("food not found in catalog")
)
