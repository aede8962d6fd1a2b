// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/ports/outbound"
)

// RecipeCatalog implements outbound.RecipeCatalog backed by GORM
type RecipeCatalog struct {
	db *gorm.DB
}

// NewRecipeCatalog creates a new GORM recipe catalog
func NewRecipeCatalog(db *gorm.DB) outbound.RecipeCatalog {
	return &RecipeCatalog{db: db}
}

// FetchActive returns every active recipe in stable insertion order.
func (c *RecipeCatalog) FetchActive(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	if err := c.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch active recipes: %w", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		r, err := ModelToRecipe(&models[i])
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}
