package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/ports/outbound"
)

// FoodCatalog implements outbound.FoodCatalog backed by GORM
type FoodCatalog struct {
	db *gorm.DB
}

// NewFoodCatalog creates a new GORM food catalog
func NewFoodCatalog(db *gorm.DB) outbound.FoodCatalog {
	return &FoodCatalog{db: db}
}

// Resolve looks up a food by id.
func (c *FoodCatalog) Resolve(ctx context.Context, foodID uuid.UUID) (*recipe.Food, error) {
	var model FoodModel
	if err := c.db.WithContext(ctx).First(&model, "id = ?", foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recipe.ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to resolve food %s: %w", foodID, err)
	}
	return ModelToFood(&model), nil
}
