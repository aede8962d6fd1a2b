package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/ports/outbound"
)

// RecipeCatalog is an in-memory recipe catalog. Fetch order follows
// insertion order, which keeps menu assembly deterministic in tests.
type RecipeCatalog struct {
	mutex   sync.RWMutex
	recipes []*recipe.Recipe
}

// NewRecipeCatalog creates an in-memory recipe catalog
func NewRecipeCatalog(recipes ...*recipe.Recipe) *RecipeCatalog {
	return &RecipeCatalog{recipes: recipes}
}

// Add appends recipes to the catalog.
func (c *RecipeCatalog) Add(recipes ...*recipe.Recipe) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.recipes = append(c.recipes, recipes...)
}

// FetchActive returns the active recipes in insertion order.
func (c *RecipeCatalog) FetchActive(ctx context.Context) ([]*recipe.Recipe, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]*recipe.Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

// FoodCatalog is an in-memory food catalog keyed by food id.
type FoodCatalog struct {
	mutex sync.RWMutex
	foods map[uuid.UUID]*recipe.Food
}

// NewFoodCatalog creates an in-memory food catalog
func NewFoodCatalog(foods ...*recipe.Food) *FoodCatalog {
	byID := make(map[uuid.UUID]*recipe.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}
	return &FoodCatalog{foods: byID}
}

// Add registers foods in the catalog.
func (c *FoodCatalog) Add(foods ...*recipe.Food) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, f := range foods {
		c.foods[f.ID] = f
	}
}

// Resolve looks up a food by id.
func (c *FoodCatalog) Resolve(ctx context.Context, foodID uuid.UUID) (*recipe.Food, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	f, ok := c.foods[foodID]
	if !ok {
		return nil, recipe.ErrFoodNotFound
	}
	return f, nil
}

var (
	_ outbound.RecipeCatalog = (*RecipeCatalog)(nil)
	_ outbound.FoodCatalog   = (*FoodCatalog)(nil)
)
