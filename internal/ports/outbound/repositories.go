// Package outbound defines the interfaces for outbound ports (secondary/driven adapters).
// These are the interfaces the application uses to reach external systems;
// the engine receives them explicitly and never touches ambient globals.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/recipe"
)

// RecipeCatalog exposes the externally owned recipe store. FetchActive
// returns every active recipe; eligibility filtering beyond the active flag
// is the engine's job, not the catalog's.
type RecipeCatalog interface {
	FetchActive(ctx context.Context) ([]*recipe.Recipe, error)
}

// FoodCatalog resolves ingredient food ids to food entities. Used only by
// shopping list aggregation.
type FoodCatalog interface {
	Resolve(ctx context.Context, foodID uuid.UUID) (*recipe.Food, error)
}

// PlanRepository persists generated plans. The stored aggregate is served
// back unchanged.
type PlanRepository interface {
	Save(ctx context.Context, p *plan.NutritionPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*plan.NutritionPlan, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*plan.NutritionPlan, error)
}

// CacheRepository defines the caching operations the application layer uses.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
