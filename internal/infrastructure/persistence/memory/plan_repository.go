package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/ports/outbound"
)

// PlanRepository is an in-memory plan store.
type PlanRepository struct {
	mutex sync.RWMutex
	plans map[uuid.UUID]*plan.NutritionPlan
}

// NewPlanRepository creates an in-memory plan repository
func NewPlanRepository() outbound.PlanRepository {
	return &PlanRepository{plans: make(map[uuid.UUID]*plan.NutritionPlan)}
}

// Save stores a plan.
func (r *PlanRepository) Save(ctx context.Context, p *plan.NutritionPlan) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.plans[p.ID()] = p
	return nil
}

// FindByID looks up a plan by id.
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.NutritionPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, plan.ErrPlanNotFound
	}
	return p, nil
}

// FindByUserID returns the user's plans, newest first.
func (r *PlanRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*plan.NutritionPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	var out []*plan.NutritionPlan
	for _, p := range r.plans {
		if p.UserID() == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
