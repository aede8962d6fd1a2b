package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/ports/outbound"
)

// PlanRepository implements outbound.PlanRepository backed by GORM
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new GORM plan repository
func NewPlanRepository(db *gorm.DB) outbound.PlanRepository {
	return &PlanRepository{db: db}
}

// Save persists a generated plan.
func (r *PlanRepository) Save(ctx context.Context, p *plan.NutritionPlan) error {
	model, err := PlanToModel(p)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save plan %s: %w", p.ID(), err)
	}
	return nil
}

// FindByID loads a plan by id.
func (r *PlanRepository) FindByID(ctx context.Context, planID uuid.UUID) (*plan.NutritionPlan, error) {
	var model NutritionPlanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to find plan %s: %w", planID, err)
	}
	return ModelToPlan(&model)
}

// FindByUserID returns the user's most recent plans, newest first.
func (r *PlanRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*plan.NutritionPlan, error) {
	if limit <= 0 {
		limit = 10
	}
	var models []NutritionPlanModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans for user %s: %w", userID, err)
	}

	plans := make([]*plan.NutritionPlan, 0, len(models))
	for i := range models {
		p, err := ModelToPlan(&models[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
