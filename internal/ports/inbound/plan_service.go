// Package inbound defines the interfaces for inbound ports (primary/driving adapters).
// These are the use cases the application exposes to HTTP handlers and other
// driving adapters.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/profile"
)

// PlanService defines the plan generation use cases.
type PlanService interface {
	// GeneratePlan runs one synchronous generation pass: targets, filter,
	// day-by-day assembly, aggregation. Either a complete plan comes back or
	// an error; there is no partial output.
	GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (*NutritionPlanDTO, error)

	// Queries over persisted plans.
	GetPlanByID(ctx context.Context, planID uuid.UUID) (*NutritionPlanDTO, error)
	GetPlansByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*NutritionPlanDTO, error)
}

// GeneratePlanCommand carries the health profile snapshot and horizon for
// one generation run. Validation tags guard the calculator's inputs; a
// failing field surfaces as an invalid-profile error before any math runs.
type GeneratePlanCommand struct {
	UserID        uuid.UUID             `json:"userId"`
	Age           int                   `json:"age" validate:"gt=0,lte=130"`
	Gender        profile.Gender        `json:"gender" validate:"oneof=male female"`
	WeightKg      float64               `json:"weightKg" validate:"gt=0"`
	HeightCm      float64               `json:"heightCm" validate:"gt=0"`
	ActivityLevel profile.ActivityLevel `json:"activityLevel"`
	Conditions    []profile.ConditionTag `json:"conditions"`
	Allergies     []profile.AllergenTag  `json:"allergies"`
	Preferences   profile.Preferences    `json:"preferences"`

	// DurationDays defaults to the configured horizon (30) when zero.
	DurationDays int `json:"durationDays" validate:"gte=0,lte=365"`
}

// Profile converts the command into a domain profile snapshot.
func (c GeneratePlanCommand) Profile() *profile.UserHealthProfile {
	p := &profile.UserHealthProfile{
		UserID:        c.UserID,
		Age:           c.Age,
		Gender:        c.Gender,
		WeightKg:      c.WeightKg,
		HeightCm:      c.HeightCm,
		ActivityLevel: c.ActivityLevel,
		Conditions:    c.Conditions,
		Allergies:     c.Allergies,
		Preferences:   c.Preferences,
	}
	return p.Snapshot()
}

// NutritionPlanDTO is the wire shape of a generated plan. Field names and
// nesting are a compatibility contract with external consumers.
type NutritionPlanDTO struct {
	ID                  uuid.UUID                 `json:"id"`
	UserID              uuid.UUID                 `json:"userId"`
	NutritionalGoals    plan.NutritionalGoals     `json:"nutritionalGoals"`
	DailyMenus          []plan.DailyMenu          `json:"dailyMenus"`
	WeeklyShoppingLists []plan.WeeklyShoppingList `json:"weeklyShoppingLists"`
	Duration            int                       `json:"duration"`
	StartDate           time.Time                 `json:"startDate"`
	EndDate             time.Time                 `json:"endDate"`
	CreatedAt           time.Time                 `json:"createdAt"`
}
