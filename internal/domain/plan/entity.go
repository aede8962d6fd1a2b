// Package plan contains the nutrition plan aggregate produced by one
// generation run. The aggregate is built in a single synchronous call and
// handed to the caller; the engine keeps no state between calls.
package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/shared"
)

// NutritionPlan is the aggregate root covering the full plan horizon.
type NutritionPlan struct {
	shared.AggregateRoot

	id            uuid.UUID
	userID        uuid.UUID
	goals         NutritionalGoals
	dailyMenus    []DailyMenu
	shoppingLists []WeeklyShoppingList
	duration      int
	startDate     time.Time
	endDate       time.Time
	createdAt     time.Time
}

// NewNutritionPlan assembles and validates the aggregate. Menus must be
// ordered 1..duration with no gaps; either a complete plan is constructed or
// none is.
func NewNutritionPlan(
	userID uuid.UUID,
	goals NutritionalGoals,
	menus []DailyMenu,
	shoppingLists []WeeklyShoppingList,
	startDate time.Time,
) (*NutritionPlan, error) {
	duration := len(menus)
	if duration == 0 {
		return nil, ErrEmptyHorizon
	}
	if goals.DailyCalories <= 0 {
		return nil, ErrInvalidGoals
	}
	for i, menu := range menus {
		if menu.Day != i+1 {
			return nil, ErrMisnumberedDays
		}
	}

	now := time.Now()
	p := &NutritionPlan{
		id:            uuid.New(),
		userID:        userID,
		goals:         goals,
		dailyMenus:    menus,
		shoppingLists: shoppingLists,
		duration:      duration,
		startDate:     startDate,
		endDate:       startDate.AddDate(0, 0, duration),
		createdAt:     now,
	}

	p.AddEvent(PlanGeneratedEvent{
		PlanID:      p.id,
		UserID:      userID,
		Duration:    duration,
		GeneratedAt: now,
	})

	return p, nil
}

// Restore rebuilds an aggregate from persisted state without raising events.
func Restore(
	id, userID uuid.UUID,
	goals NutritionalGoals,
	menus []DailyMenu,
	shoppingLists []WeeklyShoppingList,
	startDate, endDate, createdAt time.Time,
) *NutritionPlan {
	return &NutritionPlan{
		id:            id,
		userID:        userID,
		goals:         goals,
		dailyMenus:    menus,
		shoppingLists: shoppingLists,
		duration:      len(menus),
		startDate:     startDate,
		endDate:       endDate,
		createdAt:     createdAt,
	}
}

// ID returns the plan's unique identifier.
func (p *NutritionPlan) ID() uuid.UUID {
	return p.id
}

// UserID returns the profile owner the plan was generated for.
func (p *NutritionPlan) UserID() uuid.UUID {
	return p.userID
}

// Goals returns the daily targets the plan was built toward.
func (p *NutritionPlan) Goals() NutritionalGoals {
	return p.goals
}

// DailyMenus returns the generated days ordered by day ascending.
func (p *NutritionPlan) DailyMenus() []DailyMenu {
	return p.dailyMenus
}

// ShoppingLists returns the weekly shopping lists.
func (p *NutritionPlan) ShoppingLists() []WeeklyShoppingList {
	return p.shoppingLists
}

// Duration returns the plan horizon in days.
func (p *NutritionPlan) Duration() int {
	return p.duration
}

// StartDate returns the date of day 1.
func (p *NutritionPlan) StartDate() time.Time {
	return p.startDate
}

// EndDate returns startDate + duration days.
func (p *NutritionPlan) EndDate() time.Time {
	return p.endDate
}

// CreatedAt returns when the plan was generated.
func (p *NutritionPlan) CreatedAt() time.Time {
	return p.createdAt
}
