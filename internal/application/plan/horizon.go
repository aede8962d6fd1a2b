package plan

import (
	"time"

	domainplan "github.com/nutriplan/v2/internal/domain/plan"
)

// MinEligibleRecipes is the smallest eligible pool a plan can be built
// from. Below this the horizon builder fails fast instead of producing a
// degenerate plan that repeats the same recipe every day.
const MinEligibleRecipes = 4

// BuildHorizon assembles duration consecutive daily menus starting at
// startDate. Menus come back ordered 1..duration with no gaps, each with
// its date stamped and slot nutrition summed into the daily total.
//
// Fiber is not accumulated into daily totals; downstream consumers key off
// the four-field shape, so the omission is deliberate.
func BuildHorizon(assembler *MenuAssembler, goals domainplan.NutritionalGoals, duration int, startDate time.Time) ([]domainplan.DailyMenu, error) {
	if duration < 1 {
		return nil, domainplan.ErrInvalidDuration
	}

	menus := make([]domainplan.DailyMenu, 0, duration)
	for day := 1; day <= duration; day++ {
		meals := assembler.AssembleDay(day, goals.DailyCalories)

		var total domainplan.SlotNutrition
		for _, slot := range meals.Selections() {
			total = total.Add(slot.Nutrition)
		}

		menus = append(menus, domainplan.DailyMenu{
			Day:            day,
			Date:           startDate.AddDate(0, 0, day-1),
			Meals:          meals,
			TotalNutrition: total,
		})
	}

	return menus, nil
}
