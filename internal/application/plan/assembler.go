package plan

import (
	"math"

	domainplan "github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/recipe"
)

// Per-slot shares of the daily calorie target.
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	dinnerShare    = 0.30
	snackShare     = 0.10
)

// MenuAssembler picks one recipe per meal slot for a given day index.
// Selection is fully deterministic: the same pool and day always reproduce
// the same menu, and consecutive days cycle through each category bucket
// with period equal to the bucket size.
type MenuAssembler struct {
	breakfast []*recipe.Recipe
	lunch     []*recipe.Recipe
	dinner    []*recipe.Recipe
	snacks    []*recipe.Recipe
}

// NewMenuAssembler partitions the eligible pool into category buckets.
// Dessert recipes have no slot of their own and are left out of the menu;
// they stay in the catalog for other surfaces.
func NewMenuAssembler(pool []*recipe.Recipe) *MenuAssembler {
	a := &MenuAssembler{}
	for _, r := range pool {
		category, ok := recipe.NormalizeCategory(string(r.Category))
		if !ok {
			continue
		}
		switch category {
		case recipe.CategoryBreakfast:
			a.breakfast = append(a.breakfast, r)
		case recipe.CategoryLunch:
			a.lunch = append(a.lunch, r)
		case recipe.CategoryDinner:
			a.dinner = append(a.dinner, r)
		case recipe.CategorySnack:
			a.snacks = append(a.snacks, r)
		}
	}
	return a
}

// AssembleDay builds the meals for a 1-based day index against a daily
// calorie target. An empty bucket leaves its slot unfilled rather than
// failing; a day may legitimately come out thin.
func (a *MenuAssembler) AssembleDay(day int, dailyCalories int) domainplan.DayMeals {
	target := float64(dailyCalories)

	meals := domainplan.DayMeals{
		Breakfast: pickSlot(a.breakfast, day, target*breakfastShare),
		Lunch:     pickSlot(a.lunch, day, target*lunchShare),
		Dinner:    pickSlot(a.dinner, day, target*dinnerShare),
	}
	if snack := pickSlot(a.snacks, day, target*snackShare); snack != nil {
		meals.Snacks = []domainplan.MealSlotSelection{*snack}
	} else {
		meals.Snacks = []domainplan.MealSlotSelection{}
	}
	return meals
}

// pickSlot selects bucket[day mod len] and scales the recipe's whole-batch
// nutrition by an integer serving multiplier. Batch totals are scaled
// rather than per-serving values; plans already in the wild carry these
// numbers, so the behavior is locked.
func pickSlot(bucket []*recipe.Recipe, day int, slotCalories float64) *domainplan.MealSlotSelection {
	if len(bucket) == 0 {
		return nil
	}

	chosen := bucket[day%len(bucket)]

	servings := 1
	if chosen.TotalNutrition.Calories > 0 {
		servings = int(math.Round(slotCalories / chosen.TotalNutrition.Calories))
		if servings < 1 {
			servings = 1
		}
	}

	scaled := chosen.TotalNutrition.Scale(float64(servings))
	return &domainplan.MealSlotSelection{
		RecipeID:   chosen.ID,
		RecipeName: chosen.Name,
		Servings:   servings,
		Nutrition: domainplan.SlotNutrition{
			Calories: scaled.Calories,
			ProteinG: scaled.ProteinG,
			CarbsG:   scaled.CarbsG,
			FatG:     scaled.FatG,
		},
	}
}
