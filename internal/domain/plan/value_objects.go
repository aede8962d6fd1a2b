package plan

import (
	"time"

	"github.com/google/uuid"
)

// Value objects of the nutrition plan aggregate. The JSON field names below
// are a compatibility contract: external consumers (UI, shopping list
// export) read the persisted plan verbatim.

// NutritionalGoals is the daily energy and macro target the plan was built
// toward. Grams satisfy proteinG*4 + carbsG*4 + fatG*9 ≈ dailyCalories
// within rounding tolerance.
type NutritionalGoals struct {
	DailyCalories int     `json:"dailyCalories"`
	ProteinG      float64 `json:"proteinG"`
	CarbsG        float64 `json:"carbsG"`
	FatG          float64 `json:"fatG"`
	FiberG        float64 `json:"fiberG"`
	SodiumMg      int     `json:"sodiumMg"`
}

// SlotNutrition is the nutrient block attached to a meal slot and to daily
// totals. Fiber is deliberately absent: downstream consumers depend on the
// four-field shape.
type SlotNutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

// Add returns the nutrient-wise sum of n and other.
func (n SlotNutrition) Add(other SlotNutrition) SlotNutrition {
	return SlotNutrition{
		Calories: n.Calories + other.Calories,
		ProteinG: n.ProteinG + other.ProteinG,
		CarbsG:   n.CarbsG + other.CarbsG,
		FatG:     n.FatG + other.FatG,
	}
}

// MealSlotSelection is one chosen recipe scaled into a meal slot. Servings
// is the integer multiplier applied to the recipe's batch nutrition, not the
// recipe's own base servings count.
type MealSlotSelection struct {
	RecipeID   uuid.UUID     `json:"recipeId"`
	RecipeName string        `json:"recipeName"`
	Servings   int           `json:"servings"`
	Nutrition  SlotNutrition `json:"nutrition"`
}

// DayMeals holds the slot selections of one day. A nil slot means the
// eligible pool had no recipe in that category for this day.
type DayMeals struct {
	Breakfast *MealSlotSelection  `json:"breakfast"`
	Lunch     *MealSlotSelection  `json:"lunch"`
	Dinner    *MealSlotSelection  `json:"dinner"`
	Snacks    []MealSlotSelection `json:"snacks"`
}

// Selections returns the non-empty slots in serving order.
func (m DayMeals) Selections() []MealSlotSelection {
	var out []MealSlotSelection
	if m.Breakfast != nil {
		out = append(out, *m.Breakfast)
	}
	if m.Lunch != nil {
		out = append(out, *m.Lunch)
	}
	if m.Dinner != nil {
		out = append(out, *m.Dinner)
	}
	out = append(out, m.Snacks...)
	return out
}

// DailyMenu is one generated day, 1-based within the plan horizon.
type DailyMenu struct {
	Day            int           `json:"day"`
	Date           time.Time     `json:"date"`
	Meals          DayMeals      `json:"meals"`
	TotalNutrition SlotNutrition `json:"totalNutrition"`
}

// ShoppingItem is one consolidated food line in a weekly list.
type ShoppingItem struct {
	FoodID        uuid.UUID `json:"foodId"`
	FoodName      string    `json:"foodName"`
	TotalQuantity float64   `json:"totalQuantity"`
	Unit          string    `json:"unit"`
	Category      string    `json:"category"`
}

// WeeklyShoppingList sums ingredient quantities across the days of one
// 7-day window. The last week of a plan may cover fewer than 7 days.
type WeeklyShoppingList struct {
	Week  int            `json:"week"`
	Items []ShoppingItem `json:"items"`
}
