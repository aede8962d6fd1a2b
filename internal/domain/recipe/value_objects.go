package recipe

import (
	"github.com/google/uuid"
)

// Value objects shared between the catalog entities and the generated plan.

// Ingredient references a food by id with a quantity in that food's unit.
type Ingredient struct {
	FoodID   uuid.UUID
	Quantity float64
	Unit     string
}

// Validate validates the ingredient.
func (i Ingredient) Validate() error {
	if i.FoodID == uuid.Nil {
		return ErrMissingFoodID
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Nutrition is a nutrient block. For a Recipe it covers the whole batch.
type Nutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
	FiberG   float64 `json:"fiberG"`
	SodiumMg float64 `json:"sodiumMg"`
}

// Scale multiplies every nutrient by factor.
func (n Nutrition) Scale(factor float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * factor,
		ProteinG: n.ProteinG * factor,
		CarbsG:   n.CarbsG * factor,
		FatG:     n.FatG * factor,
		FiberG:   n.FiberG * factor,
		SodiumMg: n.SodiumMg * factor,
	}
}

// Add returns the nutrient-wise sum of n and other.
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + other.Calories,
		ProteinG: n.ProteinG + other.ProteinG,
		CarbsG:   n.CarbsG + other.CarbsG,
		FatG:     n.FatG + other.FatG,
		FiberG:   n.FiberG + other.FiberG,
		SodiumMg: n.SodiumMg + other.SodiumMg,
	}
}

// DietFlags marks which diets a recipe is compatible with.
type DietFlags struct {
	Vegetarian bool
	Vegan      bool
}

// CategoryType assigns a recipe to a meal slot family.
type CategoryType string

const (
	CategoryBreakfast CategoryType = "breakfast"
	CategoryLunch     CategoryType = "lunch"
	CategoryDinner    CategoryType = "dinner"
	CategorySnack     CategoryType = "snack"
	CategoryDessert   CategoryType = "dessert"
)

// categoryAliases maps legacy Spanish category names still present in older
// catalog exports onto the canonical categories.
var categoryAliases = map[string]CategoryType{
	"desayuno": CategoryBreakfast,
	"almuerzo": CategoryLunch,
	"cena":     CategoryDinner,
	"merienda": CategorySnack,
	"postre":   CategoryDessert,
}

// NormalizeCategory resolves a raw category string to a canonical
// CategoryType, accepting both canonical names and legacy aliases.
func NormalizeCategory(raw string) (CategoryType, bool) {
	switch CategoryType(raw) {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert:
		return CategoryType(raw), true
	}
	if c, ok := categoryAliases[raw]; ok {
		return c, true
	}
	return "", false
}
