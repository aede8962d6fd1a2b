// Package recipe contains the catalog entities the plan generation engine
// reads. Recipes and foods are owned by the catalog subsystem; the engine
// treats them as read-only inputs and never writes back.
package recipe

import (
	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/profile"
)

// Recipe is a catalog entry. TotalNutrition describes the recipe's whole
// batch, i.e. the base Servings count, not a single serving.
type Recipe struct {
	ID             uuid.UUID
	Name           string
	Category       CategoryType
	Ingredients    []Ingredient
	TotalNutrition Nutrition
	Servings       int
	Restrictions   map[profile.ConditionTag]bool // true means unsafe for that condition
	Allergens      []profile.AllergenTag
	Diets          DietFlags
	IsActive       bool
}

// UnsafeFor reports whether the recipe is flagged unsafe for the condition.
// Absent map entries count as safe.
func (r *Recipe) UnsafeFor(c profile.ConditionTag) bool {
	return r.Restrictions[c]
}

// ContainsAllergen reports whether the recipe lists the allergen.
func (r *Recipe) ContainsAllergen(a profile.AllergenTag) bool {
	for _, tag := range r.Allergens {
		if tag == a {
			return true
		}
	}
	return false
}

// Validate checks the catalog invariants the engine relies on.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if _, ok := NormalizeCategory(string(r.Category)); !ok {
		return ErrUnknownCategory
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Food is the catalog entity an ingredient's FoodID resolves to. Unit is the
// canonical unit quantities for this food are expressed in.
type Food struct {
	ID       uuid.UUID
	Name     string
	Unit     string
	Category string
}
