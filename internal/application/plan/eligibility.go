package plan

import (
	"github.com/nutriplan/v2/internal/domain/profile"
	"github.com/nutriplan/v2/internal/domain/recipe"
)

// EligibleRecipes narrows the catalog to recipes that are medically and
// dietetically safe for the profile. The result preserves catalog order and
// is never capped; any further narrowing belongs to the assembler.
//
// A recipe is eligible iff it is active, is not flagged unsafe for any of
// the profile's conditions, shares no allergen with the profile, and
// satisfies the vegetarian/vegan implications of the preferences.
func EligibleRecipes(p *profile.UserHealthProfile, catalog []*recipe.Recipe) []*recipe.Recipe {
	eligible := make([]*recipe.Recipe, 0, len(catalog))

	for _, r := range catalog {
		if r == nil || !r.IsActive {
			continue
		}
		if restricted(p, r) || allergenic(p, r) {
			continue
		}
		if p.Preferences.Vegetarian && !r.Diets.Vegetarian {
			continue
		}
		if p.Preferences.Vegan && !r.Diets.Vegan {
			continue
		}
		eligible = append(eligible, r)
	}

	return eligible
}

func restricted(p *profile.UserHealthProfile, r *recipe.Recipe) bool {
	for _, condition := range p.Conditions {
		if r.UnsafeFor(condition) {
			return true
		}
	}
	return false
}

func allergenic(p *profile.UserHealthProfile, r *recipe.Recipe) bool {
	for _, allergen := range r.Allergens {
		if p.IsAllergicTo(allergen) {
			return true
		}
	}
	return false
}
