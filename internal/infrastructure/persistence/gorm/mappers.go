// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/profile"
	"github.com/nutriplan/v2/internal/domain/recipe"
)

// ingredientRecord is the persisted shape of one recipe ingredient.
type ingredientRecord struct {
	FoodID   uuid.UUID `json:"foodId"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
}

// FoodToModel converts a domain food to a GORM model
func FoodToModel(f *recipe.Food) *FoodModel {
	return &FoodModel{
		ID:       f.ID,
		Name:     f.Name,
		Unit:     f.Unit,
		Category: f.Category,
	}
}

// ModelToFood converts a GORM model to a domain food
func ModelToFood(m *FoodModel) *recipe.Food {
	return &recipe.Food{
		ID:       m.ID,
		Name:     m.Name,
		Unit:     m.Unit,
		Category: m.Category,
	}
}

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) (*RecipeModel, error) {
	records := make([]ingredientRecord, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		records[i] = ingredientRecord{
			FoodID:   ing.FoodID,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
	}
	ingredients, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	nutrition, err := json.Marshal(r.TotalNutrition)
	if err != nil {
		return nil, fmt.Errorf("marshal nutrition: %w", err)
	}

	restrictions := make(StringSlice, 0, len(r.Restrictions))
	for tag, unsafe := range r.Restrictions {
		if unsafe {
			restrictions = append(restrictions, string(tag))
		}
	}
	allergens := make(StringSlice, len(r.Allergens))
	for i, a := range r.Allergens {
		allergens[i] = string(a)
	}

	return &RecipeModel{
		ID:           r.ID,
		Name:         r.Name,
		Category:     string(r.Category),
		Ingredients:  JSONDocument(ingredients),
		Nutrition:    JSONDocument(nutrition),
		Restrictions: restrictions,
		Allergens:    allergens,
		Vegetarian:   r.Diets.Vegetarian,
		Vegan:        r.Diets.Vegan,
		Servings:     r.Servings,
		IsActive:     r.IsActive,
	}, nil
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) (*recipe.Recipe, error) {
	var records []ingredientRecord
	if len(m.Ingredients) > 0 {
		if err := json.Unmarshal(m.Ingredients, &records); err != nil {
			return nil, fmt.Errorf("unmarshal ingredients for recipe %s: %w", m.ID, err)
		}
	}
	ingredients := make([]recipe.Ingredient, len(records))
	for i, rec := range records {
		ingredients[i] = recipe.Ingredient{
			FoodID:   rec.FoodID,
			Quantity: rec.Quantity,
			Unit:     rec.Unit,
		}
	}

	var nutrition recipe.Nutrition
	if len(m.Nutrition) > 0 {
		if err := json.Unmarshal(m.Nutrition, &nutrition); err != nil {
			return nil, fmt.Errorf("unmarshal nutrition for recipe %s: %w", m.ID, err)
		}
	}

	restrictions := make(map[profile.ConditionTag]bool, len(m.Restrictions))
	for _, tag := range m.Restrictions {
		restrictions[profile.ConditionTag(tag)] = true
	}
	allergens := make([]profile.AllergenTag, len(m.Allergens))
	for i, a := range m.Allergens {
		allergens[i] = profile.AllergenTag(a)
	}

	category, _ := recipe.NormalizeCategory(m.Category)

	return &recipe.Recipe{
		ID:             m.ID,
		Name:           m.Name,
		Category:       category,
		Ingredients:    ingredients,
		TotalNutrition: nutrition,
		Servings:       m.Servings,
		Restrictions:   restrictions,
		Allergens:      allergens,
		Diets: recipe.DietFlags{
			Vegetarian: m.Vegetarian,
			Vegan:      m.Vegan,
		},
		IsActive: m.IsActive,
	}, nil
}

// PlanToModel converts a nutrition plan aggregate to a GORM model
func PlanToModel(p *plan.NutritionPlan) (*NutritionPlanModel, error) {
	goals, err := json.Marshal(p.Goals())
	if err != nil {
		return nil, fmt.Errorf("marshal goals: %w", err)
	}
	menus, err := json.Marshal(p.DailyMenus())
	if err != nil {
		return nil, fmt.Errorf("marshal daily menus: %w", err)
	}
	lists, err := json.Marshal(p.ShoppingLists())
	if err != nil {
		return nil, fmt.Errorf("marshal shopping lists: %w", err)
	}

	return &NutritionPlanModel{
		ID:            p.ID(),
		UserID:        p.UserID(),
		Goals:         JSONDocument(goals),
		DailyMenus:    JSONDocument(menus),
		ShoppingLists: JSONDocument(lists),
		Duration:      p.Duration(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		CreatedAt:     p.CreatedAt(),
	}, nil
}

// ModelToPlan converts a GORM model back to a nutrition plan aggregate
func ModelToPlan(m *NutritionPlanModel) (*plan.NutritionPlan, error) {
	var goals plan.NutritionalGoals
	if err := json.Unmarshal(m.Goals, &goals); err != nil {
		return nil, fmt.Errorf("unmarshal goals for plan %s: %w", m.ID, err)
	}
	var menus []plan.DailyMenu
	if err := json.Unmarshal(m.DailyMenus, &menus); err != nil {
		return nil, fmt.Errorf("unmarshal daily menus for plan %s: %w", m.ID, err)
	}
	var lists []plan.WeeklyShoppingList
	if len(m.ShoppingLists) > 0 {
		if err := json.Unmarshal(m.ShoppingLists, &lists); err != nil {
			return nil, fmt.Errorf("unmarshal shopping lists for plan %s: %w", m.ID, err)
		}
	}

	return plan.Restore(m.ID, m.UserID, goals, menus, lists, m.StartDate, m.EndDate, m.CreatedAt), nil
}
