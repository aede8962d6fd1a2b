package gorm

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/profile"
	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/test/testutils"
)

type MappersTestSuite struct {
	suite.Suite
}

func (suite *MappersTestSuite) TestFoodMapping() {
	suite.Run("RoundTrip_ShouldPreserveFood", func() {
		original := testutils.NewFoodFactory(1).Food("g")

		restored := ModelToFood(FoodToModel(original))

		assert.Equal(suite.T(), original, restored)
	})
}

func (suite *MappersTestSuite) TestRecipeMapping() {
	suite.Run("RoundTrip_ShouldPreserveRecipe", func() {
		// Arrange
		foodID := uuid.New()
		original := testutils.NewRecipeBuilder().
			WithName("Baked salmon").
			WithCategory(recipe.CategoryDinner).
			WithIngredients(recipe.Ingredient{FoodID: foodID, Quantity: 160, Unit: "g"}).
			WithRestriction(profile.ConditionHighCholesterol).
			WithAllergens("fish").
			WithDiets(recipe.DietFlags{Vegetarian: false, Vegan: false}).
			Build()

		// Act
		model, err := RecipeToModel(original)
		require.NoError(suite.T(), err)
		restored, err := ModelToRecipe(model)
		require.NoError(suite.T(), err)

		// Assert
		assert.Equal(suite.T(), original.ID, restored.ID)
		assert.Equal(suite.T(), original.Name, restored.Name)
		assert.Equal(suite.T(), original.Category, restored.Category)
		assert.Equal(suite.T(), original.Ingredients, restored.Ingredients)
		assert.Equal(suite.T(), original.TotalNutrition, restored.TotalNutrition)
		assert.Equal(suite.T(), original.Servings, restored.Servings)
		assert.Equal(suite.T(), original.Allergens, restored.Allergens)
		assert.Equal(suite.T(), original.Diets, restored.Diets)
		assert.True(suite.T(), restored.UnsafeFor(profile.ConditionHighCholesterol))
		assert.False(suite.T(), restored.UnsafeFor(profile.ConditionDiabetes))
	})

	suite.Run("LegacyCategoryAlias_ShouldNormalizeOnRead", func() {
		// Arrange
		model, err := RecipeToModel(testutils.NewRecipeBuilder().Build())
		require.NoError(suite.T(), err)
		model.Category = "almuerzo"

		// Act
		restored, err := ModelToRecipe(model)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), recipe.CategoryLunch, restored.Category)
	})

	suite.Run("OnlyUnsafeRestrictions_ShouldBePersisted", func() {
		r := testutils.NewRecipeBuilder().Build()
		r.Restrictions = map[profile.ConditionTag]bool{
			profile.ConditionDiabetes:     true,
			profile.ConditionHypertension: false,
		}

		model, err := RecipeToModel(r)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), StringSlice{"diabetes"}, model.Restrictions)
	})
}

func (suite *MappersTestSuite) TestPlanMapping() {
	suite.Run("RoundTrip_ShouldPreserveAggregate", func() {
		// Arrange
		startDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		goals := plan.NutritionalGoals{
			DailyCalories: 2100,
			ProteinG:      131,
			CarbsG:        236,
			FatG:          70,
			FiberG:        30,
			SodiumMg:      2300,
		}
		breakfast := plan.MealSlotSelection{
			RecipeID:   uuid.New(),
			RecipeName: "Oatmeal",
			Servings:   2,
			Nutrition:  plan.SlotNutrition{Calories: 900, ProteinG: 30, CarbsG: 120, FatG: 20},
		}
		menus := []plan.DailyMenu{{
			Day:            1,
			Date:           startDate,
			Meals:          plan.DayMeals{Breakfast: &breakfast, Snacks: []plan.MealSlotSelection{}},
			TotalNutrition: breakfast.Nutrition,
		}}
		lists := []plan.WeeklyShoppingList{{
			Week: 1,
			Items: []plan.ShoppingItem{{
				FoodID:        uuid.New(),
				FoodName:      "Rolled oats",
				TotalQuantity: 160,
				Unit:          "g",
				Category:      "grains",
			}},
		}}
		original, err := plan.NewNutritionPlan(uuid.New(), goals, menus, lists, startDate)
		require.NoError(suite.T(), err)

		// Act
		model, err := PlanToModel(original)
		require.NoError(suite.T(), err)
		restored, err := ModelToPlan(model)
		require.NoError(suite.T(), err)

		// Assert
		assert.Equal(suite.T(), original.ID(), restored.ID())
		assert.Equal(suite.T(), original.UserID(), restored.UserID())
		assert.Equal(suite.T(), original.Goals(), restored.Goals())
		assert.Equal(suite.T(), original.DailyMenus(), restored.DailyMenus())
		assert.Equal(suite.T(), original.ShoppingLists(), restored.ShoppingLists())
		assert.Equal(suite.T(), original.Duration(), restored.Duration())
		assert.Empty(suite.T(), restored.Events())
	})

	suite.Run("PersistedGoals_ShouldUseContractFieldNames", func() {
		// Arrange
		startDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		goals := plan.NutritionalGoals{DailyCalories: 2000, ProteinG: 125, CarbsG: 225, FatG: 67, FiberG: 30, SodiumMg: 2300}
		menus := []plan.DailyMenu{{Day: 1, Date: startDate, Meals: plan.DayMeals{Snacks: []plan.MealSlotSelection{}}}}
		p, err := plan.NewNutritionPlan(uuid.New(), goals, menus, nil, startDate)
		require.NoError(suite.T(), err)

		// Act
		model, err := PlanToModel(p)
		require.NoError(suite.T(), err)

		// Assert
		var raw map[string]json.RawMessage
		require.NoError(suite.T(), json.Unmarshal(model.Goals, &raw))
		for _, field := range []string{"dailyCalories", "proteinG", "carbsG", "fatG", "fiberG", "sodiumMg"} {
			assert.Contains(suite.T(), raw, field)
		}
	})
}

func TestMappersTestSuite(t *testing.T) {
	suite.Run(t, new(MappersTestSuite))
}
