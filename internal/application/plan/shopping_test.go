package plan

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	domainplan "github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/infrastructure/persistence/memory"
	"github.com/nutriplan/v2/pkg/errors"
	"github.com/nutriplan/v2/test/testutils"
)

// ShoppingTestSuite covers weekly shopping list aggregation
type ShoppingTestSuite struct {
	suite.Suite

	flour *recipe.Food
	milk  *recipe.Food
}

func (suite *ShoppingTestSuite) SetupTest() {
	suite.flour = &recipe.Food{ID: uuid.New(), Name: "Flour", Unit: "g", Category: "grains"}
	suite.milk = &recipe.Food{ID: uuid.New(), Name: "Milk", Unit: "ml", Category: "dairy"}
}

// buildMenus assembles a horizon over a single breakfast recipe sized so
// every day selects exactly one serving.
func (suite *ShoppingTestSuite) buildMenus(r *recipe.Recipe, days int) []domainplan.DailyMenu {
	assembler := NewMenuAssembler([]*recipe.Recipe{r})
	menus, err := BuildHorizon(
		assembler,
		domainplan.NutritionalGoals{DailyCalories: 2000},
		days,
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(suite.T(), err)
	return menus
}

func (suite *ShoppingTestSuite) TestWeeklyLists() {
	suite.Run("TenDays_ShouldSplitIntoTwoWeeks", func() {
		// Arrange: 500 kcal breakfast matches the 25% slot of 2000 kcal,
		// so each day uses one serving of 100g flour.
		r := testutils.NewRecipeBuilder().
			WithCategory(recipe.CategoryBreakfast).
			WithCalories(500).
			WithIngredients(recipe.Ingredient{FoodID: suite.flour.ID, Quantity: 100, Unit: "g"}).
			Build()
		menus := suite.buildMenus(r, 10)
		aggregator := NewShoppingAggregator(memory.NewFoodCatalog(suite.flour))

		// Act
		lists, err := aggregator.WeeklyLists(context.Background(), menus, map[uuid.UUID]*recipe.Recipe{r.ID: r})

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), lists, 2)

		assert.Equal(suite.T(), 1, lists[0].Week)
		require.Len(suite.T(), lists[0].Items, 1)
		assert.Equal(suite.T(), 700.0, lists[0].Items[0].TotalQuantity) // days 1-7

		assert.Equal(suite.T(), 2, lists[1].Week)
		require.Len(suite.T(), lists[1].Items, 1)
		assert.Equal(suite.T(), 300.0, lists[1].Items[0].TotalQuantity) // days 8-10
	})

	suite.Run("Quantities_ShouldScaleWithServings", func() {
		// Arrange: 250 kcal batch against a 500 kcal slot doubles servings.
		r := testutils.NewRecipeBuilder().
			WithCategory(recipe.CategoryBreakfast).
			WithCalories(250).
			WithIngredients(recipe.Ingredient{FoodID: suite.flour.ID, Quantity: 100, Unit: "g"}).
			Build()
		menus := suite.buildMenus(r, 1)
		aggregator := NewShoppingAggregator(memory.NewFoodCatalog(suite.flour))

		// Act
		lists, err := aggregator.WeeklyLists(context.Background(), menus, map[uuid.UUID]*recipe.Recipe{r.ID: r})

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), lists, 1)
		require.Len(suite.T(), lists[0].Items, 1)
		assert.Equal(suite.T(), 200.0, lists[0].Items[0].TotalQuantity)
	})

	suite.Run("Items_ShouldUseCanonicalUnitAndFoodName", func() {
		r := testutils.NewRecipeBuilder().
			WithCategory(recipe.CategoryBreakfast).
			WithCalories(500).
			WithIngredients(
				recipe.Ingredient{FoodID: suite.milk.ID, Quantity: 250, Unit: "ml"},
				recipe.Ingredient{FoodID: suite.flour.ID, Quantity: 100, Unit: "g"},
			).
			Build()
		menus := suite.buildMenus(r, 1)
		aggregator := NewShoppingAggregator(memory.NewFoodCatalog(suite.flour, suite.milk))

		lists, err := aggregator.WeeklyLists(context.Background(), menus, map[uuid.UUID]*recipe.Recipe{r.ID: r})

		require.NoError(suite.T(), err)
		require.Len(suite.T(), lists, 1)
		require.Len(suite.T(), lists[0].Items, 2)

		// Sorted by food name
		assert.Equal(suite.T(), "Flour", lists[0].Items[0].FoodName)
		assert.Equal(suite.T(), "g", lists[0].Items[0].Unit)
		assert.Equal(suite.T(), "Milk", lists[0].Items[1].FoodName)
		assert.Equal(suite.T(), "ml", lists[0].Items[1].Unit)
	})

	suite.Run("MixedUnits_ShouldBeRejected", func() {
		// Arrange: ingredient expressed in cups against a gram-canonical food.
		r := testutils.NewRecipeBuilder().
			WithCategory(recipe.CategoryBreakfast).
			WithCalories(500).
			WithIngredients(recipe.Ingredient{FoodID: suite.flour.ID, Quantity: 2, Unit: "cup"}).
			Build()
		menus := suite.buildMenus(r, 1)
		aggregator := NewShoppingAggregator(memory.NewFoodCatalog(suite.flour))

		// Act
		lists, err := aggregator.WeeklyLists(context.Background(), menus, map[uuid.UUID]*recipe.Recipe{r.ID: r})

		// Assert
		assert.Nil(suite.T(), lists)
		assert.ErrorIs(suite.T(), err, domainplan.ErrMixedUnits)
		assert.True(suite.T(), errors.Is(err, errors.CodeMixedUnits))
		appErr := errors.Wrap(err, "")
		assert.Equal(suite.T(), http.StatusUnprocessableEntity, appErr.StatusCode())
	})

	suite.Run("UnresolvableFood_ShouldSurfaceCatalogUnavailable", func() {
		r := testutils.NewRecipeBuilder().
			WithCategory(recipe.CategoryBreakfast).
			WithCalories(500).
			WithIngredients(recipe.Ingredient{FoodID: uuid.New(), Quantity: 100, Unit: "g"}).
			Build()
		menus := suite.buildMenus(r, 1)
		aggregator := NewShoppingAggregator(memory.NewFoodCatalog())

		lists, err := aggregator.WeeklyLists(context.Background(), menus, map[uuid.UUID]*recipe.Recipe{r.ID: r})

		assert.Nil(suite.T(), lists)
		assert.True(suite.T(), errors.Is(err, errors.CodeCatalogUnavailable))
	})

	suite.Run("EmptyHorizon_ShouldReturnNothing", func() {
		aggregator := NewShoppingAggregator(memory.NewFoodCatalog())

		lists, err := aggregator.WeeklyLists(context.Background(), nil, nil)

		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), lists)
	})
}

func TestShoppingTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingTestSuite))
}
