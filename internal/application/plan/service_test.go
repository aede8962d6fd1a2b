package plan

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/nutriplan/v2/internal/domain/profile"
	"github.com/nutriplan/v2/internal/domain/recipe"
	"github.com/nutriplan/v2/internal/infrastructure/persistence/memory"
	"github.com/nutriplan/v2/internal/ports/inbound"
	"github.com/nutriplan/v2/pkg/errors"
	"github.com/nutriplan/v2/test/testutils"
)

// ServiceTestSuite runs the generation use case end to end against the
// in-memory adapters.
type ServiceTestSuite struct {
	suite.Suite

	foods   *memory.FoodCatalog
	recipes *memory.RecipeCatalog
	plans   *memory.PlanRepository
	service inbound.PlanService
}

func (suite *ServiceTestSuite) SetupTest() {
	oats := &recipe.Food{ID: uuid.New(), Name: "Oats", Unit: "g", Category: "grains"}
	chicken := &recipe.Food{ID: uuid.New(), Name: "Chicken", Unit: "g", Category: "meat"}
	salmon := &recipe.Food{ID: uuid.New(), Name: "Salmon", Unit: "g", Category: "fish"}
	yogurt := &recipe.Food{ID: uuid.New(), Name: "Yogurt", Unit: "g", Category: "dairy"}
	suite.foods = memory.NewFoodCatalog(oats, chicken, salmon, yogurt)

	suite.recipes = memory.NewRecipeCatalog(
		testutils.NewRecipeBuilder().
			WithName("Oatmeal").
			WithCategory(recipe.CategoryBreakfast).
			WithCalories(450).
			WithIngredients(recipe.Ingredient{FoodID: oats.ID, Quantity: 80, Unit: "g"}).
			Build(),
		testutils.NewRecipeBuilder().
			WithName("Chicken bowl").
			WithCategory(recipe.CategoryLunch).
			WithCalories(650).
			WithIngredients(recipe.Ingredient{FoodID: chicken.ID, Quantity: 180, Unit: "g"}).
			Build(),
		testutils.NewRecipeBuilder().
			WithName("Baked salmon").
			WithCategory(recipe.CategoryDinner).
			WithCalories(550).
			WithIngredients(recipe.Ingredient{FoodID: salmon.ID, Quantity: 160, Unit: "g"}).
			Build(),
		testutils.NewRecipeBuilder().
			WithName("Yogurt cup").
			WithCategory(recipe.CategorySnack).
			WithCalories(200).
			WithIngredients(recipe.Ingredient{FoodID: yogurt.ID, Quantity: 170, Unit: "g"}).
			Build(),
	)

	suite.plans = memory.NewPlanRepository().(*memory.PlanRepository)
	suite.service = NewPlanService(
		suite.recipes,
		suite.foods,
		suite.plans,
		memory.NewCacheRepository(),
		nil,
		30,
		zap.NewNop(),
	)
}

func (suite *ServiceTestSuite) command() inbound.GeneratePlanCommand {
	return inbound.GeneratePlanCommand{
		UserID:        uuid.New(),
		Age:           30,
		Gender:        profile.GenderMale,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: profile.ActivityModerate,
	}
}

func (suite *ServiceTestSuite) TestGeneratePlan() {
	suite.Run("DefaultDuration_ShouldProduceThirtyDayPlan", func() {
		// Act
		plan, err := suite.service.GeneratePlan(context.Background(), suite.command())

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), plan)

		assert.Equal(suite.T(), 30, plan.Duration)
		require.Len(suite.T(), plan.DailyMenus, 30)
		for i, menu := range plan.DailyMenus {
			assert.Equal(suite.T(), i+1, menu.Day)
			require.NotNil(suite.T(), menu.Meals.Breakfast)
			require.NotNil(suite.T(), menu.Meals.Lunch)
			require.NotNil(suite.T(), menu.Meals.Dinner)
			require.Len(suite.T(), menu.Meals.Snacks, 1)
		}

		// 30 days span five 7-day windows
		assert.Len(suite.T(), plan.WeeklyShoppingLists, 5)
		assert.Equal(suite.T(), plan.StartDate.AddDate(0, 0, 30), plan.EndDate)
		assert.Positive(suite.T(), plan.NutritionalGoals.DailyCalories)
	})

	suite.Run("TenDays_ShouldProduceTwoShoppingWeeks", func() {
		// Arrange
		cmd := suite.command()
		cmd.DurationDays = 10

		// Act
		plan, err := suite.service.GeneratePlan(context.Background(), cmd)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), plan.WeeklyShoppingLists, 2)
		assert.Equal(suite.T(), 1, plan.WeeklyShoppingLists[0].Week)
		assert.Equal(suite.T(), 2, plan.WeeklyShoppingLists[1].Week)
	})

	suite.Run("GeneratedPlan_ShouldBePersisted", func() {
		cmd := suite.command()

		plan, err := suite.service.GeneratePlan(context.Background(), cmd)
		require.NoError(suite.T(), err)

		stored, err := suite.plans.FindByID(context.Background(), plan.ID)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), cmd.UserID, stored.UserID())
		assert.Equal(suite.T(), plan.NutritionalGoals, stored.Goals())
	})

	suite.Run("InvalidProfile_ShouldFailBeforeGeneration", func() {
		// Arrange
		cmd := suite.command()
		cmd.Age = 0

		// Act
		plan, err := suite.service.GeneratePlan(context.Background(), cmd)

		// Assert
		assert.Nil(suite.T(), plan)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidProfile))
	})

	suite.Run("UnknownGender_ShouldBeRejected", func() {
		cmd := suite.command()
		cmd.Gender = profile.Gender("other")

		plan, err := suite.service.GeneratePlan(context.Background(), cmd)

		assert.Nil(suite.T(), plan)
		assert.True(suite.T(), errors.Is(err, errors.CodeInvalidProfile))
	})

	suite.Run("ThinCatalog_ShouldFailWithoutPartialOutput", func() {
		// Arrange: allergy to everything leaves three eligible recipes.
		cmd := suite.command()
		cmd.Allergies = []profile.AllergenTag{"lactose"}
		dairy := testutils.NewRecipeBuilder().
			WithCategory(recipe.CategorySnack).
			WithAllergens("lactose").
			Build()
		recipes := memory.NewRecipeCatalog(dairy,
			testutils.NewRecipeBuilder().WithCategory(recipe.CategoryBreakfast).Build(),
			testutils.NewRecipeBuilder().WithCategory(recipe.CategoryLunch).Build(),
			testutils.NewRecipeBuilder().WithCategory(recipe.CategoryDinner).Build(),
		)
		plans := memory.NewPlanRepository().(*memory.PlanRepository)
		service := NewPlanService(recipes, suite.foods, plans, memory.NewCacheRepository(), nil, 30, zap.NewNop())

		// Act
		plan, err := service.GeneratePlan(context.Background(), cmd)

		// Assert
		assert.Nil(suite.T(), plan)
		assert.True(suite.T(), errors.Is(err, errors.CodeInsufficientRecipes))

		stored, err := plans.FindByUserID(context.Background(), cmd.UserID, 10)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), stored)
	})
}

func (suite *ServiceTestSuite) TestQueries() {
	suite.Run("GetPlanByID_ShouldRoundTrip", func() {
		generated, err := suite.service.GeneratePlan(context.Background(), suite.command())
		require.NoError(suite.T(), err)

		fetched, err := suite.service.GetPlanByID(context.Background(), generated.ID)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), generated.ID, fetched.ID)
		assert.Equal(suite.T(), generated.NutritionalGoals, fetched.NutritionalGoals)
		assert.Len(suite.T(), fetched.DailyMenus, len(generated.DailyMenus))
	})

	suite.Run("GetPlanByID_UnknownID_ShouldReturnNotFound", func() {
		fetched, err := suite.service.GetPlanByID(context.Background(), uuid.New())

		assert.Nil(suite.T(), fetched)
		assert.True(suite.T(), errors.Is(err, errors.CodePlanNotFound))
	})

	suite.Run("GetPlansByUser_ShouldListOwnPlansOnly", func() {
		cmd := suite.command()
		_, err := suite.service.GeneratePlan(context.Background(), cmd)
		require.NoError(suite.T(), err)

		other := suite.command()
		_, err = suite.service.GeneratePlan(context.Background(), other)
		require.NoError(suite.T(), err)

		plans, err := suite.service.GetPlansByUser(context.Background(), cmd.UserID, 10)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), plans, 1)
		assert.Equal(suite.T(), cmd.UserID, plans[0].UserID)
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
