package plan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type NutritionPlanTestSuite struct {
	suite.Suite

	userID    uuid.UUID
	goals     NutritionalGoals
	startDate time.Time
}

func (suite *NutritionPlanTestSuite) SetupTest() {
	suite.userID = uuid.New()
	suite.goals = NutritionalGoals{
		DailyCalories: 2100,
		ProteinG:      131,
		CarbsG:        236,
		FatG:          70,
		FiberG:        30,
		SodiumMg:      2300,
	}
	suite.startDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func (suite *NutritionPlanTestSuite) menus(days int) []DailyMenu {
	menus := make([]DailyMenu, 0, days)
	for day := 1; day <= days; day++ {
		menus = append(menus, DailyMenu{
			Day:  day,
			Date: suite.startDate.AddDate(0, 0, day-1),
			Meals: DayMeals{
				Breakfast: &MealSlotSelection{
					RecipeID:   uuid.New(),
					RecipeName: "Oatmeal",
					Servings:   1,
					Nutrition:  SlotNutrition{Calories: 450, ProteinG: 15, CarbsG: 60, FatG: 10},
				},
				Snacks: []MealSlotSelection{},
			},
			TotalNutrition: SlotNutrition{Calories: 450, ProteinG: 15, CarbsG: 60, FatG: 10},
		})
	}
	return menus
}

func (suite *NutritionPlanTestSuite) TestNewNutritionPlan() {
	suite.Run("ValidInput_ShouldBuildAggregate", func() {
		// Act
		p, err := NewNutritionPlan(suite.userID, suite.goals, suite.menus(7), nil, suite.startDate)

		// Assert
		require.NoError(suite.T(), err)
		assert.NotEqual(suite.T(), uuid.Nil, p.ID())
		assert.Equal(suite.T(), suite.userID, p.UserID())
		assert.Equal(suite.T(), suite.goals, p.Goals())
		assert.Equal(suite.T(), 7, p.Duration())
		assert.Equal(suite.T(), suite.startDate, p.StartDate())
	})

	suite.Run("EndDate_ShouldBeStartPlusDuration", func() {
		p, err := NewNutritionPlan(suite.userID, suite.goals, suite.menus(10), nil, suite.startDate)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), suite.startDate.AddDate(0, 0, 10), p.EndDate())
	})

	suite.Run("EmptyHorizon_ShouldBeRejected", func() {
		p, err := NewNutritionPlan(suite.userID, suite.goals, nil, nil, suite.startDate)

		assert.Nil(suite.T(), p)
		assert.ErrorIs(suite.T(), err, ErrEmptyHorizon)
	})

	suite.Run("NonPositiveCalories_ShouldBeRejected", func() {
		p, err := NewNutritionPlan(suite.userID, NutritionalGoals{}, suite.menus(7), nil, suite.startDate)

		assert.Nil(suite.T(), p)
		assert.ErrorIs(suite.T(), err, ErrInvalidGoals)
	})

	suite.Run("GapInDayNumbering_ShouldBeRejected", func() {
		// Arrange
		menus := suite.menus(7)
		menus[3].Day = 9

		// Act
		p, err := NewNutritionPlan(suite.userID, suite.goals, menus, nil, suite.startDate)

		// Assert
		assert.Nil(suite.T(), p)
		assert.ErrorIs(suite.T(), err, ErrMisnumberedDays)
	})

	suite.Run("Construction_ShouldRaiseGeneratedEvent", func() {
		p, err := NewNutritionPlan(suite.userID, suite.goals, suite.menus(7), nil, suite.startDate)

		require.NoError(suite.T(), err)
		events := p.Events()
		require.Len(suite.T(), events, 1)

		event, ok := events[0].(PlanGeneratedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), p.ID(), event.PlanID)
		assert.Equal(suite.T(), suite.userID, event.UserID)
		assert.Equal(suite.T(), 7, event.Duration)
		assert.Equal(suite.T(), "plan.generated", event.EventName())
	})
}

func (suite *NutritionPlanTestSuite) TestRestore() {
	suite.Run("RestoredAggregate_ShouldRaiseNoEvents", func() {
		// Arrange
		id := uuid.New()
		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		// Act
		p := Restore(id, suite.userID, suite.goals, suite.menus(7), nil,
			suite.startDate, suite.startDate.AddDate(0, 0, 7), created)

		// Assert
		assert.Empty(suite.T(), p.Events())
		assert.Equal(suite.T(), id, p.ID())
		assert.Equal(suite.T(), 7, p.Duration())
		assert.Equal(suite.T(), created, p.CreatedAt())
	})
}

func (suite *NutritionPlanTestSuite) TestDayMealsSelections() {
	suite.Run("NilSlots_ShouldBeSkipped", func() {
		lunch := MealSlotSelection{RecipeID: uuid.New(), RecipeName: "Chicken bowl", Servings: 1}
		snack := MealSlotSelection{RecipeID: uuid.New(), RecipeName: "Yogurt cup", Servings: 1}
		meals := DayMeals{Lunch: &lunch, Snacks: []MealSlotSelection{snack}}

		selections := meals.Selections()

		require.Len(suite.T(), selections, 2)
		assert.Equal(suite.T(), "Chicken bowl", selections[0].RecipeName)
		assert.Equal(suite.T(), "Yogurt cup", selections[1].RecipeName)
	})
}

func TestNutritionPlanTestSuite(t *testing.T) {
	suite.Run(t, new(NutritionPlanTestSuite))
}
