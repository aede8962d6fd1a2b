package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserHealthProfileTestSuite struct {
	suite.Suite
}

func (suite *UserHealthProfileTestSuite) validProfile() *UserHealthProfile {
	return &UserHealthProfile{
		UserID:        uuid.New(),
		Age:           30,
		Gender:        GenderMale,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: ActivityModerate,
	}
}

func (suite *UserHealthProfileTestSuite) TestValidate() {
	suite.Run("ValidProfile_ShouldPass", func() {
		assert.NoError(suite.T(), suite.validProfile().Validate())
	})

	suite.Run("AgeOutOfRange_ShouldFail", func() {
		for _, age := range []int{0, -5, 131} {
			p := suite.validProfile()
			p.Age = age
			assert.ErrorIs(suite.T(), p.Validate(), ErrInvalidAge)
		}
	})

	suite.Run("NonPositiveWeight_ShouldFail", func() {
		p := suite.validProfile()
		p.WeightKg = 0
		assert.ErrorIs(suite.T(), p.Validate(), ErrInvalidWeight)
	})

	suite.Run("NonPositiveHeight_ShouldFail", func() {
		p := suite.validProfile()
		p.HeightCm = -1
		assert.ErrorIs(suite.T(), p.Validate(), ErrInvalidHeight)
	})

	suite.Run("UnknownGender_ShouldFail", func() {
		p := suite.validProfile()
		p.Gender = Gender("unspecified")
		assert.ErrorIs(suite.T(), p.Validate(), ErrUnknownGender)
	})

	suite.Run("UnknownActivityLevel_ShouldPass", func() {
		// An unrecognized level falls back to the sedentary multiplier
		// later, it is not a validation failure.
		p := suite.validProfile()
		p.ActivityLevel = ActivityLevel("astronaut")
		assert.NoError(suite.T(), p.Validate())
	})
}

func (suite *UserHealthProfileTestSuite) TestTagLookups() {
	suite.Run("HasCondition_ShouldMatchListedTags", func() {
		p := suite.validProfile()
		p.Conditions = []ConditionTag{ConditionDiabetes, ConditionHypertension}

		assert.True(suite.T(), p.HasCondition(ConditionDiabetes))
		assert.True(suite.T(), p.HasCondition(ConditionHypertension))
		assert.False(suite.T(), p.HasCondition(ConditionHighCholesterol))
	})

	suite.Run("HasGoal_ShouldMatchSelectedGoals", func() {
		p := suite.validProfile()
		p.Preferences.SelectedGoals = []GoalTag{GoalWeightLoss}

		assert.True(suite.T(), p.HasGoal(GoalWeightLoss))
		assert.False(suite.T(), p.HasGoal(GoalMuscleGain))
	})

	suite.Run("IsAllergicTo_ShouldMatchListedAllergens", func() {
		p := suite.validProfile()
		p.Allergies = []AllergenTag{"peanuts"}

		assert.True(suite.T(), p.IsAllergicTo("peanuts"))
		assert.False(suite.T(), p.IsAllergicTo("fish"))
	})
}

func (suite *UserHealthProfileTestSuite) TestSnapshot() {
	suite.Run("MutatingOriginal_ShouldNotAffectCopy", func() {
		// Arrange
		p := suite.validProfile()
		p.Conditions = []ConditionTag{ConditionDiabetes}
		p.Allergies = []AllergenTag{"peanuts"}
		p.Preferences.SelectedGoals = []GoalTag{GoalWeightLoss}

		// Act
		snap := p.Snapshot()
		p.Conditions[0] = ConditionCeliac
		p.Allergies[0] = "shellfish"
		p.Preferences.SelectedGoals[0] = GoalMuscleGain
		p.WeightKg = 90

		// Assert
		assert.Equal(suite.T(), []ConditionTag{ConditionDiabetes}, snap.Conditions)
		assert.Equal(suite.T(), []AllergenTag{"peanuts"}, snap.Allergies)
		assert.Equal(suite.T(), []GoalTag{GoalWeightLoss}, snap.Preferences.SelectedGoals)
		assert.Equal(suite.T(), 70.0, snap.WeightKg)
	})
}

func TestUserHealthProfileTestSuite(t *testing.T) {
	suite.Run(t, new(UserHealthProfileTestSuite))
}
