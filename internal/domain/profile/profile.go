// Package profile contains the user health profile consumed by the plan
// generation engine. The profile is an externally owned snapshot: the engine
// never mutates it and takes a defensive copy before a generation run.
package profile

import (
	"github.com/google/uuid"
)

// Gender identifies which basal metabolic rate formula applies.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales basal metabolic rate into total daily expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ConditionTag marks a medical condition that constrains both the macro split
// and which recipes are safe to serve.
type ConditionTag string

const (
	ConditionDiabetes        ConditionTag = "diabetes"
	ConditionHypertension    ConditionTag = "hypertension"
	ConditionHighCholesterol ConditionTag = "high_cholesterol"
	ConditionCeliac          ConditionTag = "celiac"
)

// AllergenTag identifies an allergen ("gluten", "peanut", "shellfish", ...).
// The tag vocabulary is owned by the recipe catalog; the engine only matches
// tags for equality.
type AllergenTag string

// GoalTag identifies a nutritional goal selected during onboarding.
type GoalTag string

const (
	GoalWeightLoss GoalTag = "weight_loss"
	GoalMuscleGain GoalTag = "muscle_gain"
)

// Preferences holds the dietary choices from the onboarding questionnaire.
type Preferences struct {
	Vegetarian    bool      `json:"vegetarian"`
	Vegan         bool      `json:"vegan"`
	SelectedGoals []GoalTag `json:"selectedGoals"`
	Dislikes      []string  `json:"dislikes"`
	Favorites     []string  `json:"favorites"`
}

// UserHealthProfile is the biometric and lifestyle input to plan generation.
type UserHealthProfile struct {
	UserID        uuid.UUID      `json:"userId"`
	Age           int            `json:"age"`
	Gender        Gender         `json:"gender"`
	WeightKg      float64        `json:"weightKg"`
	HeightCm      float64        `json:"heightCm"`
	ActivityLevel ActivityLevel  `json:"activityLevel"`
	Conditions    []ConditionTag `json:"conditions"`
	Allergies     []AllergenTag  `json:"allergies"`
	Preferences   Preferences    `json:"preferences"`
}

// Validate checks the numeric and enum inputs the calculator depends on.
// Activity level is deliberately not rejected here: an unrecognized level
// falls back to the sedentary multiplier during calculation.
func (p *UserHealthProfile) Validate() error {
	if p.Age <= 0 || p.Age > 130 {
		return ErrInvalidAge
	}
	if p.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if p.HeightCm <= 0 {
		return ErrInvalidHeight
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return ErrUnknownGender
	}
	return nil
}

// HasCondition reports whether the profile carries the given condition.
func (p *UserHealthProfile) HasCondition(c ConditionTag) bool {
	for _, tag := range p.Conditions {
		if tag == c {
			return true
		}
	}
	return false
}

// HasGoal reports whether the profile carries the given goal.
func (p *UserHealthProfile) HasGoal(g GoalTag) bool {
	for _, tag := range p.Preferences.SelectedGoals {
		if tag == g {
			return true
		}
	}
	return false
}

// IsAllergicTo reports whether the profile lists the given allergen.
func (p *UserHealthProfile) IsAllergicTo(a AllergenTag) bool {
	for _, tag := range p.Allergies {
		if tag == a {
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy of the profile. Generation runs against the
// copy, so callers mutating their profile mid-call cannot skew the result.
func (p *UserHealthProfile) Snapshot() *UserHealthProfile {
	cp := *p
	cp.Conditions = append([]ConditionTag(nil), p.Conditions...)
	cp.Allergies = append([]AllergenTag(nil), p.Allergies...)
	cp.Preferences.SelectedGoals = append([]GoalTag(nil), p.Preferences.SelectedGoals...)
	cp.Preferences.Dislikes = append([]string(nil), p.Preferences.Dislikes...)
	cp.Preferences.Favorites = append([]string(nil), p.Preferences.Favorites...)
	return &cp
}
