// Package plan provides the application layer of the nutrition plan
// generation engine: target calculation, eligibility filtering, menu
// assembly and shopping aggregation behind the inbound PlanService port.
package plan

import (
	"math"

	domainplan "github.com/nutriplan/v2/internal/domain/plan"
	"github.com/nutriplan/v2/internal/domain/profile"
)

// Energy and macro calculation. Pure arithmetic over validated inputs; the
// profile is rejected upstream if any numeric field is out of range.

// activityFactors maps activity levels to their TDEE multiplier. An
// unrecognized level falls back to the sedentary multiplier.
var activityFactors = map[profile.ActivityLevel]float64{
	profile.ActivitySedentary:  1.2,
	profile.ActivityLight:      1.375,
	profile.ActivityModerate:   1.55,
	profile.ActivityActive:     1.725,
	profile.ActivityVeryActive: 1.9,
}

const (
	defaultActivityFactor = 1.2

	weightLossDeficit  = 500
	muscleGainSurplus  = 300
	fiberTargetG       = 30
	sodiumDefaultMg    = 2300
	sodiumRestrictedMg = 1500
)

// CalculateBMR computes basal metabolic rate with the revised
// Harris–Benedict equations. Any gender other than male takes the female
// branch; that fallback is a documented compatibility default, not a
// heuristic.
func CalculateBMR(weightKg, heightCm float64, age int, gender profile.Gender) float64 {
	if gender == profile.GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// CalculateTDEE scales BMR by the activity factor.
func CalculateTDEE(bmr float64, level profile.ActivityLevel) float64 {
	factor, ok := activityFactors[level]
	if !ok {
		factor = defaultActivityFactor
	}
	return bmr * factor
}

// AdjustForGoals applies the calorie adjustment for the selected goal.
// Weight loss takes priority over muscle gain; the two never stack.
func AdjustForGoals(tdee float64, p *profile.UserHealthProfile) float64 {
	switch {
	case p.HasGoal(profile.GoalWeightLoss):
		return tdee - weightLossDeficit
	case p.HasGoal(profile.GoalMuscleGain):
		return tdee + muscleGainSurplus
	default:
		return tdee
	}
}

// macroSplit is a percentage split over daily calories.
type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

// macroRule overrides the split when its predicate matches the profile.
type macroRule struct {
	name    string
	applies func(p *profile.UserHealthProfile) bool
	split   macroSplit
}

// macroRules is the ordered override table. Rules are evaluated top to
// bottom and the last matching rule wins, so condition overrides take
// precedence over goal overrides, and the cholesterol rule over the
// diabetes rule when both conditions are present.
var macroRules = []macroRule{
	{
		name:    "muscle_gain",
		applies: func(p *profile.UserHealthProfile) bool { return p.HasGoal(profile.GoalMuscleGain) },
		split:   macroSplit{protein: 0.30, carbs: 0.40, fat: 0.30},
	},
	{
		name:    "weight_loss",
		applies: func(p *profile.UserHealthProfile) bool { return p.HasGoal(profile.GoalWeightLoss) },
		split:   macroSplit{protein: 0.30, carbs: 0.35, fat: 0.35},
	},
	{
		name:    "diabetes",
		applies: func(p *profile.UserHealthProfile) bool { return p.HasCondition(profile.ConditionDiabetes) },
		split:   macroSplit{protein: 0.30, carbs: 0.35, fat: 0.35},
	},
	{
		name:    "high_cholesterol",
		applies: func(p *profile.UserHealthProfile) bool { return p.HasCondition(profile.ConditionHighCholesterol) },
		split:   macroSplit{protein: 0.30, carbs: 0.45, fat: 0.25},
	},
}

var defaultMacroSplit = macroSplit{protein: 0.25, carbs: 0.45, fat: 0.30}

// resolveMacroSplit walks the override table in order.
func resolveMacroSplit(p *profile.UserHealthProfile) macroSplit {
	split := defaultMacroSplit
	for _, rule := range macroRules {
		if rule.applies(p) {
			split = rule.split
		}
	}
	return split
}

// CalculateGoals derives the full daily target block for a profile:
// BMR → TDEE → goal adjustment → macro gram conversion at 4/4/9 kcal per
// gram, plus the fixed fiber target and the condition-dependent sodium cap.
func CalculateGoals(p *profile.UserHealthProfile) domainplan.NutritionalGoals {
	bmr := CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := CalculateTDEE(bmr, p.ActivityLevel)
	calories := int(math.Round(AdjustForGoals(tdee, p)))

	split := resolveMacroSplit(p)

	sodium := sodiumDefaultMg
	if p.HasCondition(profile.ConditionHypertension) {
		sodium = sodiumRestrictedMg
	}

	return domainplan.NutritionalGoals{
		DailyCalories: calories,
		ProteinG:      math.Round(float64(calories) * split.protein / 4),
		CarbsG:        math.Round(float64(calories) * split.carbs / 4),
		FatG:          math.Round(float64(calories) * split.fat / 9),
		FiberG:        fiberTargetG,
		SodiumMg:      sodium,
	}
}
