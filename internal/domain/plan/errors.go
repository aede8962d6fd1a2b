package plan

import "errors"

// Domain errors for plan generation.

var (
	// ErrInsufficientRecipes is returned when fewer than the minimum number
	// of recipes survive eligibility filtering. Retrying with the same
	// profile and catalog yields the same result, so callers must not retry.
	ErrInsufficientRecipes = errors.New("not enough recipes match the profile to build a plan")

	// ErrInvalidDuration is returned for non-positive plan horizons.
	ErrInvalidDuration = errors.New("plan duration must be at least 1 day")

	// ErrMixedUnits is returned when one food appears in incompatible units
	// within a shopping week; summing across units would be meaningless.
	ErrMixedUnits = errors.New("shopping aggregation found mixed units for one food")

	ErrEmptyHorizon    = errors.New("plan must contain at least one daily menu")
	ErrInvalidGoals    = errors.New("plan goals must carry a positive calorie target")
	ErrMisnumberedDays = errors.New("daily menus must be numbered 1..duration with no gaps")

	// ErrPlanNotFound is returned by repositories when no plan matches.
	ErrPlanNotFound = errors.New("nutrition plan not found")
)
