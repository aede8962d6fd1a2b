package profile

import "errors"

// Validation errors for profile inputs. These are surfaced before any
// calculation runs; a profile that fails validation produces no plan.

var (
	ErrInvalidAge    = errors.New("profile age must be between 1 and 130")
	ErrInvalidWeight = errors.New("profile weight must be greater than 0 kg")
	ErrInvalidHeight = errors.New("profile height must be greater than 0 cm")
	ErrUnknownGender = errors.New("profile gender must be male or female")
)
