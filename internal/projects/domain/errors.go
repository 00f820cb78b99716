package domain

import "errors"

var (
	ErrNotFound            = errors.New("project not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
)

// IsValidationError reports whether err is a pre-persistence validation
// failure rather than a store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrDescriptionRequired)
}
