package domain

import "errors"

var (
	ErrInvalidPlan  = errors.New("invalid plan")
	ErrInvalidColor = errors.New("primary color must be a hex color")
)
