package domain

import "errors"

var (
	ErrFeatureNotFound    = errors.New("feature not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be less than 100 characters")
	ErrDescriptionMissing = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description must be less than 1000 characters")
	ErrInvalidFeatureType = errors.New("invalid feature type")
	ErrInvalidPageToken   = errors.New("invalid page token")
	ErrQuotaExceeded      = errors.New("feature quota exceeded for current plan")
)
