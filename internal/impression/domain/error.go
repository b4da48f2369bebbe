package domain

import "errors"

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidType         = errors.New("invalid impression type, must be 'view' or 'click'")
	ErrFeatureUnauthorized = errors.New("invalid feature or unauthorized")
	ErrTrackingFailed      = errors.New("failed to track impression")
	ErrInvalidWindow       = errors.New("days must be 7, 30 or 90")
)
