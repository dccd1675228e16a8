package subscriptions

import "errors"

var (
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrInvalidAssignment = errors.New("invalid assignment")
	ErrInvalidTransition = errors.New("invalid status transition")
)
