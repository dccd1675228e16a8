package vendors

import "errors"

var (
	ErrNotFound = errors.New("vendor not found")
	ErrConflict = errors.New("email already belongs to another account")
)
