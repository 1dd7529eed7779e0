package expenses

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrReferenceNotFound means the group or friend an expense points at
	// does not exist.
	ErrReferenceNotFound = errors.New("group or friend not found")
)
