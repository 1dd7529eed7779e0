package groups

import "errors"

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrFriendNotFound = errors.New("friend not found")
	ErrAlreadyMember  = errors.New("friend already in group")
	ErrInvalidInput   = errors.New("invalid input")
)
