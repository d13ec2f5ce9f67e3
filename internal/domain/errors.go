package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrPermission     = errors.New("permission denied")
	ErrInvalidState   = errors.New("invalid state")
	ErrValidation     = errors.New("validation failed")
	ErrAlreadyStarted = errors.New("solution already started")
	ErrEmailTaken     = errors.New("email already in use")
	ErrInvalidEmail   = errors.New("no account with this email")
	ErrRoleMismatch   = errors.New("account role mismatch")
)
