package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("already exists")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrForbidden              = errors.New("forbidden")
)

// ErrInvalidCredentials is the single failure returned for any rejected
// password login, whatever the underlying cause.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
