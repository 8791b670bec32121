package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidToken indicates the session token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)
