package services

import "errors"

// Lifecycle errors. Every operation that returns one of these leaves the
// collections unchanged.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateMatch = errors.New("match id already exists")
	ErrAnonymous      = errors.New("no authenticated user")
)
