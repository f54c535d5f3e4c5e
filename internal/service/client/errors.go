package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrNameRequired   = errors.New("client name is required")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrPhoneTaken     = errors.New("a client with this phone already exists")
)
