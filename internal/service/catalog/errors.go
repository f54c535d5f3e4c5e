package catalog

import "errors"

var (
	ErrMasterNotFound   = errors.New("master not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrInvalidSchedule  = errors.New("invalid work schedule")
	ErrUnknownServiceID = errors.New("one or more service ids do not exist in this salon")
)
