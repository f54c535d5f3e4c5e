package salon

import "errors"

var (
	ErrSalonNotFound   = errors.New("salon not found")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrInvalidSchedule = errors.New("invalid work hours")
)
