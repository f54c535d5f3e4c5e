package booking

import "errors"

var (
	ErrSalonNotFound   = errors.New("salon not found")
	ErrMasterNotFound  = errors.New("master not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrApptNotFound    = errors.New("appointment not found")

	ErrMasterInactive    = errors.New("master is not active")
	ErrServiceInactive   = errors.New("service is not active")
	ErrServiceNotOffered = errors.New("master does not offer this service")
	ErrInvalidDate       = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidStart      = errors.New("start time must be formatted HH:MM")
	ErrInvalidStatus     = errors.New("unknown appointment status")
	ErrInvalidPrice      = errors.New("price must not be negative")

	// ErrOutOfHours rejects a slot outside the master's working window or
	// inside a break, including slots that would run past midnight.
	ErrOutOfHours = errors.New("requested time is outside working hours")

	// ErrSlotTaken rejects a slot overlapping a confirmed or completed
	// appointment.
	ErrSlotTaken = errors.New("requested slot is already taken")

	// ErrOutsideWindow rejects dates in the past or beyond the salon's
	// advance booking horizon.
	ErrOutsideWindow = errors.New("date is outside the booking window")

	// ErrIllegalTransition rejects state machine violations.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrUnavailable is returned when a booking could not be decided after
	// a retry; the caller may try again.
	ErrUnavailable = errors.New("booking temporarily unavailable, try again")
)
