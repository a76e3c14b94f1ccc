package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrPinMismatch             = errors.New("pin_mismatch")
	ErrNotFound                = errors.New("not_found")
	ErrConflict                = errors.New("conflict")
	ErrForbidden               = errors.New("forbidden")
)
