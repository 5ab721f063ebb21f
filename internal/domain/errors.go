package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrSelfParticipation    = errors.New("organizer cannot participate in own event")
	ErrEventFull            = errors.New("event is already full")
	ErrAlreadyParticipating = errors.New("user is already participating in this event")
	ErrNotParticipating     = errors.New("user is not participating in this event")
	ErrForbidden            = errors.New("only the organizer may perform this action")
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var ErrValidation = errors.New("validation error")

// FieldErrors collects per-field validation messages for a single
// request. Unwraps to ErrValidation so handleError can match it.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string { return ErrValidation.Error() }

func (e *FieldErrors) Unwrap() error { return ErrValidation }
