package domain

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidID         = errors.New("invalid id")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrTaskNotFound      = errors.New("task not found")
	ErrBinEntryNotFound  = errors.New("bin entry not found")
	ErrInvalidCode       = errors.New("invalid otp code")
	ErrCodeExpired       = errors.New("otp code expired")
	ErrRateLimited       = errors.New("too many otp requests")
	ErrSessionNotFound   = errors.New("session not found")
	ErrChallengeNotFound = errors.New("otp challenge not found")
	ErrUnavailable       = errors.New("store unavailable")
)
