package service

import (
	"errors"
)

// Ошибки ввода
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
	ErrConsentRequired     = errors.New("personal info agreement is required")
	ErrInvalidHousehold    = errors.New("household count must be a non-negative number")
	ErrSessionWithoutScope = errors.New("session has no business")
)
