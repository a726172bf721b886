package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotApproved = errors.New("account is not approved")
	ErrAlreadyApproved    = errors.New("account already approved")
	ErrForbidden          = errors.New("forbidden")
)

// Ошибки ресурсов
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Ошибки покупок
var (
	ErrInvalidStatus     = errors.New("invalid purchase status")
	ErrIncompleteProduct = errors.New("product selection is incomplete")
)

// Ошибки ввода
var (
	ErrInvalidDongHo         = errors.New("dong/ho must look like '123동 456호'")
	ErrInvalidBusinessNumber = errors.New("invalid business registration number")
)
