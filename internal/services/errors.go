package services

import "errors"

var (
	// ErrValidation is returned for an empty required field, an unknown
	// enum value, or an empty cart on order placement.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned where a positive (or, for the cash
	// override, non-negative) amount is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
