package model

import "errors"

var (
	// Account errors
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNumberRequired     = errors.New("account number is required")
	ErrHolderNameRequired = errors.New("holder name is required")

	// Operation errors
	ErrInvalidAmount     = errors.New("invalid amount: must be a positive number")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// PIN errors
	ErrWrongPIN    = errors.New("incorrect PIN")
	ErrPINMismatch = errors.New("PIN confirmation does not match")
	ErrWeakPIN     = errors.New("PIN must be numeric and at least 4 digits")
	ErrPINRequired = errors.New("PIN is required")
)
