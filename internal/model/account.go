package model

import (
	"github.com/shopspring/decimal"
)

// Account represents a single ATM account: identity, credential, balance, and
// the account's transaction ledger.
type Account struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`

	// PIN is stored and compared in plain text; the snapshot file is the
	// credential store.
	PIN string `json:"pin"`

	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

// CreateAccountRequest is the payload for opening a new account
type CreateAccountRequest struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	PIN        string `json:"pin"`

	// InitialBalance is the raw amount text typed by the user.
	// Empty means zero.
	InitialBalance string `json:"initial_balance"`
}

// Validate checks if the create request is valid.
// PIN strength is deliberately not checked at creation time; only
// ChangePINRequest enforces it.
func (r CreateAccountRequest) Validate() error {
	if r.Number == "" {
		return ErrNumberRequired
	}
	if r.HolderName == "" {
		return ErrHolderNameRequired
	}
	if r.PIN == "" {
		return ErrPINRequired
	}
	return nil
}

// ChangePINRequest is the payload for replacing an account's PIN
type ChangePINRequest struct {
	Current string
	New     string
	Confirm string
}

// Validate checks confirmation and strength of the new PIN.
// Matching the current PIN against the stored one happens in the service,
// which owns the account.
func (r ChangePINRequest) Validate() error {
	if r.New != r.Confirm {
		return ErrPINMismatch
	}
	if !isValidPIN(r.New) {
		return ErrWeakPIN
	}
	return nil
}

// isValidPIN checks PIN strength
// Requires: 4+ characters, digits only
func isValidPIN(pin string) bool {
	if len(pin) < 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
