// Package bank implements the validated account operations: create,
// authenticate, deposit, withdraw, transfer, mini statement, and PIN change.
// Every mutation appends a ledger entry and persists the whole account table
// through the store before returning.
package bank

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/model"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/store"
)

// Service owns the in-memory account table and the store it is persisted to.
// It is single-user and fully synchronous: every operation runs to completion
// before the next one starts.
type Service struct {
	store    *store.Store
	accounts map[string]*model.Account
}

// NewService loads the account table from the store. A corrupt snapshot is
// unrecoverable and surfaces here.
func NewService(st *store.Store) (*Service, error) {
	accounts, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &Service{store: st, accounts: accounts}, nil
}

// Reload discards the in-memory table and re-reads it from the store.
// Called when a login session ends so the snapshot stays the sole source
// of truth.
func (s *Service) Reload() error {
	accounts, err := s.store.Load()
	if err != nil {
		return err
	}
	s.accounts = accounts
	return nil
}

// Empty reports whether the table has no accounts
func (s *Service) Empty() bool {
	return len(s.accounts) == 0
}

// Account returns the account with the given number
func (s *Service) Account(number string) (*model.Account, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return acct, nil
}

// CreateAccount opens a new account and records its opening ledger entry.
// The account number must be unused. The initial balance is raw text: empty
// means zero, anything else must parse to a non-negative amount.
func (s *Service) CreateAccount(req model.CreateAccountRequest) (*model.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.accounts[req.Number]; ok {
		return nil, model.ErrAccountExists
	}

	initial := decimal.Zero
	if text := strings.TrimSpace(req.InitialBalance); text != "" {
		amt, err := decimal.NewFromString(text)
		if err != nil || amt.IsNegative() {
			return nil, model.ErrInvalidAmount
		}
		initial = amt
	}

	acct := &model.Account{
		Number:     req.Number,
		HolderName: req.HolderName,
		PIN:        req.PIN,
		Balance:    initial,
	}
	acct.Transactions = append(acct.Transactions,
		model.NewTransaction(time.Now(), model.KindCreated, decimal.Zero, "Initial account setup", acct.Balance))
	s.accounts[acct.Number] = acct

	if err := s.persist(); err != nil {
		return nil, err
	}
	return acct, nil
}

// Authenticate checks an account number and PIN pair. There is no lockout and
// no retry limit. The comparison is constant-time, which does not change the
// accept/reject behavior.
func (s *Service) Authenticate(number, pin string) (*model.Account, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(acct.PIN), []byte(pin)) != 1 {
		return nil, model.ErrWrongPIN
	}
	return acct, nil
}

// Balance returns the current balance without mutating anything
func (s *Service) Balance(number string) (decimal.Decimal, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return decimal.Decimal{}, model.ErrAccountNotFound
	}
	return acct.Balance, nil
}

// Deposit adds a positive amount to the account balance
func (s *Service) Deposit(number, amountText string) (*model.Account, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	amt, err := parseAmount(amountText)
	if err != nil {
		return nil, err
	}

	acct.Balance = acct.Balance.Add(amt)
	acct.Transactions = append(acct.Transactions,
		model.NewTransaction(time.Now(), model.KindDeposit, amt, "Cash deposit", acct.Balance))

	if err := s.persist(); err != nil {
		return nil, err
	}
	return acct, nil
}

// Withdraw removes a positive amount from the account balance. The balance
// never goes negative: the funds check happens before any mutation.
func (s *Service) Withdraw(number, amountText string) (*model.Account, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	amt, err := parseAmount(amountText)
	if err != nil {
		return nil, err
	}
	if amt.GreaterThan(acct.Balance) {
		return nil, model.ErrInsufficientFunds
	}

	acct.Balance = acct.Balance.Sub(amt)
	acct.Transactions = append(acct.Transactions,
		model.NewTransaction(time.Now(), model.KindWithdrawal, amt, "Cash withdrawal", acct.Balance))

	if err := s.persist(); err != nil {
		return nil, err
	}
	return acct, nil
}

// Transfer moves an amount between two accounts: debit the source, credit the
// destination, and append one ledger entry per side. Both legs are applied in
// memory before the single persist; there is no rollback path if that write
// fails.
func (s *Service) Transfer(fromNumber, toNumber, amountText string) (*model.Account, error) {
	src, ok := s.accounts[fromNumber]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	dst, ok := s.accounts[toNumber]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	amt, err := parseAmount(amountText)
	if err != nil {
		return nil, err
	}
	if amt.GreaterThan(src.Balance) {
		return nil, model.ErrInsufficientFunds
	}

	src.Balance = src.Balance.Sub(amt)
	dst.Balance = dst.Balance.Add(amt)

	// Both legs share one timestamp: they are two sides of the same event.
	now := time.Now()
	src.Transactions = append(src.Transactions,
		model.NewTransaction(now, model.KindTransferOut, amt, "To "+toNumber, src.Balance))
	dst.Transactions = append(dst.Transactions,
		model.NewTransaction(now, model.KindTransferIn, amt, "From "+fromNumber, dst.Balance))

	if err := s.persist(); err != nil {
		return nil, err
	}
	return src, nil
}

// MiniStatement returns the last limit ledger entries, oldest first.
// A non-positive limit falls back to the default of 10.
func (s *Service) MiniStatement(number string, limit int) ([]model.Transaction, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	if limit <= 0 {
		limit = 10
	}

	start := len(acct.Transactions) - limit
	if start < 0 {
		start = 0
	}
	out := make([]model.Transaction, len(acct.Transactions)-start)
	copy(out, acct.Transactions[start:])
	return out, nil
}

// ChangePIN replaces the account PIN after verifying the current one, the
// confirmation, and the strength of the new PIN. Any violation leaves the
// stored PIN unchanged.
func (s *Service) ChangePIN(number string, req model.ChangePINRequest) error {
	acct, ok := s.accounts[number]
	if !ok {
		return model.ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(acct.PIN), []byte(req.Current)) != 1 {
		return model.ErrWrongPIN
	}
	if err := req.Validate(); err != nil {
		return err
	}

	acct.PIN = req.New
	acct.Transactions = append(acct.Transactions,
		model.NewTransaction(time.Now(), model.KindPINChange, decimal.Zero, "PIN updated", acct.Balance))

	return s.persist()
}

// persist writes the full account table back to the store
func (s *Service) persist() error {
	if err := s.store.Save(s.accounts); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

// parseAmount converts raw amount text into a positive decimal
func parseAmount(text string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || !amt.IsPositive() {
		return decimal.Decimal{}, model.ErrInvalidAmount
	}
	return amt, nil
}
