package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the type of ledger entry
type TransactionKind string

const (
	KindCreated     TransactionKind = "created"
	KindDeposit     TransactionKind = "deposit"
	KindWithdrawal  TransactionKind = "withdrawal"
	KindTransferOut TransactionKind = "transfer_out"
	KindTransferIn  TransactionKind = "transfer_in"
	KindPINChange   TransactionKind = "pin_change"
)

// Label returns the human-readable name used on statements
func (k TransactionKind) Label() string {
	switch k {
	case KindCreated:
		return "Account Created"
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	case KindTransferOut:
		return "Transfer Out"
	case KindTransferIn:
		return "Transfer In"
	case KindPINChange:
		return "PIN Change"
	default:
		return string(k)
	}
}

// Transaction is a single entry in an account's ledger.
// Entries are immutable once appended; the ledger grows without bound.
type Transaction struct {
	ID     uuid.UUID       `json:"id"`
	Time   time.Time       `json:"time"`
	Kind   TransactionKind `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Remark string          `json:"remark,omitempty"`

	// BalanceAfter is the account balance recorded immediately after the
	// entry was applied.
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// NewTransaction stamps a ledger entry with a fresh id
func NewTransaction(at time.Time, kind TransactionKind, amount decimal.Decimal, remark string, balanceAfter decimal.Decimal) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Time:         at,
		Kind:         kind,
		Amount:       amount,
		Remark:       remark,
		BalanceAfter: balanceAfter,
	}
}
