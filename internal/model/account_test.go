package model

import (
	"testing"
)

func TestCreateAccountRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateAccountRequest
		wantErr error
	}{
		{
			name: "valid request",
			request: CreateAccountRequest{
				Number:     "1001",
				HolderName: "Alice",
				PIN:        "1234",
			},
			wantErr: nil,
		},
		{
			name: "short PIN allowed at creation",
			request: CreateAccountRequest{
				Number:     "1001",
				HolderName: "Alice",
				PIN:        "12",
			},
			wantErr: nil,
		},
		{
			name: "missing number",
			request: CreateAccountRequest{
				HolderName: "Alice",
				PIN:        "1234",
			},
			wantErr: ErrNumberRequired,
		},
		{
			name: "missing holder name",
			request: CreateAccountRequest{
				Number: "1001",
				PIN:    "1234",
			},
			wantErr: ErrHolderNameRequired,
		},
		{
			name: "missing PIN",
			request: CreateAccountRequest{
				Number:     "1001",
				HolderName: "Alice",
			},
			wantErr: ErrPINRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChangePINRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ChangePINRequest
		wantErr error
	}{
		{
			name:    "valid change",
			request: ChangePINRequest{Current: "1234", New: "4321", Confirm: "4321"},
			wantErr: nil,
		},
		{
			name:    "long numeric PIN",
			request: ChangePINRequest{Current: "1234", New: "987654", Confirm: "987654"},
			wantErr: nil,
		},
		{
			name:    "confirmation mismatch",
			request: ChangePINRequest{Current: "1234", New: "4321", Confirm: "4322"},
			wantErr: ErrPINMismatch,
		},
		{
			name:    "too short",
			request: ChangePINRequest{Current: "1234", New: "123", Confirm: "123"},
			wantErr: ErrWeakPIN,
		},
		{
			name:    "non-numeric",
			request: ChangePINRequest{Current: "1234", New: "12ab", Confirm: "12ab"},
			wantErr: ErrWeakPIN,
		},
		{
			name:    "empty new PIN",
			request: ChangePINRequest{Current: "1234", New: "", Confirm: ""},
			wantErr: ErrWeakPIN,
		},
		{
			name: "mismatch reported before weakness",
			// Both rules are violated; the confirmation check wins.
			request: ChangePINRequest{Current: "1234", New: "ab", Confirm: "cd"},
			wantErr: ErrPINMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransactionKind_Labels(t *testing.T) {
	labels := map[TransactionKind]string{
		KindCreated:     "Account Created",
		KindDeposit:     "Deposit",
		KindWithdrawal:  "Withdrawal",
		KindTransferOut: "Transfer Out",
		KindTransferIn:  "Transfer In",
		KindPINChange:   "PIN Change",
	}

	for kind, want := range labels {
		if got := kind.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", kind, got, want)
		}
	}

	// Unknown kinds fall back to the raw value
	if got := TransactionKind("mystery").Label(); got != "mystery" {
		t.Errorf("unknown kind label = %q, want mystery", got)
	}
}
