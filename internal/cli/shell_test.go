package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/bank"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/store"
)

// runScript feeds one line of input per prompt and returns everything the
// shell printed.
func runScript(t *testing.T, svc *bank.Service, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	sh := NewShell(svc, in, &out, "₹")
	sh.LogoutPause = 0
	if err := sh.Run(); err != nil {
		t.Fatalf("Run() err = %v", err)
	}
	return out.String()
}

func newTestService(t *testing.T) *bank.Service {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "accounts.json"))
	svc, err := bank.NewService(st)
	if err != nil {
		t.Fatalf("NewService() err = %v", err)
	}
	return svc
}

func wantOutput(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q\n---\n%s", fragment, out)
		}
	}
}

func TestShell_CreateLoginDepositLogout(t *testing.T) {
	svc := newTestService(t)

	out := runScript(t, svc,
		"2", // create account
		"2001",
		"Carol",
		"1111",
		"500",
		"1", // login
		"2001",
		"1111",
		"1", // check balance
		"2", // deposit
		"250",
		"3", // withdraw more than the balance
		"10000",
		"5", // mini statement
		"7", // logout
		"3", // exit
	)

	wantOutput(t, out,
		"Account created.",
		"Welcome, Carol!",
		"Your current balance: ₹500.00",
		"Deposited ₹250.00. New balance: ₹750.00",
		"Insufficient funds.",
		"Last 2 transactions:",
		"Logging out...",
		"Exiting. Goodbye.",
	)
}

func TestShell_LoginFailures(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc,
		"1", // login to an unknown account
		"9999",
		"1",
		"2001",
		"0000", // but there is no such account either
		"3",
	)

	wantOutput(t, out, "Account not found.")
}

func TestShell_WrongPIN(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc,
		"2",
		"2001",
		"Carol",
		"1111",
		"0",
		"1",
		"2001",
		"9999",
		"3",
	)

	wantOutput(t, out, "Invalid PIN.")
	if strings.Contains(out, "Welcome, Carol!") {
		t.Error("wrong PIN opened a session")
	}
}

func TestShell_Transfer(t *testing.T) {
	svc := newTestService(t)

	out := runScript(t, svc,
		"2",
		"2001",
		"Carol",
		"1111",
		"1000",
		"2",
		"2002",
		"Dave",
		"2222",
		"300",
		"1",
		"2001",
		"1111",
		"4", // transfer to an unknown account first
		"9999",
		"4", // then a real one
		"2002",
		"100",
		"7",
		"3",
	)

	wantOutput(t, out,
		"Destination account does not exist.",
		"Transferred ₹100.00 to 2002. New balance: ₹900.00",
	)

	dst, err := svc.Account("2002")
	if err != nil {
		t.Fatalf("Account(2002) err = %v", err)
	}
	if got := dst.Balance.StringFixed(2); got != "400.00" {
		t.Errorf("destination balance = %s, want 400.00", got)
	}
}

func TestShell_ChangePIN(t *testing.T) {
	svc := newTestService(t)

	out := runScript(t, svc,
		"2",
		"2001",
		"Carol",
		"1111",
		"0",
		"1",
		"2001",
		"1111",
		"6", // wrong current PIN
		"9999",
		"5555",
		"5555",
		"6", // successful change
		"1111",
		"5555",
		"5555",
		"7",
		"1", // log back in with the new PIN
		"2001",
		"5555",
		"7",
		"3",
	)

	wantOutput(t, out,
		"Current PIN incorrect.",
		"PIN changed successfully.",
	)
	if got := strings.Count(out, "Welcome, Carol!"); got != 2 {
		t.Errorf("login succeeded %d times, want 2 (before and after PIN change)", got)
	}
}

func TestShell_InvalidMenuChoices(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, "9", "3")

	wantOutput(t, out, "Invalid selection.", "Exiting. Goodbye.")
}
