// Package cli implements the interactive menu shell. It is a thin layer: it
// collects input, invokes one bank operation, and prints the outcome. All
// validation lives in the bank service.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/bank"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/model"
)

// Shell drives the two menu levels: the top-level menu (login, create
// account, exit) and the authenticated account menu.
type Shell struct {
	svc      *bank.Service
	in       *bufio.Scanner
	out      io.Writer
	currency string

	// LogoutPause is the cosmetic delay shown after logging out.
	// Tests set it to zero.
	LogoutPause time.Duration
}

// NewShell creates a Shell reading from in and writing to out
func NewShell(svc *bank.Service, in io.Reader, out io.Writer, currency string) *Shell {
	return &Shell{
		svc:         svc,
		in:          bufio.NewScanner(in),
		out:         out,
		currency:    currency,
		LogoutPause: 700 * time.Millisecond,
	}
}

// Run loops on the top-level menu until the user exits or input ends.
// The only error it returns is a failed reload of the account table after a
// session, which is as unrecoverable as a corrupt snapshot at startup.
func (sh *Shell) Run() error {
	for {
		fmt.Fprintln(sh.out, "\n====== Welcome to the ATM ======")
		fmt.Fprintln(sh.out, "1. Login")
		fmt.Fprintln(sh.out, "2. Create new account")
		fmt.Fprintln(sh.out, "3. Exit")

		choice, ok := sh.prompt("Select: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			if err := sh.login(); err != nil {
				return err
			}
		case "2":
			sh.createAccount()
		case "3":
			fmt.Fprintln(sh.out, "Exiting. Goodbye.")
			return nil
		default:
			fmt.Fprintln(sh.out, "Invalid selection.")
		}
	}
}

// login authenticates and runs one account session. After the session ends
// the account table is re-read from disk so the snapshot stays authoritative.
func (sh *Shell) login() error {
	number, ok := sh.prompt("Enter account number: ")
	if !ok {
		return nil
	}
	if _, err := sh.svc.Account(number); err != nil {
		fmt.Fprintln(sh.out, "Account not found.")
		return nil
	}

	// PIN is echoed; there is no input concealment in this simulator.
	pin, ok := sh.prompt("Enter PIN: ")
	if !ok {
		return nil
	}
	acct, err := sh.svc.Authenticate(number, pin)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid PIN.")
		return nil
	}

	fmt.Fprintf(sh.out, "Welcome, %s!\n", acct.HolderName)
	sh.session(acct.Number)
	return sh.svc.Reload()
}

// session loops on the authenticated menu until logout or end of input
func (sh *Shell) session(number string) {
	for {
		fmt.Fprintln(sh.out, "\n--- ATM Menu ---")
		fmt.Fprintln(sh.out, "1. Check Balance")
		fmt.Fprintln(sh.out, "2. Deposit")
		fmt.Fprintln(sh.out, "3. Withdraw")
		fmt.Fprintln(sh.out, "4. Transfer")
		fmt.Fprintln(sh.out, "5. Mini Statement")
		fmt.Fprintln(sh.out, "6. Change PIN")
		fmt.Fprintln(sh.out, "7. Exit")

		choice, ok := sh.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			sh.checkBalance(number)
		case "2":
			sh.deposit(number)
		case "3":
			sh.withdraw(number)
		case "4":
			sh.transfer(number)
		case "5":
			sh.miniStatement(number)
		case "6":
			sh.changePIN(number)
		case "7":
			fmt.Fprintln(sh.out, "Logging out...")
			if sh.LogoutPause > 0 {
				time.Sleep(sh.LogoutPause)
			}
			return
		default:
			fmt.Fprintln(sh.out, "Invalid choice. Try again.")
		}
	}
}

func (sh *Shell) createAccount() {
	number, ok := sh.prompt("Choose a new account number: ")
	if !ok {
		return
	}
	name, ok := sh.prompt("Enter account holder name: ")
	if !ok {
		return
	}
	pin, ok := sh.prompt("Set PIN (min 4 digits): ")
	if !ok {
		return
	}
	initial, ok := sh.prompt("Initial deposit (0 if none): ")
	if !ok {
		return
	}

	_, err := sh.svc.CreateAccount(model.CreateAccountRequest{
		Number:         number,
		HolderName:     name,
		PIN:            pin,
		InitialBalance: initial,
	})
	switch {
	case errors.Is(err, model.ErrAccountExists):
		fmt.Fprintln(sh.out, "Account already exists.")
	case errors.Is(err, model.ErrInvalidAmount):
		fmt.Fprintln(sh.out, "Invalid initial deposit.")
	case err != nil:
		fmt.Fprintf(sh.out, "Could not create account: %v\n", err)
	default:
		fmt.Fprintln(sh.out, "Account created.")
	}
}

func (sh *Shell) checkBalance(number string) {
	balance, err := sh.svc.Balance(number)
	if err != nil {
		fmt.Fprintln(sh.out, "Account not found.")
		return
	}
	fmt.Fprintf(sh.out, "Your current balance: %s\n", sh.money(balance))
}

func (sh *Shell) deposit(number string) {
	text, ok := sh.prompt("Enter amount to deposit: ")
	if !ok {
		return
	}
	acct, err := sh.svc.Deposit(number, text)
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		fmt.Fprintln(sh.out, "Invalid amount.")
	case err != nil:
		fmt.Fprintf(sh.out, "Deposit failed: %v\n", err)
	default:
		last := acct.Transactions[len(acct.Transactions)-1]
		fmt.Fprintf(sh.out, "Deposited %s. New balance: %s\n", sh.money(last.Amount), sh.money(acct.Balance))
	}
}

func (sh *Shell) withdraw(number string) {
	text, ok := sh.prompt("Enter amount to withdraw: ")
	if !ok {
		return
	}
	acct, err := sh.svc.Withdraw(number, text)
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		fmt.Fprintln(sh.out, "Invalid amount.")
	case errors.Is(err, model.ErrInsufficientFunds):
		fmt.Fprintln(sh.out, "Insufficient funds.")
	case err != nil:
		fmt.Fprintf(sh.out, "Withdrawal failed: %v\n", err)
	default:
		last := acct.Transactions[len(acct.Transactions)-1]
		fmt.Fprintf(sh.out, "Withdrew %s. New balance: %s\n", sh.money(last.Amount), sh.money(acct.Balance))
	}
}

func (sh *Shell) transfer(number string) {
	dest, ok := sh.prompt("Enter destination account number: ")
	if !ok {
		return
	}
	if _, err := sh.svc.Account(dest); err != nil {
		fmt.Fprintln(sh.out, "Destination account does not exist.")
		return
	}
	text, ok := sh.prompt("Enter amount to transfer: ")
	if !ok {
		return
	}

	acct, err := sh.svc.Transfer(number, dest, text)
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		fmt.Fprintln(sh.out, "Invalid amount.")
	case errors.Is(err, model.ErrInsufficientFunds):
		fmt.Fprintln(sh.out, "Insufficient funds.")
	case err != nil:
		fmt.Fprintf(sh.out, "Transfer failed: %v\n", err)
	default:
		last := acct.Transactions[len(acct.Transactions)-1]
		fmt.Fprintf(sh.out, "Transferred %s to %s. New balance: %s\n",
			sh.money(last.Amount), dest, sh.money(acct.Balance))
	}
}

func (sh *Shell) miniStatement(number string) {
	txs, err := sh.svc.MiniStatement(number, 10)
	if err != nil {
		fmt.Fprintln(sh.out, "Account not found.")
		return
	}
	if len(txs) == 0 {
		fmt.Fprintln(sh.out, "No transactions yet.")
		return
	}

	fmt.Fprintf(sh.out, "Last %d transactions:\n", len(txs))
	for _, t := range txs {
		fmt.Fprintf(sh.out, "%s | %-15s | %s | Bal: %s | %s\n",
			t.Time.Format("2006-01-02 15:04:05"),
			t.Kind.Label(),
			sh.money(t.Amount),
			sh.money(t.BalanceAfter),
			t.Remark,
		)
	}
}

func (sh *Shell) changePIN(number string) {
	current, ok := sh.prompt("Enter current PIN: ")
	if !ok {
		return
	}
	newPIN, ok := sh.prompt("Enter new PIN: ")
	if !ok {
		return
	}
	confirm, ok := sh.prompt("Confirm new PIN: ")
	if !ok {
		return
	}

	err := sh.svc.ChangePIN(number, model.ChangePINRequest{
		Current: current,
		New:     newPIN,
		Confirm: confirm,
	})
	switch {
	case errors.Is(err, model.ErrWrongPIN):
		fmt.Fprintln(sh.out, "Current PIN incorrect.")
	case errors.Is(err, model.ErrPINMismatch):
		fmt.Fprintln(sh.out, "PIN mismatch.")
	case errors.Is(err, model.ErrWeakPIN):
		fmt.Fprintln(sh.out, "PIN must be numeric and at least 4 digits.")
	case err != nil:
		fmt.Fprintf(sh.out, "PIN change failed: %v\n", err)
	default:
		fmt.Fprintln(sh.out, "PIN changed successfully.")
	}
}

// prompt prints a label and reads one trimmed line.
// ok is false when input has ended.
func (sh *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

// money formats an amount with the currency glyph and two decimal places
func (sh *Shell) money(d decimal.Decimal) string {
	return sh.currency + d.StringFixed(2)
}
