package bootstrap

import (
	"fmt"
	"log"

	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/bank"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/model"
)

// demoAccounts are seeded the first time the simulator starts against an
// empty store, so there is something to log in to.
var demoAccounts = []model.CreateAccountRequest{
	{Number: "1001", HolderName: "Alice", PIN: "1234", InitialBalance: "5000"},
	{Number: "1002", HolderName: "Bob", PIN: "2345", InitialBalance: "3000"},
}

// SeedDemoAccounts creates the demo accounts if the store is empty.
// This should be called on startup after the account table is loaded.
func SeedDemoAccounts(svc *bank.Service) error {
	if !svc.Empty() {
		return nil
	}

	log.Println("No accounts found, creating demo accounts")
	for _, req := range demoAccounts {
		acct, err := svc.CreateAccount(req)
		if err != nil {
			return fmt.Errorf("seed demo account %s: %w", req.Number, err)
		}
		log.Printf("Created demo account %s (%s) with PIN %s and balance %s",
			acct.Number, acct.HolderName, acct.PIN, acct.Balance.StringFixed(2))
	}
	return nil
}
