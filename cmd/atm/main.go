package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/bank"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/bootstrap"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/cli"
	"github.com/Bhavyasri56/Brainwave-Matrix-Intern/internal/store"
)

func main() {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()
	cfg := loadConfig()

	st := store.New(cfg.DataFile)
	svc, err := bank.NewService(st)
	if err != nil {
		log.Fatalf("Failed to load accounts: %v", err)
	}

	if cfg.SeedDemo {
		if err := bootstrap.SeedDemoAccounts(svc); err != nil {
			log.Fatalf("Failed to seed demo accounts: %v", err)
		}
	}

	shell := cli.NewShell(svc, os.Stdin, os.Stdout, cfg.Currency)
	if err := shell.Run(); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}

// Config holds all configuration for the simulator
type Config struct {
	DataFile string // Path to the account snapshot file
	Currency string // Glyph shown before every amount
	SeedDemo bool   // Create demo accounts when the store is empty
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	dataFile := os.Getenv("ATM_DATA_FILE")
	if dataFile == "" {
		dataFile = "accounts.json"
	}

	currency := os.Getenv("ATM_CURRENCY")
	if currency == "" {
		currency = "₹"
	}

	// Seeding is on unless explicitly disabled
	seedDemo := os.Getenv("ATM_SEED_DEMO") != "false"

	return Config{
		DataFile: dataFile,
		Currency: currency,
		SeedDemo: seedDemo,
	}
}
