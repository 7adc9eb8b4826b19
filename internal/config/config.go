package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the CLI settings
type Config struct {
	// Reporting
	Currency string

	// Demo
	DemoExpenses int
	Seed         uint64 // 0 means derive from the clock

	// Logging
	LogFormat string
	LogLevel  zerolog.Level
}

// Load reads the configuration from the environment.
// A .env file in the working directory is applied first when present;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var errs []string

	demoExpenses, err := getEnvInt("BUDGET_DEMO_EXPENSES", 20)
	if err != nil {
		errs = append(errs, err.Error())
	}

	seed, err := getEnvUint("BUDGET_SEED", 0)
	if err != nil {
		errs = append(errs, err.Error())
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid LOG_LEVEL: %v", err))
	}

	if len(errs) > 0 {
		return nil, errors.New("configuration errors: " + strings.Join(errs, "; "))
	}

	return &Config{
		Currency:     strings.ToUpper(getEnv("BUDGET_CURRENCY", "USD")),
		DemoExpenses: demoExpenses,
		Seed:         seed,
		LogFormat:    getEnv("LOG_FORMAT", "human"),
		LogLevel:     level,
	}, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if money.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Sprintf("unknown currency '%s'", c.Currency))
	}

	if c.DemoExpenses < 0 {
		errs = append(errs, fmt.Sprintf("invalid demo expense count %d: must not be negative", c.DemoExpenses))
	}

	if c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be human or json", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}

	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be a number", key, v)
	}
	return n, nil
}

func getEnvUint(key string, def uint64) (uint64, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be a non-negative number", key, v)
	}
	return n, nil
}
