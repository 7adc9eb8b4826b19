package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/simaogato/budgetledger/internal/config"
	"github.com/simaogato/budgetledger/internal/domain"
	"github.com/simaogato/budgetledger/internal/usecase/dashboard"
	"github.com/simaogato/budgetledger/internal/usecase/ledger"
)

var errUsage = errors.New("usage error")

// reportCmd records the expenses given as arguments against a budget given as a flag.
type reportCmd struct {
	cfg    *config.Config
	budget string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "report utilization for the given budget and expenses" }
func (*reportCmd) Usage() string {
	return `budget report -budget <category=amount,...> [<category>:<amount> ...]

  Records each <category>:<amount> argument in order and prints the reports.
  Example: budget report -budget Food=300,Rent=800 Food:150 Rent:400
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "", "Comma separated category=amount allocations.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.run(os.Stdout, f.Args())
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		return subcommands.ExitUsageError
	default:
		log.Error().Err(err).Msg("Report failed")
		return subcommands.ExitFailure
	}
}

func (c *reportCmd) run(w io.Writer, args []string) error {
	allocations, err := parseBudget(c.budget)
	if err != nil {
		return err
	}

	l, err := ledger.New(allocations)
	if err != nil {
		return err
	}

	for _, arg := range args {
		category, amount, err := parseExpense(arg)
		if err != nil {
			return err
		}
		if err := l.RecordExpense(category, amount); err != nil {
			return fmt.Errorf("failed to record %q: %w", arg, err)
		}
		log.Debug().Str("category", category).Stringer("amount", amount).Msg("Expense recorded")
	}

	service, err := dashboard.NewDashboardService(l, c.cfg.Currency)
	if err != nil {
		return err
	}

	return service.Render(w)
}

// parseBudget parses "Food=300,Rent=800".
func parseBudget(s string) (map[string]decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: -budget is required", errUsage)
	}

	allocations := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: allocation %q must be category=amount", errUsage, pair)
		}
		name = strings.TrimSpace(name)
		if _, dup := allocations[name]; dup {
			return nil, fmt.Errorf("%w: category %q allocated twice", errUsage, name)
		}
		amount, err := domain.ParseAmount(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		allocations[name] = amount
	}

	return allocations, nil
}

// parseExpense parses "Food:12.50".
func parseExpense(s string) (string, decimal.Decimal, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return "", decimal.Decimal{}, fmt.Errorf("%w: expense %q must be category:amount", errUsage, s)
	}

	amount, err := domain.ParseAmount(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return "", decimal.Decimal{}, err
	}

	return strings.TrimSpace(s[:i]), amount, nil
}
