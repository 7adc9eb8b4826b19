package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/simaogato/budgetledger/internal/config"
	"github.com/simaogato/budgetledger/internal/usecase/dashboard"
	"github.com/simaogato/budgetledger/internal/usecase/ledger"
	"github.com/simaogato/budgetledger/internal/usecase/seeder"
)

// demoCmd fills the demo budget with random expenses and prints the reports.
type demoCmd struct {
	cfg   *config.Config
	count int
	seed  uint64
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "record random expenses against a sample budget" }
func (*demoCmd) Usage() string {
	return `budget demo [-n <count>] [-seed <seed>]

  Builds the sample budget (Food, Rent, Entertainment, Transport), records
  random expenses against it and prints the reports.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", c.cfg.DemoExpenses, "Number of random expenses to record.")
	f.Uint64Var(&c.seed, "seed", c.cfg.Seed, "Random seed. 0 derives one from the clock.")
}

func (c *demoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.count < 0 {
		log.Error().Int("count", c.count).Msg("Expense count cannot be negative")
		return subcommands.ExitUsageError
	}

	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	l, err := ledger.New(seeder.DemoBudget())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create ledger")
		return subcommands.ExitFailure
	}

	rnd := rand.New(rand.NewPCG(seed, seed>>1|1))
	if err := seeder.NewExpenseSeeder(rnd).Seed(l, c.count); err != nil {
		log.Error().Err(err).Msg("Failed to seed expenses")
		return subcommands.ExitFailure
	}
	log.Debug().Uint64("seed", seed).Int("expenses", l.Len()).Msg("Demo ledger seeded")

	service, err := dashboard.NewDashboardService(l, c.cfg.Currency)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create dashboard")
		return subcommands.ExitFailure
	}

	if err := service.Render(os.Stdout); err != nil {
		log.Error().Err(err).Msg("Failed to render reports")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
