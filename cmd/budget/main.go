package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/simaogato/budgetledger/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogger(cfg)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&demoCmd{cfg: cfg}, "reports")
	subcommands.Register(&reportCmd{cfg: cfg}, "reports")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// setupLogger points the global logger at stderr so that reports on stdout stay clean.
// Human readable output unless LOG_FORMAT=json.
func setupLogger(cfg *config.Config) {
	output := io.Writer(os.Stderr)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
