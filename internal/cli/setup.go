package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mealmax/mealmax/internal/battle"
	"github.com/mealmax/mealmax/internal/config"
	"github.com/mealmax/mealmax/internal/kitchen"
	"github.com/mealmax/mealmax/internal/random"
)

// loadConfig resolves the runtime configuration, applying flag overrides.
func loadConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "load configuration", err)
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	return cfg, nil
}

// openStore opens the catalog database named by the configuration.
func openStore(cfg config.Config) (*kitchen.Store, error) {
	store, err := kitchen.Open(cfg.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}
	return store, nil
}

// newSource builds the battle randomness source from the configuration.
func newSource(cfg config.Config) (random.Source, error) {
	if cfg.LocalRandom {
		src, err := random.NewSeeded()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "seed random source", err)
		}
		return src, nil
	}
	return random.NewClient(cfg.RandomURL, cfg.RandomTimeout), nil
}

// newFormatter builds the output formatter for a command.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// newModel assembles a battle model over the store.
func newModel(store *kitchen.Store, cfg config.Config) (*battle.Model, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	return battle.New(store, src, battle.WithReporter(store)), nil
}

// emitDomainError renders a domain error and converts it to an ExitError so
// the process exits non-zero without cobra reprinting the message.
func emitDomainError(f *OutputFormatter, err error) error {
	code := string(kitchen.CodeOf(err))
	switch {
	case errors.Is(err, battle.ErrCombatantsFull):
		code = "FULL"
	case errors.Is(err, battle.ErrNotEnoughCombatants):
		code = "INVALID_STATE"
	case errors.Is(err, battle.ErrUnknownDifficulty):
		code = "INVALID_ARGUMENT"
	case errors.Is(err, random.ErrUnavailable):
		code = "UNAVAILABLE"
	}

	if werr := f.Error(code, err.Error()); werr != nil {
		return werr
	}
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
}
