package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/decksite/internal/adapters/secondary/config"
	"github.com/fredcamaral/decksite/internal/domain/entities"
)

// loadConfig resolves the effective configuration: defaults, then the
// global file, then the local decksite.toml next to the sources (or the
// explicit --config file), then command-line flags.
func loadConfig(cmd *cobra.Command, sourceDir string) (*entities.Config, error) {
	loader := config.NewTOMLLoader()
	ctx := cmd.Context()

	global, err := loader.LoadGlobal(ctx)
	if err != nil {
		log.Printf("[WARN] [config] global config unavailable: %v", err)
		global = nil
	}

	var local *entities.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		local, err = loader.LoadFile(ctx, path)
	} else {
		local, err = loader.LoadLocal(ctx, sourceDir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := config.Merge(global, local)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Verbose = true
		cfg.Logging.Level = string(entities.LogLevelDebug)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
