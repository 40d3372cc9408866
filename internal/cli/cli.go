// Package cli implements the perclearn command-line interface.
//
// The commands wrap the perclearn library:
//   - noise: write a 1/f noise background as an image
//   - compose: blend one image onto a noise (or given) background
//   - dataset: augment a CSV table or a directory of images
//
// All commands accept --config for a TOML file (see Config) and --verbose
// for debug logging. Command-line flags override configuration values.
// Loggers and configuration travel through the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/perclearn"
)

var (
	version = perclearn.Version
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is typically called from main with values injected via ldflags;
// an empty v keeps the library version.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// Execute runs the perclearn CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "perclearn",
		Short:        "perclearn augments image datasets with 1/f noise backgrounds",
		Long:         `perclearn places images on 1/f spatial noise backgrounds with a radially faded circular blend, optionally rotated and offset, to build datasets for visual experiments.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			perclearn.SetLogger(slog.New(logger))

			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath)
			}

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("perclearn %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newNoiseCmd())
	root.AddCommand(newComposeCmd())
	root.AddCommand(newDatasetCmd())

	return root
}

// addSeedFlag registers --seed on cmd.
func addSeedFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "random seed (default: from config, else time-based)")
}

// newRNG returns the generator for a command run. The seed comes from
// --seed, then the config file, then the clock; it is logged so any run
// can be reproduced.
func newRNG(cmd *cobra.Command, cfg *Config) *rand.Rand {
	var seed uint64
	switch {
	case cmd.Flags().Changed("seed"):
		seed, _ = cmd.Flags().GetUint64("seed")
	case cfg.Seed != nil:
		seed = *cfg.Seed
	default:
		seed = uint64(time.Now().UnixNano())
	}
	loggerFromContext(cmd.Context()).Debug("random source", "seed", seed)
	return rand.New(rand.NewPCG(seed, seed))
}

// printer formats counts for log messages.
var printer = message.NewPrinter(language.English)
