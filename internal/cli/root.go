package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper-go/internal/factory"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/tui"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "minesweep",
		Short: "Terminal minesweeper",
		Long: `minesweep is a terminal minesweeper.

Move with the arrow keys, reveal with enter or space, flag with f.
A fixed --seed reproduces the same mine placement on every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "Field edge length, minimum 3 (env: MINESWEEP_SIZE)")
	rootCmd.Flags().StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Mine density: easy, normal or hard (env: MINESWEEP_DIFFICULTY)")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "Mine placement seed, 0 for random")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "JSON log destination, empty to discard (env: MINESWEEP_LOG_FILE)")

	return rootCmd
}

func run(cfg *Config) error {
	tier, err := model.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}

	size, ok := model.NewIndex(cfg.Size)
	if !ok || size < model.MinFieldSize {
		return model.ErrFieldTooSmall
	}

	logger, closeLog, err := cfg.OpenLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	app := factory.New(factory.Config{
		Seed:   cfg.Seed,
		Logger: logger,
	})

	return tui.New(app.Sessions, app.Clock, logger, size, tier).Run()
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
