package main

import (
	"fmt"
	"os"
	"time"

	"crabsim/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "crabsim",
		Short: "Crab Combat and cellular automaton simulators",
		Long: `crabsim plays Combat and Recursive Combat card games and evolves
cellular automata (Conway cubes, hex tile floors and seating areas).

Each simulator reads its puzzle input from a file and prints the
Part 1 and Part 2 answers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every round and tick")

	rootCmd.AddCommand(
		newCombatCmd(opts),
		newCubesCmd(opts),
		newTilesCmd(opts),
		newSeatingCmd(opts),
		newDealCmd(opts),
		newExperimentCmd(opts),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
