package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"crabsim/automaton"
	"crabsim/automaton/seating"
	"crabsim/engine"
	"crabsim/experiments"
	"crabsim/experiments/metrics"
	"crabsim/game"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func printParts(w io.Writer, part1, part2 int) {
	fmt.Fprintf(w, "Part 1: %d\n", part1)
	fmt.Fprintf(w, "Part 2: %d\n", part2)
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func newCombatCmd(opts *options) *cobra.Command {
	var shortCircuit bool
	var records string
	var maxRounds int

	cmd := &cobra.Command{
		Use:   "combat <input>",
		Short: "Play Combat (part 1) and Recursive Combat (part 2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg.Combat
			if cmd.Flags().Changed("short-circuit") {
				cfg.ShortCircuit = shortCircuit
			}
			if cmd.Flags().Changed("records") {
				cfg.RecordsDir = records
			}
			if cmd.Flags().Changed("max-rounds") {
				cfg.MaxRounds = maxRounds
			}

			f, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			a, b, err := game.ParseDecks(f)
			if err != nil {
				return err
			}

			ruleSets := []game.Rules{
				game.NewStandardRules(),
				game.NewRecursiveRules(game.WithShortCircuit(cfg.ShortCircuit)),
			}
			scores := make([]int, len(ruleSets))
			gameRecords := []metrics.GameRecord{}
			roundRecords := []metrics.RoundRecord{}
			for i, rules := range ruleSets {
				e := engine.LocalEngine(rules, engine.WithMetrics(), engine.WithMaxRounds(cfg.MaxRounds))
				result, gameMetric, rounds, err := e.Run(a, b)
				if err != nil {
					return err
				}
				scores[i] = result.Score()

				gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, RulesID: i + 1, GameMetric: gameMetric})
				for _, rm := range rounds {
					roundRecords = append(roundRecords, metrics.RoundRecord{Game: i + 1, RoundMetric: rm})
				}
			}
			printParts(cmd.OutOrStdout(), scores[0], scores[1])

			if cfg.RecordsDir == "" {
				return nil
			}
			writer, err := metrics.NewWriter(cfg.RecordsDir, "combat")
			if err != nil {
				return err
			}
			if err := writer.WriteGameRecords(gameRecords); err != nil {
				return err
			}
			if err := writer.WriteRoundRecords(roundRecords); err != nil {
				return err
			}
			log.Info().Msgf("stored combat records in %s", writer.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&shortCircuit, "short-circuit", false, "Skip sub-games player 1 is certain to win")
	cmd.Flags().StringVar(&records, "records", "", "Directory to write CSV game and round records to")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "Round limit for the standard game")
	return cmd
}

func newCubesCmd(opts *options) *cobra.Command {
	var ticks int
	var records string

	cmd := &cobra.Command{
		Use:   "cubes <input>",
		Short: "Evolve a Conway cube seed in the configured dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg.Cubes
			if cmd.Flags().Changed("ticks") {
				cfg.Ticks = ticks
			}
			if cfg.Ticks < 0 {
				return fmt.Errorf("ticks must not be negative, got %d", cfg.Ticks)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}

			start := time.Now()
			counts := [2]int{}
			for i, dim := range cfg.Dimensions {
				seed, err := automaton.ParseSeed(strings.NewReader(string(data)), opts.cfg.CubeGlyph(), dim)
				if err != nil {
					return err
				}
				counts[i] = automaton.Evolve(seed, cfg.Ticks, automaton.Conway(), automaton.Moore(dim)).Len()
			}
			log.Info().Msgf("cubes evolved in %s", time.Since(start))
			printParts(cmd.OutOrStdout(), counts[0], counts[1])

			if records == "" {
				return nil
			}
			seed, err := automaton.ParseSeed(strings.NewReader(string(data)), opts.cfg.CubeGlyph(), 2)
			if err != nil {
				return err
			}
			_, err = experiments.RunGrowthExperiment(records, seed, cfg.Ticks, cfg.Dimensions[:])
			return err
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 0, "Number of ticks to evolve")
	cmd.Flags().StringVar(&records, "records", "", "Directory to write CSV tick records to")
	return cmd
}

func newTilesCmd(opts *options) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "tiles <input>",
		Short: "Flip hex tiles (part 1) and evolve the floor (part 2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg.Tiles
			if cmd.Flags().Changed("days") {
				cfg.Days = days
			}
			if cfg.Days < 0 {
				return fmt.Errorf("days must not be negative, got %d", cfg.Days)
			}

			f, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			tiles, err := automaton.ParseHexPaths(f)
			if err != nil {
				return err
			}

			start := time.Now()
			floor := automaton.FlipTiles(tiles)
			final := automaton.Evolve(floor, cfg.Days, automaton.HexTiles(), automaton.Hex())
			log.Info().Msgf("tiles evolved for %d days in %s", cfg.Days, time.Since(start))

			printParts(cmd.OutOrStdout(), floor.Len(), final.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Number of days to evolve")
	return cmd
}

func newSeatingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seating <input>",
		Short: "Settle a seating area by adjacency (part 1) and sightline (part 2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			grid, err := seating.Parse(f)
			if err != nil {
				return err
			}

			counts := [2]int{}
			for i, policy := range []seating.Policy{seating.Adjacent{}, seating.Visible{}} {
				stable, ticks, err := seating.Run(grid, policy, opts.cfg.Seating.MaxTicks)
				if err != nil {
					return err
				}
				log.Info().Msgf("%s seating stable after %d ticks", policy.Name(), ticks)
				counts[i] = stable.Occupied()
			}
			printParts(cmd.OutOrStdout(), counts[0], counts[1])
			return nil
		},
	}
}

func newDealCmd(opts *options) *cobra.Command {
	var cards int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Print a random valid Combat input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cards <= 0 {
				return fmt.Errorf("cards must be positive, got %d", cards)
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			log.Debug().Uint64("seed", seed).Int("cards", cards).Msg("dealing decks")

			a, b := game.Deal(cards, seed)
			return game.FormatDecks(cmd.OutOrStdout(), a, b)
		},
	}

	cmd.Flags().IntVar(&cards, "cards", experiments.NumCards, "Cards per player")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed (default: current time)")
	return cmd
}

func newExperimentCmd(opts *options) *cobra.Command {
	x := experiments.RulesExperiment{}

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Compare rule sets over dealt decks and write CSV records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if x.Root == "" {
				x.Root = opts.cfg.Combat.RecordsDir
			}
			if x.Root == "" {
				return fmt.Errorf("--records or combat.records_dir is required")
			}
			x.MaxRounds = opts.cfg.Combat.MaxRounds

			dir, err := x.Run()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().IntVar(&x.Games, "games", experiments.NumGames, "Games per rule set")
	cmd.Flags().IntVar(&x.Cards, "cards", experiments.NumCards, "Cards per player")
	cmd.Flags().Uint64Var(&x.Seed, "seed", 1, "Seed of the first deal")
	cmd.Flags().StringVar(&x.Root, "records", "", "Directory to write CSV records to")
	return cmd
}
