package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crabsim/automaton"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRulesExperiment(t *testing.T) {
	dir, err := RulesExperiment{Root: t.TempDir(), Games: 3, Cards: 6, Seed: 11, MaxRounds: 5000}.Run()
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "rules_configs.csv"))
	require.Len(t, configs, len(rulesConfigs)+1)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.GreaterOrEqual(t, len(games), 1+2*3, "Both recursive configs always finish")

	// Short-circuiting never changes a winner or score of the same deal
	byRules := map[string][][]string{}
	for _, row := range games[1:] {
		byRules[row[1]] = append(byRules[row[1]], row)
	}
	require.Len(t, byRules["2"], 3)
	require.Len(t, byRules["3"], 3)
	for i := range byRules["2"] {
		require.Equal(t, byRules["2"][i][3:6], byRules["3"][i][3:6])
	}

	rounds := readCSV(t, filepath.Join(dir, "round_records.csv"))
	require.Greater(t, len(rounds), 1)
}

func TestRunGrowthExperiment(t *testing.T) {
	seed, err := automaton.ParseSeed(strings.NewReader(".#.\n..#\n###"), '#', 2)
	require.NoError(t, err)

	dir, err := RunGrowthExperiment(t.TempDir(), seed, 6, []int{3, 4})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(dir, "tick_records.csv"))
	require.Len(t, rows, 1+2*7)
	require.Equal(t, []string{"3", "0", "5"}, rows[1])
	require.Equal(t, []string{"3", "6", "112"}, rows[7])
	require.Equal(t, []string{"4", "6", "848"}, rows[14])
}
