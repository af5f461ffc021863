package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID      int
	RulesID int // RulesConfig.ID
	GameMetric
}

type RoundRecord struct {
	Game int // GameRecord.ID
	RoundMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by experiment and current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRulesConfigs(configs []RulesConfig) error {
	header := []string{"id", "rules", "short_circuit"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.FormatBool(config.ShortCircuit),
		})
	}
	return w.write("rules_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "rules_id", "rules", "winner", "score", "rounds", "total_rounds", "sub_games", "cycles", "max_depth", "by_cycle", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.RulesID),
			record.Rules,
			record.Winner,
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.TotalRounds),
			strconv.Itoa(record.SubGames),
			strconv.Itoa(record.Cycles),
			strconv.Itoa(record.MaxDepth),
			strconv.FormatBool(record.ByCycle),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	header := []string{"game", "step", "winner", "card_a", "card_b", "sub_game", "hash", "cards_a", "cards_b"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Winner,
			strconv.Itoa(record.CardA),
			strconv.Itoa(record.CardB),
			strconv.FormatBool(record.SubGame),
			strconv.FormatUint(record.Hash, 16),
			strconv.Itoa(record.CardsA),
			strconv.Itoa(record.CardsB),
		})
	}
	return w.write("round_records.csv", header, rows)
}

func (w *Writer) WriteTickRecords(records []TickMetric) error {
	header := []string{"dimension", "tick", "active"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Dimension),
			strconv.Itoa(record.Tick),
			strconv.Itoa(record.Active),
		})
	}
	return w.write("tick_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
