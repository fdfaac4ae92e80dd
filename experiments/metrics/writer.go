package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "depth", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "red_agent", "blue_agent", "winner", "moves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.RedAgent),
			strconv.Itoa(record.BlueAgent),
			record.Winner,
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(game int, records []MoveRecord) error {
	path := filepath.Join(w.baseDir, fmt.Sprintf("game_%d_moves.csv", game))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"step", "player", "move", "depth", "nodes", "leaves", "cutoffs", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Leaves, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move row: %w", err)
		}
	}

	return nil
}
