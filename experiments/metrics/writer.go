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
// subdirectory of the base directory.
type Writer struct {
	dir string
}

func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir is the directory this writer creates files in.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "algorithm", "seed", "iterations", "exploration", "heuristic"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Algorithm,
			strconv.FormatUint(config.Seed, 10),
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.FormatBool(config.Heuristic),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent_x", "agent_o", "result", "plies", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.AgentX),
			strconv.Itoa(record.AgentO),
			record.Result,
			strconv.Itoa(record.Plies),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "ply", "player", "cell", "value", "nodes", "elapsed"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Ply),
			record.Player,
			strconv.Itoa(record.Cell),
			strconv.Itoa(record.Value),
			strconv.Itoa(record.Nodes),
			record.Elapsed.String(),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"algorithm", "position", "move", "value", "nodes", "cutoffs", "researches"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Algorithm,
			strconv.FormatUint(uint64(record.Position), 10),
			strconv.Itoa(record.Move),
			strconv.Itoa(record.Value),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Researches),
		})
	}
	return w.writeCSV("search_records.csv", header, rows)
}
