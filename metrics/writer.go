package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const GameMetricsFile = "game_metrics.csv"

type Writer struct {
	baseDir string
}

// NewWriter writes reports under baseDir, creating it if needed.
func NewWriter(baseDir string) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteGameMetrics(records []GameMetric) error {
	path := filepath.Join(w.baseDir, GameMetricsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game metrics file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"game", "starting_player", "winner", "start_time", "end_time", "duration", "turns", "moves", "passes", "captures", "finishes", "extra_turns"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game metrics header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Game,
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Passes),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Finishes),
			strconv.Itoa(record.ExtraTurns),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game metrics row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game metrics: %w", err)
	}
	return nil
}
