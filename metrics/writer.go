package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Writer writes EpisodeMetric rows to a CSV file under a run-specific
// directory named by a UUID, so concurrent training runs never collide.
type Writer struct {
	baseDir string
	runID   uuid.UUID
}

// NewWriter creates baseDir/<run-id>/ and returns a Writer rooted there.
func NewWriter(baseDir string) (*Writer, error) {
	runID := uuid.New()
	dir := filepath.Join(baseDir, runID.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("metrics: create run directory: %w", err)
	}
	return &Writer{baseDir: dir, runID: runID}, nil
}

// RunID identifies this writer's run directory.
func (w *Writer) RunID() uuid.UUID {
	return w.runID
}

// WriteEpisodes writes one row per EpisodeMetric to episodes.csv, replacing
// any file already there.
func (w *Writer) WriteEpisodes(records []EpisodeMetric) error {
	path := filepath.Join(w.baseDir, "episodes.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: create episodes file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"episode", "moves", "score", "max_tile", "start_time", "end_time", "duration"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("metrics: write episodes header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Episode),
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxTile),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("metrics: write episode row: %w", err)
		}
	}

	return nil
}
