package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// timestampLayout renders wall-clock timestamps without a UTC offset.
// Sub-second precision appears only when present, so the common
// whole-second case stays clean while midnight-corrected ends keep their
// .999 milliseconds.
const timestampLayout = "2006-01-02 15:04:05.999"

var outputColumns = []string{
	"participant_id",
	"app_full_name",
	"app_title",
	"start_datetime",
	"end_datetime",
	"duration_secs",
	"fragment_count",
}

// WriteCSV writes the cleaned table to path, creating parent directories
// as needed. The file is written atomically via a temp file so a failed
// run never leaves a truncated export behind.
func WriteCSV(path string, cleaned []events.CleanedEvent, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "export")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".chronicle-export-*.csv")
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := writeRows(tmp, cleaned); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("move export into place: %w", err)
	}

	logger.Info("export written",
		logging.String("path", path),
		logging.Int("rows", len(cleaned)),
		logging.String(logging.FieldEventType, "export_complete"),
	)
	return nil
}

func writeRows(f *os.File, cleaned []events.CleanedEvent) error {
	w := csv.NewWriter(f)
	if err := w.Write(outputColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range cleaned {
		record := []string{
			row.ParticipantID,
			row.AppFullName,
			row.AppTitle,
			row.Start.Format(timestampLayout),
			row.End.Format(timestampLayout),
			strconv.FormatFloat(row.DurationSecs, 'f', 1, 64),
			strconv.Itoa(row.Fragments),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}
