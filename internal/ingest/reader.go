package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// Required export columns. Header matching is case-insensitive and ignores
// surrounding whitespace; extra columns are skipped.
var requiredColumns = []string{
	"participant_id",
	"app_record_type",
	"app_title",
	"app_full_name",
	"app_datetime_start",
	"app_datetime_end",
	"app_duration_seconds",
	"app_timezone",
}

// Reader loads raw usage rows from every CSV file in a directory.
type Reader struct {
	dir    string
	logger *slog.Logger
}

// NewReader builds a Reader over the given raw-data directory.
func NewReader(dir string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Reader{dir: dir, logger: logging.NewComponentLogger(logger, "ingest")}
}

// Load reads every *.csv file under the directory in sorted filename order
// and returns the concatenated rows. Row order within each file is
// preserved. A file with a missing required column fails the whole load;
// the raw export is assumed to share one schema.
func (r *Reader) Load(ctx context.Context) ([]events.RawEvent, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read raw data directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", r.dir)
	}

	var rows []events.RawEvent
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(r.dir, name)
		fileRows, err := r.loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		r.logger.Info("loaded raw file",
			logging.String("file", name),
			logging.Int("rows", len(fileRows)),
			logging.String(logging.FieldEventType, "file_loaded"),
		)
		rows = append(rows, fileRows...)
	}

	r.logger.Info("raw data loaded",
		logging.Int("files", len(names)),
		logging.Int("rows", len(rows)),
		logging.String(logging.FieldEventType, "ingest_complete"),
	)
	return rows, nil
}

func (r *Reader) loadFile(path string) ([]events.RawEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("file is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []events.RawEvent
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, events.RawEvent{
			ParticipantID: field(record, index["participant_id"]),
			RecordType:    field(record, index["app_record_type"]),
			AppTitle:      field(record, index["app_title"]),
			AppFullName:   field(record, index["app_full_name"]),
			StartRaw:      field(record, index["app_datetime_start"]),
			EndRaw:        field(record, index["app_datetime_end"]),
			DurationRaw:   field(record, index["app_duration_seconds"]),
			Timezone:      field(record, index["app_timezone"]),
		})
	}
	return rows, nil
}

// mapHeader resolves each required column to its position. The export
// tooling has shipped headers in mixed case, so matching folds case.
func mapHeader(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	index := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, col := range requiredColumns {
		pos, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		index[col] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
