package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RawHeader is the column header the collection tooling emits.
const RawHeader = "participant_id,app_record_type,app_title,app_full_name,app_datetime_start,app_datetime_end,app_duration_seconds,app_timezone"

// WriteRawCSV writes a raw export fixture with the standard header followed
// by the given data lines.
func WriteRawCSV(t testing.TB, path string, lines ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := RawHeader + "\n"
	if len(lines) > 0 {
		content += strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// RawLine renders one raw CSV data line in the collection tooling's column
// order.
func RawLine(participant, recordType, title, fullName, start, end, duration, timezone string) string {
	return strings.Join([]string{participant, recordType, title, fullName, start, end, duration, timezone}, ",")
}
