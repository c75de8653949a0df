package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chronicle/internal/ingest"
	"chronicle/internal/logging"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const header = "participant_id,app_record_type,app_title,app_full_name,app_datetime_start,app_datetime_end,app_duration_seconds,app_timezone\n"

func TestLoadReadsFilesInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_export.csv", header+
		"p2,App Usage,Mail,com.example.mail,2024-06-04T09:00:00.000-04:00,2024-06-04T09:05:00.000-04:00,300,America/New_York\n")
	writeFile(t, dir, "a_export.csv", header+
		"p1,App Usage,Browser,com.example.browser,2024-06-04T10:00:00.000-04:00,2024-06-04T10:30:00.000-04:00,1800,America/New_York\n")
	writeFile(t, dir, "notes.txt", "not a csv\n")

	rows, err := ingest.NewReader(dir, logging.NewNop()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ParticipantID != "p1" || rows[1].ParticipantID != "p2" {
		t.Errorf("rows out of file order: %q then %q", rows[0].ParticipantID, rows[1].ParticipantID)
	}
	if rows[0].AppFullName != "com.example.browser" {
		t.Errorf("AppFullName = %q", rows[0].AppFullName)
	}
	if rows[0].DurationRaw != "1800" {
		t.Errorf("DurationRaw = %q", rows[0].DurationRaw)
	}
}

func TestLoadHeaderIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv",
		"Participant_ID,App_Record_Type,App_Title,App_Full_Name,App_DateTime_Start,App_DateTime_End,App_Duration_Seconds,App_Timezone\n"+
			"p1,App Usage,Mail,com.example.mail,2024-06-04T09:00:00.000-04:00,2024-06-04T09:05:00.000-04:00,300,America/New_York\n")

	rows, err := ingest.NewReader(dir, logging.NewNop()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 || rows[0].Timezone != "America/New_York" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestLoadIgnoresExtraColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv",
		"device_id,"+header+"dev123,p1,App Usage,Mail,com.example.mail,2024-06-04T09:00:00.000-04:00,2024-06-04T09:05:00.000-04:00,300,America/New_York\n")

	rows, err := ingest.NewReader(dir, logging.NewNop()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 || rows[0].ParticipantID != "p1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestLoadMissingColumnFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv",
		"participant_id,app_record_type,app_title,app_full_name,app_datetime_start,app_datetime_end,app_timezone\n"+
			"p1,App Usage,Mail,com.example.mail,x,y,America/New_York\n")

	_, err := ingest.NewReader(dir, logging.NewNop()).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "app_duration_seconds") {
		t.Errorf("error does not name the missing column: %v", err)
	}
}

func TestLoadEmptyDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	if _, err := ingest.NewReader(dir, logging.NewNop()).Load(context.Background()); err == nil {
		t.Fatal("expected error for directory without CSV files")
	}
}
