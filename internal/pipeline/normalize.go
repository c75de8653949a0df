package pipeline

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// offsetSuffix matches the trailing UTC offset the instrumentation layer
// appends to wall-clock timestamps ("2024-03-01T09:00:00.000-05:00"). The
// offset is stripped, never applied: timestamps stay in local wall-clock
// form.
var offsetSuffix = regexp.MustCompile(`[+-]\d{2}:\d{2}$`)

var wallClockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize turns raw rows into typed events: exact duplicates collapse,
// rows declaring a foreign timezone are discarded, timestamps and durations
// parse or fail the individual record. Output is sorted by participant and
// start time, which every later stage depends on.
func (p *Pipeline) Normalize(ctx context.Context, raw []events.RawEvent, stats *Stats) []events.NormalizedEvent {
	logger, started := p.stageStart(ctx, "normalize", len(raw))

	out := make([]events.NormalizedEvent, 0, len(raw))
	seen := make(map[events.RawEvent]struct{}, len(raw))

	for _, row := range raw {
		if _, dup := seen[row]; dup {
			stats.DuplicateRows++
			continue
		}
		seen[row] = struct{}{}

		if row.Timezone != p.timezone {
			stats.OutOfTimezone++
			continue
		}

		start, err := parseWallClock(row.StartRaw)
		if err != nil || start.IsZero() {
			stats.ParseFailures++
			logger.Debug("dropping record with unparseable start",
				logging.String(logging.FieldParticipant, row.ParticipantID),
				logging.String("value", row.StartRaw),
			)
			continue
		}

		// A missing end timestamp is tolerated here; the calendar stage
		// drops it. A present-but-malformed one fails the record.
		end, err := parseWallClock(row.EndRaw)
		if err != nil {
			stats.ParseFailures++
			logger.Debug("dropping record with unparseable end",
				logging.String(logging.FieldParticipant, row.ParticipantID),
				logging.String("value", row.EndRaw),
			)
			continue
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(row.DurationRaw), 64)
		if err != nil || duration < 0 {
			stats.ParseFailures++
			logger.Debug("dropping record with invalid duration",
				logging.String(logging.FieldParticipant, row.ParticipantID),
				logging.String("value", row.DurationRaw),
			)
			continue
		}

		out = append(out, events.NormalizedEvent{
			ParticipantID: row.ParticipantID,
			RecordType:    row.RecordType,
			AppTitle:      row.AppTitle,
			AppFullName:   row.AppFullName,
			Start:         start,
			End:           end,
			Date:          events.DateOf(start),
			DurationSecs:  duration,
		})
	}

	sortNormalized(out)
	stats.NormalizedEvents = len(out)

	stageComplete(logger, started, len(out),
		logging.Int("duplicates", stats.DuplicateRows),
		logging.Int("out_of_timezone", stats.OutOfTimezone),
		logging.Int("parse_failures", stats.ParseFailures),
	)
	return out
}

// parseWallClock strips a trailing UTC offset and parses the remainder as a
// timezone-naive local timestamp. Fractional seconds are accepted on any
// layout. An empty value returns the zero time with no error.
func parseWallClock(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, nil
	}
	naive := offsetSuffix.ReplaceAllString(trimmed, "")

	var firstErr error
	for _, layout := range wallClockLayouts {
		parsed, err := time.Parse(layout, naive)
		if err == nil {
			return parsed, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// sortNormalized orders events by participant then start time. Remaining
// fields break ties so identical inputs always produce identical output.
func sortNormalized(evts []events.NormalizedEvent) {
	sort.SliceStable(evts, func(i, j int) bool {
		a, b := evts[i], evts[j]
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.AppFullName != b.AppFullName {
			return a.AppFullName < b.AppFullName
		}
		if a.RecordType != b.RecordType {
			return a.RecordType < b.RecordType
		}
		return a.End.Before(b.End)
	})
}
