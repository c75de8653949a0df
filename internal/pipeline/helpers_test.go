package pipeline_test

import (
	"testing"
	"time"

	"chronicle/internal/config"
	"chronicle/internal/events"
	"chronicle/internal/logging"
	"chronicle/internal/pipeline"
)

const testTimezone = "America/New_York"

func newPipeline(t *testing.T, mutate ...func(*config.Config)) *pipeline.Pipeline {
	t.Helper()
	cfg := config.Default()
	cfg.Study.Timezone = testTimezone
	for _, fn := range mutate {
		fn(&cfg)
	}
	p, err := pipeline.New(&cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	return p
}

// ts builds a wall-clock timestamp the way normalized events carry them.
func ts(value string) time.Time {
	parsed, err := time.Parse("2006-01-02T15:04:05.999999999", value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05", value)
		if err != nil {
			panic(err)
		}
	}
	return parsed
}

func normEvent(participant, app, start, end string, duration float64) events.NormalizedEvent {
	startTime := ts(start)
	var endTime time.Time
	if end != "" {
		endTime = ts(end)
	}
	return events.NormalizedEvent{
		ParticipantID: participant,
		RecordType:    "App Usage",
		AppTitle:      app,
		AppFullName:   app,
		Start:         startTime,
		End:           endTime,
		Date:          events.DateOf(startTime),
		DurationSecs:  duration,
	}
}

func session(participant, app, start, end string, duration float64) events.Session {
	startTime := ts(start)
	var endTime time.Time
	if end != "" {
		endTime = ts(end)
	}
	return events.Session{
		ParticipantID: participant,
		RecordType:    "App Usage",
		AppFullName:   app,
		AppTitle:      app,
		Start:         startTime,
		End:           endTime,
		Date:          events.DateOf(startTime),
		DurationSecs:  duration,
		Fragments:     1,
	}
}

func rawRow(participant, app, start, end, duration string) events.RawEvent {
	return events.RawEvent{
		ParticipantID: participant,
		RecordType:    "App Usage",
		AppTitle:      app,
		AppFullName:   app,
		StartRaw:      start,
		EndRaw:        end,
		DurationRaw:   duration,
		Timezone:      testTimezone,
	}
}
