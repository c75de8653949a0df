package pipeline

import (
	"context"
	"math"
	"sort"
	"time"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// CleanCalendar applies the final boundary and calendar rules, in order:
// sessions without an end timestamp are dropped; an end of exactly
// midnight is pulled back to 23:59:59.999 of the previous day; sessions
// still spanning a calendar day are dropped; each participant's first and
// last observed days are dropped as incomplete; durations are recomputed
// from the corrected timestamps (superseding the declared duration); and
// sessions starting on a daylight-saving transition date are dropped.
func (p *Pipeline) CleanCalendar(ctx context.Context, sessions []events.Session, stats *Stats) []events.CleanedEvent {
	logger, started := p.stageStart(ctx, "calendar", len(sessions))

	type dayBounded struct {
		session   events.Session
		end       time.Time
		startDate events.Date
		endDate   events.Date
	}

	bounded := make([]dayBounded, 0, len(sessions))
	for _, s := range sessions {
		if s.End.IsZero() {
			stats.MissingEndDropped++
			continue
		}
		end := s.End
		if isMidnight(end) {
			end = end.Add(-time.Millisecond)
		}
		startDate := events.DateOf(s.Start)
		endDate := events.DateOf(end)
		if startDate != endDate {
			stats.DaySpanDropped++
			continue
		}
		bounded = append(bounded, dayBounded{session: s, end: end, startDate: startDate, endDate: endDate})
	}

	// First and last observed days per participant, over the day-bounded
	// set. Both edge drops are evaluated independently against these.
	firstDay := make(map[string]events.Date)
	lastDay := make(map[string]events.Date)
	for _, b := range bounded {
		id := b.session.ParticipantID
		if existing, ok := firstDay[id]; !ok || b.startDate.Before(existing) {
			firstDay[id] = b.startDate
		}
		if existing, ok := lastDay[id]; !ok || b.endDate.After(existing) {
			lastDay[id] = b.endDate
		}
	}

	out := make([]events.CleanedEvent, 0, len(bounded))
	for _, b := range bounded {
		id := b.session.ParticipantID
		if b.startDate == firstDay[id] || b.endDate == lastDay[id] {
			stats.EdgeDayDropped++
			continue
		}
		if _, transition := p.dstDates[b.startDate]; transition {
			stats.DSTDropped++
			continue
		}
		out = append(out, events.CleanedEvent{
			ParticipantID: id,
			AppFullName:   b.session.AppFullName,
			AppTitle:      b.session.AppTitle,
			Start:         b.session.Start,
			End:           b.end,
			DurationSecs:  roundTenth(b.end.Sub(b.session.Start).Seconds()),
			Fragments:     b.session.Fragments,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.AppFullName < b.AppFullName
	})

	stageComplete(logger, started, len(out),
		logging.Int("missing_end_dropped", stats.MissingEndDropped),
		logging.Int("day_span_dropped", stats.DaySpanDropped),
		logging.Int("edge_day_dropped", stats.EdgeDayDropped),
		logging.Int("dst_dropped", stats.DSTDropped),
	)
	return out
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func roundTenth(seconds float64) float64 {
	return math.Round(seconds*10) / 10
}
