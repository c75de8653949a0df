package pipeline

import (
	"context"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// participantDay is the composite key the gap stage excludes by.
type participantDay struct {
	participant string
	date        events.Date
}

// ExcludeGapDays finds silent gaps longer than the threshold between a
// participant's consecutive sessions and removes every session dated on
// either side of each gap. The exclusion set is keyed by the calendar dates
// of the gap's bordering timestamps (previous end, next start); sessions
// are then matched by their stored date field, which derives from the
// session start. Those two date sources can diverge for sessions spanning
// midnight; the stage keeps that asymmetry intentionally.
func (p *Pipeline) ExcludeGapDays(ctx context.Context, sessions []events.Session, stats *Stats) []events.Session {
	logger, started := p.stageStart(ctx, "gap-exclusion", len(sessions))

	// Input arrives sorted by (participant, start) from the merge stage,
	// so consecutive pairs within one participant are simply neighbors.
	excluded := make(map[participantDay]struct{})
	for i := 1; i < len(sessions); i++ {
		current, next := sessions[i-1], sessions[i]
		if current.ParticipantID != next.ParticipantID {
			continue
		}
		if current.End.IsZero() {
			// No end timestamp means the gap is undefined, not infinite.
			continue
		}
		if next.Start.Sub(current.End) <= p.gap {
			continue
		}
		stats.Gaps++
		excluded[participantDay{current.ParticipantID, events.DateOf(current.End)}] = struct{}{}
		excluded[participantDay{next.ParticipantID, events.DateOf(next.Start)}] = struct{}{}
		logger.Debug("gap detected",
			logging.String(logging.FieldParticipant, current.ParticipantID),
			logging.Duration("gap", next.Start.Sub(current.End)),
			logging.String("before_date", events.DateOf(current.End).String()),
			logging.String("after_date", events.DateOf(next.Start).String()),
		)
	}

	out := make([]events.Session, 0, len(sessions))
	for _, s := range sessions {
		if _, drop := excluded[participantDay{s.ParticipantID, s.Date}]; drop {
			stats.GapDayDropped++
			continue
		}
		out = append(out, s)
	}

	stageComplete(logger, started, len(out),
		logging.Int("gaps", stats.Gaps),
		logging.Int("gap_day_dropped", stats.GapDayDropped),
	)
	return out
}
