package pipeline

import (
	"context"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// FilterPlausible drops sessions whose durations cannot be trusted: any
// denylisted app over the denylist cap (strict >), and any session at or
// above the overall cap (a session of exactly the cap is dropped). The two
// audit counters are disjoint; denylisted sessions land in the denylist
// bucket even when they also exceed the overall cap.
func (p *Pipeline) FilterPlausible(ctx context.Context, sessions []events.Session, stats *Stats) []events.Session {
	logger, started := p.stageStart(ctx, "plausibility", len(sessions))

	out := make([]events.Session, 0, len(sessions))
	for _, s := range sessions {
		if _, denied := p.denylist[s.AppFullName]; denied && s.DurationSecs > p.denylistMaxSecs {
			stats.DenylistDropped++
			continue
		}
		if s.DurationSecs >= p.maxSessionSecs {
			stats.OverlongDropped++
			continue
		}
		out = append(out, s)
	}

	stageComplete(logger, started, len(out),
		logging.Int("denylist_dropped", stats.DenylistDropped),
		logging.Int("overlong_dropped", stats.OverlongDropped),
	)
	return out
}
