package pipeline

import (
	"context"
	"sort"

	"chronicle/internal/events"
	"chronicle/internal/logging"
)

// mergeKey partitions events into independent merge groups.
type mergeKey struct {
	participant string
	app         string
	recordType  string
}

// Merge collapses runs of time-adjacent fragments into sessions. Within
// a group (participant, app, record type) a fragment continues the current
// session only when its start equals the previous fragment's end exactly;
// any mismatch, even one second, starts a new session.
func (p *Pipeline) Merge(ctx context.Context, evts []events.NormalizedEvent, stats *Stats) []events.Session {
	logger, started := p.stageStart(ctx, "merge", len(evts))

	// Group membership preserves the global (participant, start) sort, so
	// each group slice arrives ordered by start time.
	groups := make(map[mergeKey][]events.NormalizedEvent)
	for _, ev := range evts {
		key := mergeKey{participant: ev.ParticipantID, app: ev.AppFullName, recordType: ev.RecordType}
		groups[key] = append(groups[key], ev)
	}

	sessions := make([]events.Session, 0, len(groups))
	for _, group := range groups {
		sessions = append(sessions, mergeGroup(group)...)
	}
	sortSessions(sessions)

	stats.Sessions = len(sessions)
	stats.FragmentsMerged = len(evts) - len(sessions)

	stageComplete(logger, started, len(sessions),
		logging.Int("fragments_merged", stats.FragmentsMerged),
	)
	return sessions
}

// mergeGroup walks one ordered fragment group with an explicit session
// accumulator and emits a session whenever adjacency breaks.
func mergeGroup(group []events.NormalizedEvent) []events.Session {
	if len(group) == 0 {
		return nil
	}

	sessions := make([]events.Session, 0, len(group))
	current := openSession(group[0])
	for _, fragment := range group[1:] {
		if !current.End.IsZero() && fragment.Start.Equal(current.End) {
			current.End = fragment.End
			current.DurationSecs += fragment.DurationSecs
			current.Fragments++
			continue
		}
		sessions = append(sessions, current)
		current = openSession(fragment)
	}
	return append(sessions, current)
}

func openSession(fragment events.NormalizedEvent) events.Session {
	return events.Session{
		ParticipantID: fragment.ParticipantID,
		RecordType:    fragment.RecordType,
		AppFullName:   fragment.AppFullName,
		AppTitle:      fragment.AppTitle,
		Start:         fragment.Start,
		End:           fragment.End,
		Date:          fragment.Date,
		DurationSecs:  fragment.DurationSecs,
		Fragments:     1,
	}
}

// sortSessions restores the global (participant, start) order after the
// group partition, with app and record type as deterministic tie-breaks.
func sortSessions(sessions []events.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.AppFullName != b.AppFullName {
			return a.AppFullName < b.AppFullName
		}
		return a.RecordType < b.RecordType
	})
}
