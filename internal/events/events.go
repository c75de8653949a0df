package events

import "time"

// RawEvent is one row as ingested from an upstream instrumentation export.
// All fields are carried verbatim as strings; parsing happens during
// normalization so a malformed row can be rejected without failing the run.
// The struct is comparable, which the normalizer relies on for exact-row
// deduplication.
type RawEvent struct {
	ParticipantID string
	RecordType    string
	AppTitle      string
	AppFullName   string
	StartRaw      string
	EndRaw        string
	DurationRaw   string
	Timezone      string
}

// NormalizedEvent is a raw row after parsing: timestamps are timezone-naive
// local wall-clock values (the trailing UTC offset is stripped, not
// applied), and the duration is a non-negative number of seconds. End is
// the zero time when the upstream row had no end timestamp.
type NormalizedEvent struct {
	ParticipantID string
	RecordType    string
	AppTitle      string
	AppFullName   string
	Start         time.Time
	End           time.Time
	Date          Date
	DurationSecs  float64
}

// Session is one reconstructed usage interval: a maximal run of
// time-adjacent fragments for a single participant, app, and record type.
// Title and Date come from the first fragment, End from the last, and
// DurationSecs is the sum over all merged fragments.
type Session struct {
	ParticipantID string
	RecordType    string
	AppFullName   string
	AppTitle      string
	Start         time.Time
	End           time.Time
	Date          Date
	DurationSecs  float64
	Fragments     int
}

// CleanedEvent is one row of the final output table. DurationSecs is
// recomputed from the (possibly midnight-corrected) timestamps and rounded
// to a tenth of a second; it supersedes the upstream declared duration.
type CleanedEvent struct {
	ParticipantID string
	AppFullName   string
	AppTitle      string
	Start         time.Time
	End           time.Time
	DurationSecs  float64
	Fragments     int
}
