// Package events defines the typed records that flow through the cleaning
// pipeline: raw ingested rows, normalized events, merged sessions, and the
// final cleaned output rows.
//
// Each pipeline stage consumes one of these types and produces the next;
// values are never mutated after a stage emits them. The Date value type
// gives the pipeline a comparable calendar date that can participate in
// composite map keys (participant plus date) without time-of-day noise.
package events
