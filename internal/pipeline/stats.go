package pipeline

// Stats records what each stage saw and removed during one run. Removal
// counters describe intentional data-quality filtering; ParseFailures is
// the only counter describing records the pipeline could not read.
type Stats struct {
	RawRows          int `json:"raw_rows"`
	DuplicateRows    int `json:"duplicate_rows"`
	OutOfTimezone    int `json:"out_of_timezone"`
	ParseFailures    int `json:"parse_failures"`
	NormalizedEvents int `json:"normalized_events"`

	Sessions        int `json:"sessions"`
	FragmentsMerged int `json:"fragments_merged"`

	DenylistDropped int `json:"denylist_dropped"`
	OverlongDropped int `json:"overlong_dropped"`

	Gaps           int `json:"gaps"`
	GapDayDropped  int `json:"gap_day_dropped"`

	MissingEndDropped int `json:"missing_end_dropped"`
	DaySpanDropped    int `json:"day_span_dropped"`
	EdgeDayDropped    int `json:"edge_day_dropped"`
	DSTDropped        int `json:"dst_dropped"`

	CleanedRows int `json:"cleaned_rows"`
}
