package timeline

// Position is a global time resolved into segment coordinates. It is always
// re-derived from the registry it was computed against, never stored.
type Position struct {
	SegmentIndex  int     `json:"segment_index"`
	SegmentID     string  `json:"segment_id"`
	SegmentOffset float64 `json:"segment_offset"`
	Global        float64 `json:"global"`
}

// Locate maps a global elapsed time to (segment index, local offset). The
// first segment whose cumulative end reaches the target is selected. Targets
// past the total duration clamp to the last segment at its full duration;
// an empty registry resolves to the zero sentinel. Total over all inputs.
func (r *Registry) Locate(globalSeconds float64) Position {
	if len(r.segments) == 0 {
		return Position{}
	}
	if globalSeconds < 0 {
		globalSeconds = 0
	}

	cumulative := 0.0
	for i, seg := range r.segments {
		if cumulative+seg.Duration >= globalSeconds {
			return Position{
				SegmentIndex:  i,
				SegmentID:     seg.ID,
				SegmentOffset: globalSeconds - cumulative,
				Global:        globalSeconds,
			}
		}
		cumulative += seg.Duration
	}

	last := r.segments[len(r.segments)-1]
	return Position{
		SegmentIndex:  len(r.segments) - 1,
		SegmentID:     last.ID,
		SegmentOffset: last.Duration,
		Global:        r.total,
	}
}

// Clamp bounds a global time into [0, TotalDuration]
func (r *Registry) Clamp(globalSeconds float64) float64 {
	if globalSeconds < 0 {
		return 0
	}
	if globalSeconds > r.total {
		return r.total
	}
	return globalSeconds
}
