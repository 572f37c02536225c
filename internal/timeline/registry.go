package timeline

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/fieldtally/observer-api/pkg/errors"
	"github.com/fieldtally/observer-api/pkg/timecode"
)

// Segment is one decoded video unit contributing a contiguous slice of the
// global timeline. Start and RealStart are derived: Start is the sum of all
// prior durations, RealStart chains from the first segment's anchor.
type Segment struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"`
	Start     float64 `json:"start"`
	RealStart string  `json:"real_start"`
}

// Registry is the ordered collection of segments with derived cumulative
// layout. All mutations keep the contiguity invariant:
// segment[i].RealStart = segment[i-1].RealStart + segment[i-1].Duration.
type Registry struct {
	segments []Segment
	total    float64
}

// NewRegistry creates an empty segment registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds a decoded segment at the tail. A zero or negative duration is a
// decode failure surfaced to the caller, never admitted as an empty segment.
// The first segment's wall-clock start is inferred from its name or the
// file's modification time; later segments chain from their predecessor.
func (r *Registry) Append(name string, modTime time.Time, duration float64) (Segment, error) {
	if duration <= 0 {
		return Segment{}, apperrors.DecodeFailure(name)
	}

	seg := Segment{
		ID:       uuid.New().String(),
		Name:     name,
		Duration: duration,
	}

	if len(r.segments) == 0 {
		seg.RealStart = timecode.InferStart(name, modTime)
		seg.Start = 0
	} else {
		prev := r.segments[len(r.segments)-1]
		seg.Start = prev.Start + prev.Duration
		seg.RealStart = timecode.Format(timecode.Parse(prev.RealStart) + prev.Duration)
	}

	r.segments = append(r.segments, seg)
	r.total += duration
	return seg, nil
}

// Remove deletes a segment and recomputes the layout of everything after it.
// The (possibly new) first segment keeps its own wall-clock start unchanged.
// Callers must have verified that no annotation references the segment.
func (r *Registry) Remove(id string) error {
	idx := r.IndexOf(id)
	if idx < 0 {
		return apperrors.NotFound("segment", id)
	}
	r.segments = append(r.segments[:idx], r.segments[idx+1:]...)
	r.recompute()
	return nil
}

// Reorder moves a segment to newIndex and recomputes all derived starts.
// Callers must have verified that no annotation exists anywhere, since a
// reorder invalidates every captured segment association.
func (r *Registry) Reorder(id string, newIndex int) error {
	idx := r.IndexOf(id)
	if idx < 0 {
		return apperrors.NotFound("segment", id)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(r.segments)-1 {
		newIndex = len(r.segments) - 1
	}

	seg := r.segments[idx]
	r.segments = append(r.segments[:idx], r.segments[idx+1:]...)
	r.segments = append(r.segments[:newIndex], append([]Segment{seg}, r.segments[newIndex:]...)...)
	r.recompute()
	return nil
}

// SetFirstStart overwrites the first segment's wall-clock anchor and
// recomputes every subsequent segment's start time. Callers must then
// refresh annotation display times against the new anchor.
func (r *Registry) SetFirstStart(wallClock string) error {
	if !timecode.Valid(wallClock) {
		return apperrors.InvalidFormat(wallClock)
	}
	if len(r.segments) == 0 {
		return apperrors.NoActiveSegment()
	}
	r.segments[0].RealStart = wallClock
	r.recompute()
	return nil
}

// TotalDuration returns the cached sum of all segment durations
func (r *Registry) TotalDuration() float64 {
	return r.total
}

// Len returns the number of segments
func (r *Registry) Len() int {
	return len(r.segments)
}

// Segments returns a copy of the ordered segment list
func (r *Registry) Segments() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Segment returns the segment at index i
func (r *Registry) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(r.segments) {
		return Segment{}, false
	}
	return r.segments[i], true
}

// ByID returns the segment with the given identity
func (r *Registry) ByID(id string) (Segment, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return Segment{}, false
	}
	return r.segments[idx], true
}

// IndexOf returns the position of a segment, or -1 when absent
func (r *Registry) IndexOf(id string) int {
	for i, seg := range r.segments {
		if seg.ID == id {
			return i
		}
	}
	return -1
}

// AnchorSeconds returns the first segment's wall-clock start as seconds
// past midnight, or 0 on an empty registry.
func (r *Registry) AnchorSeconds() float64 {
	if len(r.segments) == 0 {
		return 0
	}
	return timecode.Parse(r.segments[0].RealStart)
}

// WallClock renders a global offset as wall-clock time of day, anchored at
// the first segment's real-world start.
func (r *Registry) WallClock(globalSeconds float64) string {
	return timecode.Format(r.AnchorSeconds() + globalSeconds)
}

// Load replaces the registry contents from persisted identity fields
// (ID, Name, Duration), re-deriving every cached field instead of trusting
// stored values. firstStart anchors the first segment when valid; otherwise
// the stored RealStart of the first entry is kept.
func (r *Registry) Load(segments []Segment, firstStart string) error {
	for _, seg := range segments {
		if seg.Duration <= 0 {
			return apperrors.DecodeFailure(seg.Name)
		}
	}

	r.segments = make([]Segment, len(segments))
	copy(r.segments, segments)
	if len(r.segments) > 0 {
		if timecode.Valid(firstStart) {
			r.segments[0].RealStart = firstStart
		} else if !timecode.Valid(r.segments[0].RealStart) {
			r.segments[0].RealStart = "00:00:00"
		}
	}
	r.recompute()
	return nil
}

// recompute rebuilds the derived layout. The first segment's RealStart is
// the independent anchor and is never touched here.
func (r *Registry) recompute() {
	r.total = 0
	for i := range r.segments {
		r.segments[i].Start = r.total
		if i > 0 {
			prev := r.segments[i-1]
			r.segments[i].RealStart = timecode.Format(timecode.Parse(prev.RealStart) + prev.Duration)
		}
		r.total += r.segments[i].Duration
	}
}
