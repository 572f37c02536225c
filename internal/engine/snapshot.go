package engine

import (
	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/internal/playback"
	"github.com/fieldtally/observer-api/internal/timeline"
)

// SnapshotVersion is bumped when the snapshot structure changes shape
const SnapshotVersion = 1

// SegmentSnapshot carries the independent segment fields. Derived layout
// (global start offsets, chained wall-clock starts) is recomputed on restore.
type SegmentSnapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// EventTypeSnapshot carries one catalog entry without its derived count
type EventTypeSnapshot struct {
	Key   int    `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Snapshot is the versioned full state of a session. Counts, cumulative
// starts, total duration, and display strings are deliberately absent:
// restore re-derives them rather than trusting persisted values.
type Snapshot struct {
	Version       int                      `json:"version"`
	Name          string                   `json:"name"`
	FirstStart    string                   `json:"first_start"`
	SeekStep      float64                  `json:"seek_step"`
	SeekStepLarge float64                  `json:"seek_step_large"`
	Segments      []SegmentSnapshot        `json:"segments"`
	EventTypes    []EventTypeSnapshot      `json:"event_types"`
	Annotations   []annotations.Annotation `json:"annotations"`
	Playback      playback.State           `json:"playback"`
}

// Snapshot captures the session's full state for the persistence collaborator
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Version:       SnapshotVersion,
		Name:          s.Name,
		SeekStep:      s.seekStep,
		SeekStepLarge: s.seekStepLarge,
		Annotations:   s.store.List(),
		Playback:      s.playback.State(),
	}

	segs := s.registry.Segments()
	if len(segs) > 0 {
		snap.FirstStart = segs[0].RealStart
	}
	for _, seg := range segs {
		snap.Segments = append(snap.Segments, SegmentSnapshot{
			ID:       seg.ID,
			Name:     seg.Name,
			Duration: seg.Duration,
		})
	}
	for _, et := range s.catalog.List() {
		snap.EventTypes = append(snap.EventTypes, EventTypeSnapshot{
			Key:   et.Key,
			Name:  et.Name,
			Color: et.Color,
		})
	}
	return snap
}

// Restore replaces the session's state from a snapshot. Every cached field
// is re-derived: segment layout from durations, annotation order and
// event-type counts by recount, wall-clock displays from the restored
// anchor, playback coordinates from the position mapper.
func (s *Session) Restore(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	segs := make([]timeline.Segment, 0, len(snap.Segments))
	for _, seg := range snap.Segments {
		segs = append(segs, timeline.Segment{
			ID:       seg.ID,
			Name:     seg.Name,
			Duration: seg.Duration,
		})
	}
	if err := s.registry.Load(segs, snap.FirstStart); err != nil {
		return err
	}

	catalog := annotations.NewCatalog()
	for _, et := range snap.EventTypes {
		catalog.Add(et.Key, et.Name, et.Color)
	}
	s.catalog = catalog
	s.store = annotations.NewStore(catalog)
	s.store.Restore(snap.Annotations)
	s.store.RefreshDisplayTimes(s.registry)
	s.analytics.Reset(s.store, s.catalog)

	if snap.Name != "" {
		s.Name = snap.Name
	}
	if snap.SeekStep > 0 {
		s.seekStep = snap.SeekStep
	}
	if snap.SeekStepLarge > 0 {
		s.seekStepLarge = snap.SeekStepLarge
	}

	s.playback.Restore(snap.Playback)
	return nil
}
