package annotations

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/fieldtally/observer-api/internal/timeline"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// Annotation is one recorded occurrence of an event type at a global time.
// EventTypeName and SegmentName are denormalized for historical fidelity:
// they survive later renames and segment removals. EventTypeName follows an
// explicit rename cascade; SegmentName is frozen at capture time.
type Annotation struct {
	ID            string  `json:"id"`
	EventTypeKey  int     `json:"event_type_key"`
	EventTypeName string  `json:"event_type_name"`
	Global        float64 `json:"global"`
	SegmentOffset float64 `json:"segment_offset"`
	WallClock     string  `json:"wall_clock"`
	SegmentID     string  `json:"segment_id"`
	SegmentName   string  `json:"segment_name"`
	Note          string  `json:"note,omitempty"`
}

// Store owns the ordered annotation collection. Entries are always sorted
// ascending by global offset; insertion preserves the order rather than
// appending. The store maintains the catalog's derived counts.
type Store struct {
	catalog *Catalog
	entries []Annotation
}

// NewStore creates an empty store maintaining counts on the given catalog
func NewStore(catalog *Catalog) *Store {
	return &Store{catalog: catalog}
}

// Record captures an annotation at the given position. The wall-clock
// display is derived from the registry's anchor plus the global offset, and
// the active segment's identity and name are denormalized into the entry.
func (s *Store) Record(eventTypeKey int, pos timeline.Position, registry *timeline.Registry) (Annotation, error) {
	if !s.catalog.Has(eventTypeKey) {
		return Annotation{}, apperrors.UnknownEventType(eventTypeKey)
	}
	if registry.Len() == 0 {
		return Annotation{}, apperrors.NoActiveSegment()
	}

	et, _ := s.catalog.Get(eventTypeKey)
	seg, _ := registry.Segment(pos.SegmentIndex)

	ann := Annotation{
		ID:            uuid.New().String(),
		EventTypeKey:  eventTypeKey,
		EventTypeName: et.Name,
		Global:        pos.Global,
		SegmentOffset: pos.SegmentOffset,
		WallClock:     registry.WallClock(pos.Global),
		SegmentID:     seg.ID,
		SegmentName:   seg.Name,
	}

	s.insert(ann)
	s.catalog.increment(eventTypeKey)
	return ann, nil
}

// Delete removes an annotation by identity. Missing entries are a silent
// no-op; the referenced type's count is decremented, floored at zero.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.catalog.decrement(s.entries[idx].EventTypeKey)
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	return true
}

// DeleteClosestTo removes the entry whose global offset is nearest to the
// given time, ties broken by earliest stored order. No-op on an empty store.
func (s *Store) DeleteClosestTo(globalSeconds float64) (Annotation, bool) {
	if len(s.entries) == 0 {
		return Annotation{}, false
	}
	best := 0
	bestDist := math.Abs(s.entries[0].Global - globalSeconds)
	for i := 1; i < len(s.entries); i++ {
		if d := math.Abs(s.entries[i].Global - globalSeconds); d < bestDist {
			best, bestDist = i, d
		}
	}
	ann := s.entries[best]
	s.Delete(ann.ID)
	return ann, true
}

// Reassign moves an annotation to a different event type, updating the
// denormalized name and both types' counts in one step.
func (s *Store) Reassign(id string, newEventTypeKey int) (Annotation, error) {
	if !s.catalog.Has(newEventTypeKey) {
		return Annotation{}, apperrors.UnknownEventType(newEventTypeKey)
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return Annotation{}, apperrors.NotFound("annotation", id)
	}

	et, _ := s.catalog.Get(newEventTypeKey)
	old := s.entries[idx].EventTypeKey
	s.entries[idx].EventTypeKey = newEventTypeKey
	s.entries[idx].EventTypeName = et.Name
	if old != newEventTypeKey {
		s.catalog.decrement(old)
		s.catalog.increment(newEventTypeKey)
	}
	return s.entries[idx], nil
}

// RenameEventType renames a catalog entry and cascades the new name onto
// every annotation referencing it. This is the one place denormalized data
// is kept consistent by cascade rather than by reference.
func (s *Store) RenameEventType(eventTypeKey int, newName string) error {
	if err := s.catalog.Rename(eventTypeKey, newName); err != nil {
		return err
	}
	for i := range s.entries {
		if s.entries[i].EventTypeKey == eventTypeKey {
			s.entries[i].EventTypeName = newName
		}
	}
	return nil
}

// SetNote replaces an annotation's free text. No-op when missing.
func (s *Store) SetNote(id, text string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.entries[idx].Note = text
	return true
}

// RefreshDisplayTimes recomputes every wall-clock display from the stored
// global offset and the registry's current anchor. Callers invoke this
// whenever the first segment's start time changes.
func (s *Store) RefreshDisplayTimes(registry *timeline.Registry) {
	for i := range s.entries {
		s.entries[i].WallClock = registry.WallClock(s.entries[i].Global)
	}
}

// Get returns the annotation with the given identity
func (s *Store) Get(id string) (Annotation, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Annotation{}, false
	}
	return s.entries[idx], true
}

// List returns a copy of the ordered collection
func (s *Store) List() []Annotation {
	out := make([]Annotation, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of annotations
func (s *Store) Len() int {
	return len(s.entries)
}

// ReferencesSegment reports whether any annotation was captured against the
// given segment, which blocks that segment's removal.
func (s *Store) ReferencesSegment(segmentID string) bool {
	for _, ann := range s.entries {
		if ann.SegmentID == segmentID {
			return true
		}
	}
	return false
}

// Restore replaces the collection wholesale, re-sorting it and recounting
// the catalog's derived counts instead of trusting persisted values.
func (s *Store) Restore(entries []Annotation) {
	s.entries = make([]Annotation, len(entries))
	copy(s.entries, entries)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Global < s.entries[j].Global
	})
	s.catalog.resetCounts()
	for _, ann := range s.entries {
		s.catalog.increment(ann.EventTypeKey)
	}
}

// insert places ann at the position preserving ascending global order
func (s *Store) insert(ann Annotation) {
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Global > ann.Global
	})
	s.entries = append(s.entries, Annotation{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = ann
}

func (s *Store) indexOf(id string) int {
	for i, ann := range s.entries {
		if ann.ID == id {
			return i
		}
	}
	return -1
}
