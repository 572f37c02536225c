package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldtally/observer-api/internal/analytics"
	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/internal/playback"
	"github.com/fieldtally/observer-api/internal/timeline"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// EventTypeSeed configures one default catalog entry for new sessions
type EventTypeSeed struct {
	Key   int
	Name  string
	Color string
}

// Options carries the tunables a session is created with
type Options struct {
	MaxRate       float64
	SyncTolerance float64
	SeekStep      float64
	SeekStepLarge float64
	EventTypes    []EventTypeSeed
}

// Session is one observation period: a segment registry, an event-type
// catalog, the annotation store, playback state, and analytics over them.
// The engine components are single-threaded by design; the session mutex is
// the single serialization point for calls arriving from HTTP handlers, so
// every operation runs to completion before the next begins.
type Session struct {
	mu sync.Mutex

	ID        string
	Name      string
	CreatedAt time.Time

	registry  *timeline.Registry
	catalog   *annotations.Catalog
	store     *annotations.Store
	playback  *playback.Controller
	analytics *analytics.Engine

	seekStep      float64
	seekStepLarge float64
}

// NewSession creates a session with an empty timeline and the seeded catalog
func NewSession(name string, opts Options) *Session {
	registry := timeline.NewRegistry()
	catalog := annotations.NewCatalog()
	for _, seed := range opts.EventTypes {
		catalog.Add(seed.Key, seed.Name, seed.Color)
	}
	store := annotations.NewStore(catalog)

	seekStep := opts.SeekStep
	if seekStep <= 0 {
		seekStep = 5
	}
	seekStepLarge := opts.SeekStepLarge
	if seekStepLarge <= 0 {
		seekStepLarge = 60
	}

	return &Session{
		ID:            uuid.New().String(),
		Name:          name,
		CreatedAt:     time.Now().UTC(),
		registry:      registry,
		catalog:       catalog,
		store:         store,
		playback:      playback.NewController(registry, opts.MaxRate, opts.SyncTolerance),
		analytics:     analytics.NewEngine(store, catalog),
		seekStep:      seekStep,
		seekStepLarge: seekStepLarge,
	}
}

// Segment registry operations

// AppendSegment admits a decoded segment at the tail of the timeline
func (s *Session) AppendSegment(name string, modTime time.Time, duration float64) (timeline.Segment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seg, err := s.registry.Append(name, modTime, duration)
	if err != nil {
		return timeline.Segment{}, err
	}
	s.playback.Relocate()
	return seg, nil
}

// RemoveSegment removes a segment unless an annotation references it
func (s *Session) RemoveSegment(segmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.ReferencesSegment(segmentID) {
		return apperrors.ReferencedByAnnotation("segment removal")
	}
	if err := s.registry.Remove(segmentID); err != nil {
		return err
	}
	s.playback.Relocate()
	return nil
}

// ReorderSegment moves a segment to a new index. Any existing annotation
// blocks the reorder, because previously captured segment associations
// would all be invalidated.
func (s *Session) ReorderSegment(segmentID string, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Len() > 0 {
		return apperrors.ReferencedByAnnotation("segment reorder")
	}
	if err := s.registry.Reorder(segmentID, newIndex); err != nil {
		return err
	}
	s.playback.Relocate()
	return nil
}

// SetStartTime re-anchors the first segment's wall-clock start and refreshes
// every annotation's derived display time against the new anchor.
func (s *Session) SetStartTime(wallClock string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.registry.SetFirstStart(wallClock); err != nil {
		return err
	}
	s.store.RefreshDisplayTimes(s.registry)
	return nil
}

// Segments returns the ordered segment list
func (s *Session) Segments() []timeline.Segment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Segments()
}

// TotalDuration returns the timeline's total length in seconds
func (s *Session) TotalDuration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.TotalDuration()
}

// Locate maps a global time to segment coordinates
func (s *Session) Locate(globalSeconds float64) timeline.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Locate(globalSeconds)
}

// Annotation operations

// Record captures an annotation of the given type at the current playback
// position, exactly as the operator sees it.
func (s *Session) Record(eventTypeKey int) (annotations.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.playback.State()
	pos := timeline.Position{
		SegmentIndex:  st.SegmentIndex,
		SegmentID:     st.SegmentID,
		SegmentOffset: st.SegmentOffset,
		Global:        st.Global,
	}
	return s.store.Record(eventTypeKey, pos, s.registry)
}

// DeleteAnnotation removes an annotation; missing IDs are a silent no-op
func (s *Session) DeleteAnnotation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(id)
}

// DeleteClosestAnnotation removes the annotation nearest to a global time
func (s *Session) DeleteClosestAnnotation(globalSeconds float64) (annotations.Annotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.DeleteClosestTo(globalSeconds)
}

// ReassignAnnotation moves an annotation to a different event type
func (s *Session) ReassignAnnotation(id string, newEventTypeKey int) (annotations.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Reassign(id, newEventTypeKey)
}

// RenameEventType renames a catalog entry and cascades onto annotations
func (s *Session) RenameEventType(eventTypeKey int, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RenameEventType(eventTypeKey, newName)
}

// SetAnnotationNote replaces an annotation's free text
func (s *Session) SetAnnotationNote(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetNote(id, text)
}

// Annotations returns the ordered annotation list
func (s *Session) Annotations() []annotations.Annotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

// EventTypes returns the catalog with live counts
func (s *Session) EventTypes() []annotations.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.List()
}

// Playback operations

// Play starts playback
func (s *Session) Play() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.Play()
}

// Pause stops playback
func (s *Session) Pause() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.Pause()
}

// TogglePlayback flips the playing flag
func (s *Session) TogglePlayback() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.Toggle()
}

// SetRate sets the signed playback rate
func (s *Session) SetRate(rate float64) playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.SetRate(rate)
}

// ReverseDirection negates the playback rate in place
func (s *Session) ReverseDirection() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.Reverse()
}

// SetMuted sets the mute flag
func (s *Session) SetMuted(muted bool) playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.SetMuted(muted)
}

// Seek moves to a global position
func (s *Session) Seek(globalSeconds float64) playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.Seek(globalSeconds)
}

// SeekStep nudges the position by the configured step, large or small,
// backward when back is set.
func (s *Session) SeekStep(large, back bool) playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	step := s.seekStep
	if large {
		step = s.seekStepLarge
	}
	if back {
		step = -step
	}
	return s.playback.SeekBy(step)
}

// Tick advances playback by elapsed real milliseconds
func (s *Session) Tick(elapsedMs float64) playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.Tick(elapsedMs)
}

// SyncLocal reconciles a caller-reported segment-local position
func (s *Session) SyncLocal(reportedOffset float64) playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.SyncLocal(reportedOffset)
}

// PlaybackState returns the current playback state
func (s *Session) PlaybackState() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback.State()
}

// Analytics operations

// CountInRange tallies annotations per type over a closed range, with the
// endpoints clamped into [0, total] first.
func (s *Session) CountInRange(start, end float64) analytics.CountResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics.CountInRange(s.registry.Clamp(start), s.registry.Clamp(end))
}

// Histogram bins annotations of one type over [start, end)
func (s *Session) Histogram(start, end, binWidth float64, eventTypeKey int) ([]analytics.Bin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics.HistogramBins(start, end, binWidth, eventTypeKey)
}
