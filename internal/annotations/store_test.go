package annotations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtally/observer-api/internal/timeline"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

func testFixture(t *testing.T) (*Catalog, *Store, *timeline.Registry) {
	t.Helper()

	catalog := NewCatalog()
	catalog.Add(1, "Pedestrian crossing", "#4caf50")
	catalog.Add(3, "Jaywalking", "#f44336")

	registry := timeline.NewRegistry()
	for _, d := range []float64{100, 50, 200} {
		_, err := registry.Append("clip.mp4", time.Time{}, d)
		require.NoError(t, err)
	}
	require.NoError(t, registry.SetFirstStart("10:00:00"))

	return catalog, NewStore(catalog), registry
}

func recordAt(t *testing.T, s *Store, r *timeline.Registry, key int, global float64) Annotation {
	t.Helper()
	ann, err := s.Record(key, r.Locate(global), r)
	require.NoError(t, err)
	return ann
}

func TestRecordCapturesPositionAndDenormalizedFields(t *testing.T) {
	_, store, registry := testFixture(t)

	ann := recordAt(t, store, registry, 3, 125)

	assert.NotEmpty(t, ann.ID)
	assert.Equal(t, 3, ann.EventTypeKey)
	assert.Equal(t, "Jaywalking", ann.EventTypeName)
	assert.Equal(t, 125.0, ann.Global)
	assert.InDelta(t, 25.0, ann.SegmentOffset, 1e-9)
	assert.Equal(t, "10:02:05", ann.WallClock)
	assert.NotEmpty(t, ann.SegmentID)
	assert.Equal(t, "clip.mp4", ann.SegmentName)
}

func TestRecordUnknownEventType(t *testing.T) {
	_, store, registry := testFixture(t)

	_, err := store.Record(9, registry.Locate(10), registry)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnknownEventType))
	assert.Equal(t, 0, store.Len())
}

func TestRecordEmptyRegistry(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(1, "Pedestrian crossing", "#4caf50")
	store := NewStore(catalog)
	registry := timeline.NewRegistry()

	_, err := store.Record(1, registry.Locate(0), registry)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNoActiveSegment))
}

func TestRecordMaintainsSortedOrder(t *testing.T) {
	_, store, registry := testFixture(t)

	for _, g := range []float64{200, 10, 340, 10, 125} {
		recordAt(t, store, registry, 1, g)
	}

	list := store.List()
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Global, list[i].Global)
	}
}

func TestRecordIncrementsCount(t *testing.T) {
	catalog, store, registry := testFixture(t)

	recordAt(t, store, registry, 1, 10)
	recordAt(t, store, registry, 1, 20)
	recordAt(t, store, registry, 3, 30)

	et, _ := catalog.Get(1)
	assert.Equal(t, 2, et.Count)
	et, _ = catalog.Get(3)
	assert.Equal(t, 1, et.Count)
}

func TestDelete(t *testing.T) {
	catalog, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 1, 10)

	assert.True(t, store.Delete(ann.ID))
	assert.Equal(t, 0, store.Len())

	et, _ := catalog.Get(1)
	assert.Equal(t, 0, et.Count)

	// Silent no-op on repeat, count floored at zero
	assert.False(t, store.Delete(ann.ID))
	et, _ = catalog.Get(1)
	assert.Equal(t, 0, et.Count)
}

func TestDeleteClosestTo(t *testing.T) {
	_, store, registry := testFixture(t)
	recordAt(t, store, registry, 1, 10)
	recordAt(t, store, registry, 1, 100)
	recordAt(t, store, registry, 1, 300)

	ann, ok := store.DeleteClosestTo(110)
	require.True(t, ok)
	assert.Equal(t, 100.0, ann.Global)
	assert.Equal(t, 2, store.Len())
}

func TestDeleteClosestToTieBreaksEarliest(t *testing.T) {
	_, store, registry := testFixture(t)
	first := recordAt(t, store, registry, 1, 90)
	recordAt(t, store, registry, 1, 110)

	ann, ok := store.DeleteClosestTo(100)
	require.True(t, ok)
	assert.Equal(t, first.ID, ann.ID)
}

func TestDeleteClosestToEmptyStore(t *testing.T) {
	_, store, _ := testFixture(t)

	_, ok := store.DeleteClosestTo(50)
	assert.False(t, ok)
}

func TestRecordThenDeleteClosestIsIdempotent(t *testing.T) {
	catalog, store, registry := testFixture(t)
	recordAt(t, store, registry, 1, 10)
	recordAt(t, store, registry, 3, 200)
	before := store.List()

	recordAt(t, store, registry, 3, 125)
	_, ok := store.DeleteClosestTo(125)
	require.True(t, ok)

	assert.Equal(t, before, store.List())
	et, _ := catalog.Get(3)
	assert.Equal(t, 1, et.Count)
}

func TestReassign(t *testing.T) {
	catalog, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 1, 50)

	updated, err := store.Reassign(ann.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.EventTypeKey)
	assert.Equal(t, "Jaywalking", updated.EventTypeName)
	assert.Equal(t, ann.Global, updated.Global)

	// Counts move atomically
	et, _ := catalog.Get(1)
	assert.Equal(t, 0, et.Count)
	et, _ = catalog.Get(3)
	assert.Equal(t, 1, et.Count)
}

func TestReassignUnknownType(t *testing.T) {
	_, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 1, 50)

	_, err := store.Reassign(ann.ID, 77)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnknownEventType))
}

func TestRenameEventTypeCascades(t *testing.T) {
	catalog, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 3, 125)
	require.True(t, store.SetNote(ann.ID, "two pedestrians"))

	require.NoError(t, store.RenameEventType(3, "Jaywalk"))

	got, ok := store.Get(ann.ID)
	require.True(t, ok)
	assert.Equal(t, "Jaywalk", got.EventTypeName)
	// Identity, offsets and note are untouched by the cascade
	assert.Equal(t, ann.ID, got.ID)
	assert.Equal(t, ann.Global, got.Global)
	assert.Equal(t, ann.SegmentOffset, got.SegmentOffset)
	assert.Equal(t, "two pedestrians", got.Note)

	et, _ := catalog.Get(3)
	assert.Equal(t, "Jaywalk", et.Name)
}

func TestSetNote(t *testing.T) {
	_, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 1, 10)

	assert.True(t, store.SetNote(ann.ID, "stroller"))
	got, _ := store.Get(ann.ID)
	assert.Equal(t, "stroller", got.Note)

	assert.False(t, store.SetNote("missing", "x"))
}

func TestRefreshDisplayTimes(t *testing.T) {
	_, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 1, 125)
	assert.Equal(t, "10:02:05", ann.WallClock)

	require.NoError(t, registry.SetFirstStart("08:00:00"))
	store.RefreshDisplayTimes(registry)

	got, _ := store.Get(ann.ID)
	assert.Equal(t, "08:02:05", got.WallClock)
}

func TestReferencesSegment(t *testing.T) {
	_, store, registry := testFixture(t)
	ann := recordAt(t, store, registry, 1, 10)

	assert.True(t, store.ReferencesSegment(ann.SegmentID))
	assert.False(t, store.ReferencesSegment("other"))
}

func TestRestoreRecountsAndSorts(t *testing.T) {
	catalog, store, _ := testFixture(t)

	store.Restore([]Annotation{
		{ID: "b", EventTypeKey: 3, Global: 200},
		{ID: "a", EventTypeKey: 1, Global: 10},
		{ID: "c", EventTypeKey: 3, Global: 50},
	})

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "b", list[2].ID)

	et, _ := catalog.Get(3)
	assert.Equal(t, 2, et.Count)
	et, _ = catalog.Get(1)
	assert.Equal(t, 1, et.Count)
}
