package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/internal/database"
	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/models"
	"github.com/fieldtally/observer-api/pkg/config"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

func testService(t *testing.T) Service {
	t.Helper()

	db, err := database.Initialize(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	return NewService(NewRepository(db.DB))
}

func sampleSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Version:       engine.SnapshotVersion,
		Name:          "morning shift",
		FirstStart:    "10:00:00",
		SeekStep:      5,
		SeekStepLarge: 60,
		Segments: []engine.SegmentSnapshot{
			{ID: "seg-a", Name: "cam01_100000.mp4", Duration: 100},
			{ID: "seg-b", Name: "cam01_100140.mp4", Duration: 50},
		},
		EventTypes: []engine.EventTypeSnapshot{
			{Key: 1, Name: "Pedestrian crossing", Color: "#4caf50"},
			{Key: 2, Name: "Cyclist crossing", Color: "#2196f3"},
		},
		Annotations: []annotations.Annotation{
			{ID: "ann-1", EventTypeKey: 1, EventTypeName: "Pedestrian crossing", Global: 42.5, SegmentOffset: 42.5, SegmentID: "seg-a", SegmentName: "cam01_100000.mp4", Note: "two pedestrians"},
			{ID: "ann-2", EventTypeKey: 2, EventTypeName: "Cyclist crossing", Global: 120, SegmentOffset: 20, SegmentID: "seg-b", SegmentName: "cam01_100140.mp4"},
		},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveSnapshot(ctx, "session-1", sampleSnapshot()))

	loaded, err := svc.LoadSnapshot(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, "morning shift", loaded.Name)
	assert.Equal(t, "10:00:00", loaded.FirstStart)
	assert.Equal(t, 5.0, loaded.SeekStep)
	assert.Equal(t, 60.0, loaded.SeekStepLarge)

	require.Len(t, loaded.Segments, 2)
	assert.Equal(t, "seg-a", loaded.Segments[0].ID)
	assert.Equal(t, "seg-b", loaded.Segments[1].ID)
	assert.Equal(t, 50.0, loaded.Segments[1].Duration)

	require.Len(t, loaded.EventTypes, 2)
	assert.Equal(t, "Pedestrian crossing", loaded.EventTypes[0].Name)

	require.Len(t, loaded.Annotations, 2)
	assert.Equal(t, "ann-1", loaded.Annotations[0].ID)
	assert.Equal(t, "two pedestrians", loaded.Annotations[0].Note)
	assert.Equal(t, 120.0, loaded.Annotations[1].Global)
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveSnapshot(ctx, "session-1", sampleSnapshot()))

	updated := sampleSnapshot()
	updated.Name = "evening shift"
	updated.Segments = updated.Segments[:1]
	updated.Annotations = updated.Annotations[:1]
	require.NoError(t, svc.SaveSnapshot(ctx, "session-1", updated))

	loaded, err := svc.LoadSnapshot(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "evening shift", loaded.Name)
	assert.Len(t, loaded.Segments, 1)
	assert.Len(t, loaded.Annotations, 1)

	saved, err := svc.ListSaved(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestLoadSnapshotRestoresSession(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveSnapshot(ctx, "session-1", sampleSnapshot()))
	loaded, err := svc.LoadSnapshot(ctx, "session-1")
	require.NoError(t, err)

	session := engine.NewSession("restored", engine.Options{})
	require.NoError(t, session.Restore(loaded))

	anns := session.Annotations()
	require.Len(t, anns, 2)
	assert.Equal(t, "10:00:42", anns[0].WallClock)

	types := session.EventTypes()
	require.Len(t, types, 2)
	assert.Equal(t, 1, types[0].Count)
	assert.Equal(t, 1, types[1].Count)
}

func TestLoadSnapshotNotFound(t *testing.T) {
	svc := testService(t)

	_, err := svc.LoadSnapshot(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestListSavedAndDelete(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	first := sampleSnapshot()
	require.NoError(t, svc.SaveSnapshot(ctx, "session-1", first))

	second := sampleSnapshot()
	second.Name = "afternoon shift"
	require.NoError(t, svc.SaveSnapshot(ctx, "session-2", second))

	saved, err := svc.ListSaved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, s := range saved {
		assert.NotEmpty(t, s.SavedAt)
	}

	require.NoError(t, svc.DeleteSaved(ctx, "session-1"))

	saved, err = svc.ListSaved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "session-2", saved[0].UUID)

	err = svc.DeleteSaved(ctx, "session-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}
