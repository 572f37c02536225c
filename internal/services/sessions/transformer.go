package sessions

import (
	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/models"
)

// snapshotToModel flattens an engine snapshot into persistence records.
// Only independent fields travel; derived layout stays behind.
func snapshotToModel(sessionUUID string, snap engine.Snapshot) *models.Session {
	session := &models.Session{
		UUID:          sessionUUID,
		Name:          snap.Name,
		FirstStart:    snap.FirstStart,
		SeekStep:      snap.SeekStep,
		SeekStepLarge: snap.SeekStepLarge,
		SchemaVersion: snap.Version,
	}

	for i, seg := range snap.Segments {
		session.Segments = append(session.Segments, models.SegmentRecord{
			UUID:     seg.ID,
			Position: i,
			Name:     seg.Name,
			Duration: seg.Duration,
		})
	}
	for _, et := range snap.EventTypes {
		session.EventTypes = append(session.EventTypes, models.EventTypeRecord{
			Key:   et.Key,
			Name:  et.Name,
			Color: et.Color,
		})
	}
	for _, ann := range snap.Annotations {
		session.Annotations = append(session.Annotations, models.AnnotationRecord{
			UUID:          ann.ID,
			EventTypeKey:  ann.EventTypeKey,
			EventTypeName: ann.EventTypeName,
			Global:        ann.Global,
			SegmentOffset: ann.SegmentOffset,
			WallClock:     ann.WallClock,
			SegmentUUID:   ann.SegmentID,
			SegmentName:   ann.SegmentName,
			Note:          ann.Note,
		})
	}
	return session
}

// modelToSnapshot rebuilds a snapshot from persistence records. The engine
// re-derives every cached field when the snapshot is restored.
func modelToSnapshot(session *models.Session) engine.Snapshot {
	snap := engine.Snapshot{
		Version:       session.SchemaVersion,
		Name:          session.Name,
		FirstStart:    session.FirstStart,
		SeekStep:      session.SeekStep,
		SeekStepLarge: session.SeekStepLarge,
	}
	if snap.Version == 0 {
		snap.Version = engine.SnapshotVersion
	}

	for _, seg := range session.Segments {
		snap.Segments = append(snap.Segments, engine.SegmentSnapshot{
			ID:       seg.UUID,
			Name:     seg.Name,
			Duration: seg.Duration,
		})
	}
	for _, et := range session.EventTypes {
		snap.EventTypes = append(snap.EventTypes, engine.EventTypeSnapshot{
			Key:   et.Key,
			Name:  et.Name,
			Color: et.Color,
		})
	}
	for _, ann := range session.Annotations {
		snap.Annotations = append(snap.Annotations, annotations.Annotation{
			ID:            ann.UUID,
			EventTypeKey:  ann.EventTypeKey,
			EventTypeName: ann.EventTypeName,
			Global:        ann.Global,
			SegmentOffset: ann.SegmentOffset,
			SegmentID:     ann.SegmentUUID,
			SegmentName:   ann.SegmentName,
			Note:          ann.Note,
		})
	}
	return snap
}
