package sessions

import (
	"context"
	"time"

	"github.com/fieldtally/observer-api/internal/engine"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new session persistence service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// SaveSnapshot persists a live session's snapshot under its UUID
func (s *ServiceImpl) SaveSnapshot(ctx context.Context, sessionUUID string, snap engine.Snapshot) error {
	return s.repository.Save(ctx, snapshotToModel(sessionUUID, snap))
}

// LoadSnapshot rebuilds a snapshot from persisted independent fields
func (s *ServiceImpl) LoadSnapshot(ctx context.Context, sessionUUID string) (engine.Snapshot, error) {
	session, err := s.repository.GetByUUID(ctx, sessionUUID)
	if err != nil {
		return engine.Snapshot{}, err
	}
	return modelToSnapshot(session), nil
}

// ListSaved returns summaries of every persisted session
func (s *ServiceImpl) ListSaved(ctx context.Context) ([]SavedSession, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	saved := make([]SavedSession, 0, len(records))
	for _, record := range records {
		saved = append(saved, SavedSession{
			UUID:       record.UUID,
			Name:       record.Name,
			SavedAt:    record.UpdatedAt.UTC().Format(time.RFC3339),
			FirstStart: record.FirstStart,
		})
	}
	return saved, nil
}

// DeleteSaved removes a persisted session
func (s *ServiceImpl) DeleteSaved(ctx context.Context, sessionUUID string) error {
	return s.repository.Delete(ctx, sessionUUID)
}
