package sessions

import (
	"context"

	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/models"
)

// Repository defines the interface for session snapshot data access
type Repository interface {
	// Save upserts a session and its children wholesale
	Save(ctx context.Context, session *models.Session) error

	// GetByUUID retrieves a session with segments, event types and annotations
	GetByUUID(ctx context.Context, uuid string) (*models.Session, error)

	// List retrieves all saved sessions without children
	List(ctx context.Context) ([]models.Session, error)

	// Delete removes a session and its children
	Delete(ctx context.Context, uuid string) error
}

// Service defines the interface for session persistence business logic
type Service interface {
	// SaveSnapshot persists a live session's snapshot under its UUID
	SaveSnapshot(ctx context.Context, sessionUUID string, snap engine.Snapshot) error

	// LoadSnapshot rebuilds a snapshot from persisted independent fields
	LoadSnapshot(ctx context.Context, sessionUUID string) (engine.Snapshot, error)

	// ListSaved returns summaries of every persisted session
	ListSaved(ctx context.Context) ([]SavedSession, error)

	// DeleteSaved removes a persisted session
	DeleteSaved(ctx context.Context, sessionUUID string) error
}

// SavedSession summarizes one persisted session for listings
type SavedSession struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	SavedAt    string `json:"saved_at"`
	FirstStart string `json:"first_start"`
}
