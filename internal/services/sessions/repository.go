package sessions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fieldtally/observer-api/internal/models"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new session repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Save upserts a session. Children are replaced wholesale inside one
// transaction so a failed save never leaves a half-written snapshot.
func (r *RepositoryImpl) Save(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Session
		err := tx.Where("uuid = ?", session.UUID).First(&existing).Error
		switch {
		case err == nil:
			session.ID = existing.ID
			for _, child := range []any{&models.SegmentRecord{}, &models.EventTypeRecord{}, &models.AnnotationRecord{}} {
				if err := tx.Where("session_id = ?", existing.ID).Delete(child).Error; err != nil {
					return fmt.Errorf("clearing previous snapshot: %w", err)
				}
			}
			if err := tx.Model(&existing).Updates(map[string]any{
				"name":            session.Name,
				"first_start":     session.FirstStart,
				"seek_step":       session.SeekStep,
				"seek_step_large": session.SeekStepLarge,
				"schema_version":  session.SchemaVersion,
			}).Error; err != nil {
				return fmt.Errorf("updating session: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			base := *session
			base.Segments, base.EventTypes, base.Annotations = nil, nil, nil
			if err := tx.Create(&base).Error; err != nil {
				return fmt.Errorf("creating session: %w", err)
			}
			session.ID = base.ID
		default:
			return fmt.Errorf("looking up session: %w", err)
		}

		for i := range session.Segments {
			session.Segments[i].ID = 0
			session.Segments[i].SessionID = session.ID
		}
		for i := range session.EventTypes {
			session.EventTypes[i].ID = 0
			session.EventTypes[i].SessionID = session.ID
		}
		for i := range session.Annotations {
			session.Annotations[i].ID = 0
			session.Annotations[i].SessionID = session.ID
		}

		if len(session.Segments) > 0 {
			if err := tx.Create(&session.Segments).Error; err != nil {
				return fmt.Errorf("saving segments: %w", err)
			}
		}
		if len(session.EventTypes) > 0 {
			if err := tx.Create(&session.EventTypes).Error; err != nil {
				return fmt.Errorf("saving event types: %w", err)
			}
		}
		if len(session.Annotations) > 0 {
			if err := tx.Create(&session.Annotations).Error; err != nil {
				return fmt.Errorf("saving annotations: %w", err)
			}
		}
		return nil
	})
}

// GetByUUID retrieves a session with all children, segments in timeline
// order and annotations ordered by global offset.
func (r *RepositoryImpl) GetByUUID(ctx context.Context, uuid string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("EventTypes", func(db *gorm.DB) *gorm.DB { return db.Order("key ASC") }).
		Preload("Annotations", func(db *gorm.DB) *gorm.DB { return db.Order("global ASC") }).
		Where("uuid = ?", uuid).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("session", uuid)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return &session, nil
}

// List retrieves all saved sessions without children
func (r *RepositoryImpl) List(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session and its children
func (r *RepositoryImpl) Delete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.Where("uuid = ?", uuid).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("session", uuid)
			}
			return fmt.Errorf("looking up session: %w", err)
		}
		for _, child := range []any{&models.SegmentRecord{}, &models.EventTypeRecord{}, &models.AnnotationRecord{}} {
			if err := tx.Where("session_id = ?", session.ID).Delete(child).Error; err != nil {
				return fmt.Errorf("deleting snapshot children: %w", err)
			}
		}
		if err := tx.Delete(&session).Error; err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		return nil
	})
}
