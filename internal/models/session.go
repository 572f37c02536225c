package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is one persisted observation period: the segment list, event-type
// catalog and annotations recorded against a stitched multi-segment timeline.
// Only independent fields are stored; cumulative layout, wall-clock displays
// and counts are re-derived by the engine on restore.
type Session struct {
	gorm.Model
	UUID          string  `json:"uuid" gorm:"uniqueIndex"`
	Name          string  `json:"name"`
	FirstStart    string  `json:"first_start"` // Wall-clock anchor, "HH:MM:SS"
	SeekStep      float64 `json:"seek_step"`
	SeekStepLarge float64 `json:"seek_step_large"`
	SchemaVersion int     `json:"schema_version"`

	Segments    []SegmentRecord    `json:"segments,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	EventTypes  []EventTypeRecord  `json:"event_types,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Annotations []AnnotationRecord `json:"annotations,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate generates a UUID before creating a new session
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}
