package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnotationRecord is one persisted recorded occurrence. EventTypeName and
// SegmentName are denormalized copies kept for historical fidelity; the
// wall-clock display is re-derived on restore and stored only for export
// consumers reading the database directly.
type AnnotationRecord struct {
	gorm.Model
	UUID          string  `json:"uuid" gorm:"uniqueIndex"`
	SessionID     uint    `json:"session_id" gorm:"not null;index"`
	EventTypeKey  int     `json:"event_type_key" gorm:"not null"`
	EventTypeName string  `json:"event_type_name"`
	Global        float64 `json:"global" gorm:"not null;index"` // Seconds from timeline start
	SegmentOffset float64 `json:"segment_offset"`
	WallClock     string  `json:"wall_clock"`
	SegmentUUID   string  `json:"segment_uuid"`
	SegmentName   string  `json:"segment_name"`
	Note          string  `json:"note"`
}

// BeforeCreate generates a UUID before creating a new annotation record
func (a *AnnotationRecord) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the AnnotationRecord model
func (AnnotationRecord) TableName() string {
	return "annotations"
}
