package models

import "gorm.io/gorm"

// SegmentRecord is one persisted video segment. Position preserves the
// timeline order; the derived global start offset and chained wall-clock
// start are intentionally not stored.
type SegmentRecord struct {
	gorm.Model
	UUID      string  `json:"uuid" gorm:"index"`
	SessionID uint    `json:"session_id" gorm:"not null;index"`
	Position  int     `json:"position" gorm:"not null"`
	Name      string  `json:"name" gorm:"not null"`
	Duration  float64 `json:"duration" gorm:"not null"` // Seconds, always > 0
}

// TableName returns the table name for the SegmentRecord model
func (SegmentRecord) TableName() string {
	return "segments"
}
