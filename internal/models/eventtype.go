package models

import "gorm.io/gorm"

// EventTypeRecord is one persisted catalog entry. Key is the hotkey-bound
// numeric identity annotations reference; the running count is derived and
// never stored.
type EventTypeRecord struct {
	gorm.Model
	SessionID uint   `json:"session_id" gorm:"not null;index"`
	Key       int    `json:"key" gorm:"not null"`
	Name      string `json:"name" gorm:"not null"`
	Color     string `json:"color"`
}

// TableName returns the table name for the EventTypeRecord model
func (EventTypeRecord) TableName() string {
	return "event_types"
}
