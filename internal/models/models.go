package models

// AllModels returns every model for migration, ordered parents first
func AllModels() []any {
	return []any{
		&Session{},
		&SegmentRecord{},
		&EventTypeRecord{},
		&AnnotationRecord{},
	}
}
