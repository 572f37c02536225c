package types

import (
	"github.com/fieldtally/observer-api/internal/analytics"
	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/internal/playback"
	"github.com/fieldtally/observer-api/internal/timeline"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// SessionSummary is the list-view shape of a live session
type SessionSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CreatedAt     string  `json:"created_at"`
	SegmentCount  int     `json:"segment_count"`
	TotalDuration float64 `json:"total_duration"`
	Annotations   int     `json:"annotation_count"`
}

// SessionResponse is the full state of one live session
type SessionResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	CreatedAt     string                   `json:"created_at"`
	TotalDuration float64                  `json:"total_duration"`
	Segments      []timeline.Segment       `json:"segments"`
	EventTypes    []annotations.EventType  `json:"event_types"`
	Annotations   []annotations.Annotation `json:"annotations"`
	Playback      playback.State           `json:"playback"`
}

// SessionListResponse for the session index
type SessionListResponse struct {
	Sessions []SessionSummary `json:"sessions"`
	Count    int              `json:"count"`
}

// SegmentResponse wraps one admitted segment plus the new timeline length
type SegmentResponse struct {
	Segment       timeline.Segment `json:"segment"`
	TotalDuration float64          `json:"total_duration"`
}

// SegmentListResponse for the ordered timeline
type SegmentListResponse struct {
	Segments      []timeline.Segment `json:"segments"`
	TotalDuration float64            `json:"total_duration"`
	Count         int                `json:"count"`
}

// AnnotationListResponse for the ordered annotation list
type AnnotationListResponse struct {
	Annotations []annotations.Annotation `json:"annotations"`
	Count       int                      `json:"count"`
}

// EventTypeListResponse for the catalog with live counts
type EventTypeListResponse struct {
	EventTypes []annotations.EventType `json:"event_types"`
	Count      int                     `json:"count"`
}

// PlaybackResponse carries the playback state after an operation
type PlaybackResponse struct {
	Playback playback.State `json:"playback"`
}

// CountsResponse for range tallies
type CountsResponse struct {
	Result analytics.CountResult `json:"result"`
}

// HistogramResponse for binned densities
type HistogramResponse struct {
	Bins     []analytics.Bin `json:"bins"`
	BinWidth float64         `json:"bin_width"`
	Count    int             `json:"count"`
}
