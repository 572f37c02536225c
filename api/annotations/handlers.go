package annotations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RecordAnnotationRequest represents the hotkey press payload
type RecordAnnotationRequest struct {
	EventTypeID int `json:"event_type_id" binding:"required"`
}

// DeleteClosestRequest represents the request body for undo-at-position
type DeleteClosestRequest struct {
	GlobalSeconds *float64 `json:"global_seconds" binding:"required"`
}

// ReassignRequest represents the request body for moving an annotation
// to a different event type
type ReassignRequest struct {
	EventTypeID int `json:"event_type_id" binding:"required"`
}

// NoteRequest represents the request body for replacing an annotation note
type NoteRequest struct {
	Note string `json:"note"`
}

// RecordAnnotation captures an annotation at the current playback position
// @Summary      Record annotation
// @Description  Capture an annotation of the given event type at the session's current playback position
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        annotation body RecordAnnotationRequest true "Event type hotkey"
// @Success      201 {object} annotations.Annotation "Recorded annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session or event type not found"
// @Failure      409 {object} types.ErrorResponse "Empty timeline"
// @Router       /api/v1/sessions/{id}/annotations [post]
func RecordAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req RecordAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		annotation, err := session.Record(req.EventTypeID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, annotation)
	}
}

// ListAnnotations returns the ordered annotation list
// @Summary      List annotations
// @Description  Retrieve all annotations ordered by global timeline offset
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.AnnotationListResponse "Ordered annotations"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/annotations [get]
func ListAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		anns := session.Annotations()
		types.SendSuccess(c, types.AnnotationListResponse{
			Annotations: anns,
			Count:       len(anns),
		})
	}
}

// DeleteAnnotation removes an annotation by ID
// @Summary      Delete annotation
// @Description  Remove an annotation. Deleting an already-removed annotation is a no-op.
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        annotationId path string true "Annotation ID"
// @Success      200 {object} object{deleted=bool} "Deletion outcome"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/annotations/{annotationId} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		deleted := session.DeleteAnnotation(c.Param("annotationId"))
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}

// DeleteClosest removes the annotation nearest to a global time
// @Summary      Delete closest annotation
// @Description  Remove the annotation whose global offset is nearest to the given time. Ties resolve to the earliest stored annotation.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        position body DeleteClosestRequest true "Global timeline offset in seconds"
// @Success      200 {object} object{deleted=bool} "Deletion outcome with removed annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/annotations/delete-closest [post]
func DeleteClosest(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req DeleteClosestRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		removed, found := session.DeleteClosestAnnotation(*req.GlobalSeconds)
		if !found {
			c.JSON(http.StatusOK, gin.H{"deleted": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true, "annotation": removed})
	}
}

// ReassignAnnotation moves an annotation to a different event type
// @Summary      Reassign annotation
// @Description  Move an annotation to a different event type, keeping counts consistent
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        annotationId path string true "Annotation ID"
// @Param        target body ReassignRequest true "Target event type"
// @Success      200 {object} annotations.Annotation "Updated annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session, annotation or event type not found"
// @Router       /api/v1/sessions/{id}/annotations/{annotationId}/event-type [put]
func ReassignAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req ReassignRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		annotation, err := session.ReassignAnnotation(c.Param("annotationId"), req.EventTypeID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, annotation)
	}
}

// SetNote replaces an annotation's free-text note
// @Summary      Set annotation note
// @Description  Replace an annotation's free-text note
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        annotationId path string true "Annotation ID"
// @Param        note body NoteRequest true "Note text"
// @Success      200 {object} object{updated=bool} "Update outcome"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session or annotation not found"
// @Router       /api/v1/sessions/{id}/annotations/{annotationId}/note [put]
func SetNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req NoteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if !session.SetAnnotationNote(c.Param("annotationId"), req.Note) {
			types.SendNotFound(c, "Annotation not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}
