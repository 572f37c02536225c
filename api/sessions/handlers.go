package sessions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/export"
)

// CreateSessionRequest represents the request body for creating a session
type CreateSessionRequest struct {
	Name      string           `json:"name"`
	SavedUUID string           `json:"saved_uuid,omitempty"`
	Snapshot  *engine.Snapshot `json:"snapshot,omitempty"`
}

// sessionResponse builds the full-state view of a live session
func sessionResponse(s *engine.Session) types.SessionResponse {
	return types.SessionResponse{
		ID:            s.ID,
		Name:          s.Name,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		TotalDuration: s.TotalDuration(),
		Segments:      s.Segments(),
		EventTypes:    s.EventTypes(),
		Annotations:   s.Annotations(),
		Playback:      s.PlaybackState(),
	}
}

// requireService rejects persistence-backed requests when the server
// runs without a configured database
func requireService(c *gin.Context, deps *types.Dependencies) bool {
	if deps.SessionService == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Session persistence is not configured",
		})
		return false
	}
	return true
}

// CreateSession starts a new observation session
// @Summary      Create session
// @Description  Start a new session, optionally restoring state from an inline snapshot or a previously saved session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body CreateSessionRequest true "Session name plus optional restore source"
// @Success      201 {object} types.SessionResponse "Created session"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Saved session not found"
// @Router       /api/v1/sessions [post]
func CreateSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		snapshot := req.Snapshot
		if req.SavedUUID != "" {
			if !requireService(c, deps) {
				return
			}
			snap, err := deps.SessionService.LoadSnapshot(c.Request.Context(), req.SavedUUID)
			if err != nil {
				types.SendError(c, err)
				return
			}
			snapshot = &snap
		}

		session := deps.Manager.Create(req.Name)
		if snapshot != nil {
			if err := session.Restore(*snapshot); err != nil {
				_ = deps.Manager.Delete(session.ID)
				types.SendError(c, err)
				return
			}
		}

		types.SendCreated(c, sessionResponse(session))
	}
}

// ListSessions returns all live sessions
// @Summary      List sessions
// @Description  List live sessions ordered by creation time
// @Tags         sessions
// @Produce      json
// @Success      200 {object} types.SessionListResponse "Live sessions"
// @Router       /api/v1/sessions [get]
func ListSessions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		live := deps.Manager.List()
		summaries := make([]types.SessionSummary, 0, len(live))
		for _, s := range live {
			summaries = append(summaries, types.SessionSummary{
				ID:            s.ID,
				Name:          s.Name,
				CreatedAt:     s.CreatedAt.Format(time.RFC3339),
				SegmentCount:  len(s.Segments()),
				TotalDuration: s.TotalDuration(),
				Annotations:   len(s.Annotations()),
			})
		}

		types.SendSuccess(c, types.SessionListResponse{
			Sessions: summaries,
			Count:    len(summaries),
		})
	}
}

// GetSession returns a session's full state
// @Summary      Get session
// @Description  Retrieve the full state of one live session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [get]
func GetSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		types.SendSuccess(c, sessionResponse(session))
	}
}

// DeleteSession discards a live session
// @Summary      Delete session
// @Description  Discard a live session without touching saved snapshots
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.BaseResponse "Session deleted"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [delete]
func DeleteSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Manager.Delete(c.Param("id")); err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}
		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Session deleted",
		})
	}
}

// SaveSession persists a session snapshot
// @Summary      Save session
// @Description  Snapshot the session and persist it for later restore
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.BaseResponse "Session saved"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      500 {object} types.ErrorResponse "Persistence failure"
// @Failure      503 {object} types.ErrorResponse "Persistence not configured"
// @Router       /api/v1/sessions/{id}/save [post]
func SaveSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireService(c, deps) {
			return
		}
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		if err := deps.SessionService.SaveSnapshot(c.Request.Context(), session.ID, session.Snapshot()); err != nil {
			types.SendInternalError(c, "Failed to save session")
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Session saved",
		})
	}
}

// ExportSession streams the annotation list as a CSV download
// @Summary      Export annotations
// @Description  Download the ordered annotation list as CSV
// @Tags         sessions
// @Produce      text/csv
// @Param        id path string true "Session ID"
// @Success      200 {string} string "CSV content"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/export [get]
func ExportSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		delimiter := ","
		if deps.Config != nil && deps.Config.Export.Delimiter != "" {
			delimiter = deps.Config.Export.Delimiter
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="`+export.Filename(session.Name)+`"`)
		c.Status(http.StatusOK)
		if err := export.WriteCSV(c.Writer, session.Annotations(), delimiter); err != nil {
			// Headers are already out; nothing useful left to send.
			_ = c.Error(err)
		}
	}
}

// ListSaved returns summaries of persisted sessions
// @Summary      List saved sessions
// @Description  List persisted session snapshots, most recently saved first
// @Tags         sessions
// @Produce      json
// @Success      200 {object} object{saved=[]sessions.SavedSession} "Saved sessions"
// @Failure      500 {object} types.ErrorResponse "Persistence failure"
// @Failure      503 {object} types.ErrorResponse "Persistence not configured"
// @Router       /api/v1/sessions/saved [get]
func ListSaved(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireService(c, deps) {
			return
		}
		saved, err := deps.SessionService.ListSaved(c.Request.Context())
		if err != nil {
			types.SendInternalError(c, "Failed to list saved sessions")
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": saved, "count": len(saved)})
	}
}

// DeleteSaved removes a persisted session snapshot
// @Summary      Delete saved session
// @Description  Remove a persisted session snapshot
// @Tags         sessions
// @Produce      json
// @Param        uuid path string true "Saved session UUID"
// @Success      200 {object} types.BaseResponse "Saved session deleted"
// @Failure      404 {object} types.ErrorResponse "Saved session not found"
// @Failure      503 {object} types.ErrorResponse "Persistence not configured"
// @Router       /api/v1/sessions/saved/{uuid} [delete]
func DeleteSaved(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireService(c, deps) {
			return
		}
		if err := deps.SessionService.DeleteSaved(c.Request.Context(), c.Param("uuid")); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Saved session deleted",
		})
	}
}
