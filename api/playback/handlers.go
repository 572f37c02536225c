package playback

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/playback"
)

// RateRequest represents the request body for setting the playback rate
type RateRequest struct {
	Rate *float64 `json:"rate" binding:"required"`
}

// SeekRequest represents the request body for seeking to a global time
type SeekRequest struct {
	GlobalSeconds *float64 `json:"global_seconds" binding:"required"`
}

// StepRequest represents the request body for a keyboard seek step
type StepRequest struct {
	Large bool `json:"large"`
	Back  bool `json:"back"`
}

// TickRequest represents one animation-frame advance
type TickRequest struct {
	ElapsedMs *float64 `json:"elapsed_ms" binding:"required"`
}

// SyncRequest represents the player's reported segment-local position
type SyncRequest struct {
	SegmentOffset *float64 `json:"segment_offset" binding:"required"`
}

// MuteRequest represents the request body for toggling audio
type MuteRequest struct {
	Muted *bool `json:"muted" binding:"required"`
}

func respond(c *gin.Context, state playback.State) {
	types.SendSuccess(c, types.PlaybackResponse{Playback: state})
}

// stateOp wraps a no-body playback operation into a handler
func stateOp(deps *types.Dependencies, op func(*engine.Session) playback.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		respond(c, op(session))
	}
}

// GetState returns the current playback state
// @Summary      Get playback state
// @Description  Retrieve the current playback state with its located segment coordinates
// @Tags         playback
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback [get]
func GetState(deps *types.Dependencies) gin.HandlerFunc {
	return stateOp(deps, func(s *engine.Session) playback.State { return s.PlaybackState() })
}

// Play starts playback
// @Summary      Play
// @Tags         playback
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/play [post]
func Play(deps *types.Dependencies) gin.HandlerFunc {
	return stateOp(deps, func(s *engine.Session) playback.State { return s.Play() })
}

// Pause stops playback
// @Summary      Pause
// @Tags         playback
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/pause [post]
func Pause(deps *types.Dependencies) gin.HandlerFunc {
	return stateOp(deps, func(s *engine.Session) playback.State { return s.Pause() })
}

// Toggle flips between playing and paused
// @Summary      Toggle playback
// @Tags         playback
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/toggle [post]
func Toggle(deps *types.Dependencies) gin.HandlerFunc {
	return stateOp(deps, func(s *engine.Session) playback.State { return s.TogglePlayback() })
}

// Reverse negates the playback direction in place
// @Summary      Reverse direction
// @Description  Negate the playback rate, keeping its magnitude
// @Tags         playback
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/reverse [post]
func Reverse(deps *types.Dependencies) gin.HandlerFunc {
	return stateOp(deps, func(s *engine.Session) playback.State { return s.ReverseDirection() })
}

// SetRate sets the signed playback rate
// @Summary      Set playback rate
// @Description  Set the signed playback rate. Magnitude is clamped to the configured bound; zero is ignored.
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        rate body RateRequest true "Signed rate"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/rate [put]
func SetRate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		var req RateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		respond(c, session.SetRate(*req.Rate))
	}
}

// Seek moves to a global timeline position
// @Summary      Seek
// @Description  Move to a global position, clamped into the timeline. The playing flag is untouched.
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        seek body SeekRequest true "Global offset in seconds"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/seek [put]
func Seek(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		var req SeekRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		respond(c, session.Seek(*req.GlobalSeconds))
	}
}

// Step nudges the position by the session's configured seek step
// @Summary      Seek step
// @Description  Nudge the position by the session's small or large seek step, backward when back is set
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        step body StepRequest true "Step selection"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/step [post]
func Step(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		var req StepRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		respond(c, session.SeekStep(req.Large, req.Back))
	}
}

// Tick advances playback by elapsed wall-clock milliseconds
// @Summary      Tick
// @Description  Advance the playhead by elapsed real milliseconds scaled by the signed rate. Rolls across segment boundaries and pauses at either end of the timeline.
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        tick body TickRequest true "Elapsed real time in milliseconds"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/tick [post]
func Tick(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		var req TickRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		respond(c, session.Tick(*req.ElapsedMs))
	}
}

// Sync reconciles the player's reported segment-local position
// @Summary      Sync local position
// @Description  Reconcile the player's reported segment-local position against the derived one, correcting drift beyond the tolerance
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        sync body SyncRequest true "Reported segment-local offset"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/sync [post]
func Sync(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		var req SyncRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		respond(c, session.SyncLocal(*req.SegmentOffset))
	}
}

// SetMuted sets the mute flag
// @Summary      Mute or unmute
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        mute body MuteRequest true "Mute flag"
// @Success      200 {object} types.PlaybackResponse "Playback state"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/playback/mute [put]
func SetMuted(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}
		var req MuteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		respond(c, session.SetMuted(*req.Muted))
	}
}
