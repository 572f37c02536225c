package segments

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// AppendSegmentRequest represents the decoder hand-off for one media file
type AppendSegmentRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationSeconds float64 `json:"duration_seconds"`
	ModifiedAt      string  `json:"modified_at"`
}

// ReorderSegmentRequest represents the request body for moving a segment
type ReorderSegmentRequest struct {
	NewIndex *int `json:"new_index" binding:"required"`
}

// StartTimeRequest represents the request body for re-anchoring the timeline
type StartTimeRequest struct {
	Start string `json:"start" binding:"required"`
}

// AppendSegment admits a decoded media file at the tail of the timeline
// @Summary      Append segment
// @Description  Admit a decoded media file as the timeline's last segment. A non-positive duration means decoding failed and the file is rejected.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        segment body AppendSegmentRequest true "Decoded segment metadata"
// @Success      201 {object} types.SegmentResponse "Admitted segment"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      422 {object} types.ErrorResponse "Undecodable segment"
// @Router       /api/v1/sessions/{id}/segments [post]
func AppendSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req AppendSegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		modTime := time.Time{}
		if req.ModifiedAt != "" {
			parsed, err := time.Parse(time.RFC3339, req.ModifiedAt)
			if err != nil {
				types.SendBadRequest(c, "Invalid modified_at, expected RFC3339")
				return
			}
			modTime = parsed
		}

		segment, err := session.AppendSegment(req.Name, modTime, req.DurationSeconds)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.SegmentResponse{
			Segment:       segment,
			TotalDuration: session.TotalDuration(),
		})
	}
}

// ListSegments returns the ordered timeline
// @Summary      List segments
// @Description  Retrieve the ordered segment list with derived global starts and wall-clock anchors
// @Tags         segments
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SegmentListResponse "Ordered segments"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/segments [get]
func ListSegments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		segments := session.Segments()
		types.SendSuccess(c, types.SegmentListResponse{
			Segments:      segments,
			TotalDuration: session.TotalDuration(),
			Count:         len(segments),
		})
	}
}

// RemoveSegment removes a segment from the timeline
// @Summary      Remove segment
// @Description  Remove a segment. Blocked while any annotation references it.
// @Tags         segments
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        segmentId path string true "Segment ID"
// @Success      200 {object} types.SegmentListResponse "Remaining segments"
// @Failure      404 {object} types.ErrorResponse "Session or segment not found"
// @Failure      409 {object} types.ErrorResponse "Segment referenced by annotations"
// @Router       /api/v1/sessions/{id}/segments/{segmentId} [delete]
func RemoveSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		if err := session.RemoveSegment(c.Param("segmentId")); err != nil {
			types.SendError(c, err)
			return
		}

		segments := session.Segments()
		types.SendSuccess(c, types.SegmentListResponse{
			Segments:      segments,
			TotalDuration: session.TotalDuration(),
			Count:         len(segments),
		})
	}
}

// ReorderSegment moves a segment to a new timeline index
// @Summary      Reorder segment
// @Description  Move a segment to a new index. Blocked while any annotation exists, because captured segment associations would be invalidated.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        segmentId path string true "Segment ID"
// @Param        reorder body ReorderSegmentRequest true "Target index (clamped into range)"
// @Success      200 {object} types.SegmentListResponse "Reordered segments"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session or segment not found"
// @Failure      409 {object} types.ErrorResponse "Annotations exist"
// @Router       /api/v1/sessions/{id}/segments/{segmentId}/reorder [post]
func ReorderSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req ReorderSegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.ReorderSegment(c.Param("segmentId"), *req.NewIndex); err != nil {
			types.SendError(c, err)
			return
		}

		segments := session.Segments()
		types.SendSuccess(c, types.SegmentListResponse{
			Segments:      segments,
			TotalDuration: session.TotalDuration(),
			Count:         len(segments),
		})
	}
}

// SetStartTime re-anchors the first segment's wall-clock start
// @Summary      Set timeline start time
// @Description  Override the first segment's wall-clock anchor and refresh every derived display time
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        start body StartTimeRequest true "New anchor as HH:MM:SS"
// @Success      200 {object} types.SegmentListResponse "Re-anchored segments"
// @Failure      400 {object} types.ErrorResponse "Malformed time"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Empty timeline"
// @Router       /api/v1/sessions/{id}/segments/start-time [put]
func SetStartTime(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		var req StartTimeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.SetStartTime(req.Start); err != nil {
			types.SendError(c, err)
			return
		}

		segments := session.Segments()
		types.SendSuccess(c, types.SegmentListResponse{
			Segments:      segments,
			TotalDuration: session.TotalDuration(),
			Count:         len(segments),
		})
	}
}
