package analytics

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// GetCounts tallies annotations per event type over a time range
// @Summary      Count annotations in range
// @Description  Tally annotations per event type over the closed range [start, end]. Endpoints are clamped into the timeline; a start beyond end yields all zeros.
// @Tags         analytics
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        start query number false "Range start in global seconds (default 0)"
// @Param        end query number false "Range end in global seconds (default total duration)"
// @Success      200 {object} types.CountsResponse "Per-type counts and grand total"
// @Failure      400 {object} types.ErrorResponse "Malformed query"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/analytics/counts [get]
func GetCounts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		start, ok := types.ParseFloatQuery(c, "start", 0)
		if !ok {
			return
		}
		end, ok := types.ParseFloatQuery(c, "end", session.TotalDuration())
		if !ok {
			return
		}

		types.SendSuccess(c, types.CountsResponse{
			Result: session.CountInRange(start, end),
		})
	}
}

// GetHistogram bins annotations of one event type over a time range
// @Summary      Histogram of one event type
// @Description  Bin annotations of one event type into half-open bins of the given width over [start, end). The final bin is truncated to the range end.
// @Tags         analytics
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        event_type_id query int true "Event type hotkey"
// @Param        bin_width query number true "Bin width in seconds"
// @Param        start query number false "Range start in global seconds (default 0)"
// @Param        end query number false "Range end in global seconds (default total duration)"
// @Success      200 {object} types.HistogramResponse "Binned densities"
// @Failure      400 {object} types.ErrorResponse "Malformed query or non-positive bin width"
// @Failure      404 {object} types.ErrorResponse "Session or event type not found"
// @Router       /api/v1/sessions/{id}/analytics/histogram [get]
func GetHistogram(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		eventTypeID, err := strconv.Atoi(c.Query("event_type_id"))
		if err != nil {
			types.SendBadRequest(c, "Invalid event_type_id")
			return
		}
		binWidth, ok := types.ParseFloatQuery(c, "bin_width", 0)
		if !ok {
			return
		}
		start, ok := types.ParseFloatQuery(c, "start", 0)
		if !ok {
			return
		}
		end, ok := types.ParseFloatQuery(c, "end", session.TotalDuration())
		if !ok {
			return
		}

		bins, err := session.Histogram(start, end, binWidth, eventTypeID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.HistogramResponse{
			Bins:     bins,
			BinWidth: binWidth,
			Count:    len(bins),
		})
	}
}
