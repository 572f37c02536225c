package eventtypes

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RenameRequest represents the request body for renaming an event type
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListEventTypes returns the catalog with live counts
// @Summary      List event types
// @Description  Retrieve the event-type catalog with per-type annotation counts, ordered by hotkey
// @Tags         event-types
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.EventTypeListResponse "Catalog with counts"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/event-types [get]
func ListEventTypes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		catalog := session.EventTypes()
		types.SendSuccess(c, types.EventTypeListResponse{
			EventTypes: catalog,
			Count:      len(catalog),
		})
	}
}

// RenameEventType renames a catalog entry and cascades onto annotations
// @Summary      Rename event type
// @Description  Rename an event type. The new name cascades onto every existing annotation of that type.
// @Tags         event-types
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        typeId path int true "Event type hotkey"
// @Param        rename body RenameRequest true "New name"
// @Success      200 {object} types.EventTypeListResponse "Updated catalog"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session or event type not found"
// @Router       /api/v1/sessions/{id}/event-types/{typeId} [put]
func RenameEventType(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := types.LookupSession(c, deps)
		if !ok {
			return
		}

		typeID, ok := types.ParseIntParam(c, "typeId")
		if !ok {
			return
		}

		var req RenameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := session.RenameEventType(typeID, req.Name); err != nil {
			types.SendError(c, err)
			return
		}

		catalog := session.EventTypes()
		types.SendSuccess(c, types.EventTypeListResponse{
			EventTypes: catalog,
			Count:      len(catalog),
		})
	}
}
