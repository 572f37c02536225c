package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/internal/engine"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseIntParam extracts and parses a URL parameter as int
// Returns the parsed value and sends error response if parsing fails
func ParseIntParam(c *gin.Context, paramName string) (int, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.Atoi(paramStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return value, true
}

// ParseFloatQuery extracts and parses a query parameter as float64, using
// the fallback when the parameter is absent. Sends an error response and
// returns false when the value is present but malformed.
func ParseFloatQuery(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// LookupSession resolves the :id path parameter against the session manager
// Returns the session and sends a not found response when it is missing
func LookupSession(c *gin.Context, deps *Dependencies) (*engine.Session, bool) {
	session, err := deps.Manager.Get(c.Param("id"))
	if err != nil {
		SendNotFound(c, "Session not found")
		return nil, false
	}
	return session, true
}

// SendError maps a domain error onto its HTTP status and error code
func SendError(c *gin.Context, err error) {
	c.JSON(apperrors.GetHTTPCode(err), ErrorResponse{
		Status:  StatusError,
		Message: err.Error(),
		Error:   string(apperrors.GetCode(err)),
	})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: message})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
