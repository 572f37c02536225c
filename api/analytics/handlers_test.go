package analytics_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsapi "github.com/fieldtally/observer-api/api/analytics"
	"github.com/fieldtally/observer-api/api/types"
	"github.com/fieldtally/observer-api/internal/engine"
)

func setupAnalyticsTest(t *testing.T) (*gin.Engine, *engine.Session) {
	gin.SetMode(gin.TestMode)

	manager := engine.NewManager(engine.Options{
		EventTypes: []engine.EventTypeSeed{
			{Key: 1, Name: "Pedestrian crossing", Color: "#4caf50"},
			{Key: 2, Name: "Cyclist crossing", Color: "#2196f3"},
		},
	})
	deps := &types.Dependencies{Manager: manager}

	router := gin.New()
	analyticsapi.RegisterRoutes(router.Group("/sessions/:id/analytics"), deps)

	session := manager.Create("test session")
	_, err := session.AppendSegment("crossing_10-00-00.mp4", time.Time{}, 300)
	require.NoError(t, err)

	for _, global := range []float64{10, 70, 70, 250, 299} {
		session.Seek(global)
		_, err := session.Record(1)
		require.NoError(t, err)
	}
	session.Seek(70)
	_, err = session.Record(2)
	require.NoError(t, err)

	return router, session
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetCounts(t *testing.T) {
	router, session := setupAnalyticsTest(t)

	t.Run("closed range includes both endpoints", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/counts?start=10&end=70", session.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var response types.CountsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 4, response.Result.Total)
		assert.Equal(t, 3, response.Result.Counts[0].Count)
		assert.Equal(t, 1, response.Result.Counts[1].Count)
	})

	t.Run("defaults cover the whole timeline", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/counts", session.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var response types.CountsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 6, response.Result.Total)
	})

	t.Run("inverted range yields zeros", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/counts?start=200&end=100", session.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var response types.CountsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Result.Total)
	})

	t.Run("malformed query", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/counts?start=abc", session.ID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetHistogram(t *testing.T) {
	router, session := setupAnalyticsTest(t)

	t.Run("sixty second bins over the timeline", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/histogram?event_type_id=1&bin_width=60&start=0&end=300", session.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var response types.HistogramResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 5, response.Count)

		counts := make([]int, 0, len(response.Bins))
		for _, bin := range response.Bins {
			counts = append(counts, bin.Count)
		}
		assert.Equal(t, []int{1, 2, 0, 0, 2}, counts)
	})

	t.Run("non-positive bin width", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/histogram?event_type_id=1&bin_width=0", session.ID))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "INVALID_BIN_WIDTH", response.Error)
	})

	t.Run("unknown event type", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/histogram?event_type_id=9&bin_width=60", session.ID))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing event type id", func(t *testing.T) {
		w := get(t, router, fmt.Sprintf("/sessions/%s/analytics/histogram?bin_width=60", session.ID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
