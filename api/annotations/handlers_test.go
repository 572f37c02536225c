package annotations_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	annotationsapi "github.com/fieldtally/observer-api/api/annotations"
	"github.com/fieldtally/observer-api/api/types"
	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/internal/engine"
)

type AnnotationTestSuite struct {
	t       *testing.T
	router  *gin.Engine
	session *engine.Session
}

func setupAnnotationTestSuite(t *testing.T) *AnnotationTestSuite {
	gin.SetMode(gin.TestMode)

	manager := engine.NewManager(engine.Options{
		EventTypes: []engine.EventTypeSeed{
			{Key: 1, Name: "Pedestrian crossing", Color: "#4caf50"},
			{Key: 2, Name: "Cyclist crossing", Color: "#2196f3"},
		},
	})
	deps := &types.Dependencies{Manager: manager}

	router := gin.New()
	annotationsapi.RegisterRoutes(router.Group("/sessions/:id/annotations"), deps)

	session := manager.Create("test session")
	_, err := session.AppendSegment("crossing_10-00-00.mp4", time.Time{}, 100)
	require.NoError(t, err)
	_, err = session.AppendSegment("crossing_b.mp4", time.Time{}, 50)
	require.NoError(t, err)
	_, err = session.AppendSegment("crossing_c.mp4", time.Time{}, 200)
	require.NoError(t, err)

	return &AnnotationTestSuite{t: t, router: router, session: session}
}

func (suite *AnnotationTestSuite) do(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(suite.t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AnnotationTestSuite) recordAt(global float64, eventType int) annotations.Annotation {
	suite.session.Seek(global)
	w := suite.do(http.MethodPost, fmt.Sprintf("/sessions/%s/annotations", suite.session.ID), map[string]any{
		"event_type_id": eventType,
	})
	require.Equal(suite.t, http.StatusCreated, w.Code)

	var ann annotations.Annotation
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &ann))
	return ann
}

func TestRecordAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)

	t.Run("captures current playback position", func(t *testing.T) {
		ann := suite.recordAt(125, 1)
		assert.Equal(t, 125.0, ann.Global)
		assert.Equal(t, 25.0, ann.SegmentOffset)
		assert.Equal(t, "crossing_b.mp4", ann.SegmentName)
		assert.Equal(t, "Pedestrian crossing", ann.EventTypeName)
		assert.Equal(t, "10:02:05", ann.WallClock)
	})

	t.Run("unknown event type", func(t *testing.T) {
		w := suite.do(http.MethodPost, fmt.Sprintf("/sessions/%s/annotations", suite.session.ID), map[string]any{
			"event_type_id": 9,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "UNKNOWN_EVENT_TYPE", response.Error)
	})

	t.Run("empty timeline", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		manager := engine.NewManager(engine.Options{
			EventTypes: []engine.EventTypeSeed{{Key: 1, Name: "Pedestrian crossing", Color: "#4caf50"}},
		})
		deps := &types.Dependencies{Manager: manager}
		router := gin.New()
		annotationsapi.RegisterRoutes(router.Group("/sessions/:id/annotations"), deps)
		empty := manager.Create("empty")

		body, _ := json.Marshal(map[string]any{"event_type_id": 1})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/sessions/%s/annotations", empty.ID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "NO_ACTIVE_SEGMENT", response.Error)
	})
}

func TestListAnnotations(t *testing.T) {
	suite := setupAnnotationTestSuite(t)

	// Recorded out of order, listed sorted by global offset
	suite.recordAt(200, 2)
	suite.recordAt(10, 1)
	suite.recordAt(125, 1)

	w := suite.do(http.MethodGet, fmt.Sprintf("/sessions/%s/annotations", suite.session.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response types.AnnotationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 3, response.Count)
	assert.Equal(t, 10.0, response.Annotations[0].Global)
	assert.Equal(t, 125.0, response.Annotations[1].Global)
	assert.Equal(t, 200.0, response.Annotations[2].Global)
}

func TestDeleteAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	ann := suite.recordAt(50, 1)

	w := suite.do(http.MethodDelete, fmt.Sprintf("/sessions/%s/annotations/%s", suite.session.ID, ann.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["deleted"])

	// Deleting again is a silent no-op
	w = suite.do(http.MethodDelete, fmt.Sprintf("/sessions/%s/annotations/%s", suite.session.ID, ann.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["deleted"])
}

func TestDeleteClosest(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	suite.recordAt(10, 1)
	target := suite.recordAt(120, 2)
	suite.recordAt(300, 1)

	w := suite.do(http.MethodPost, fmt.Sprintf("/sessions/%s/annotations/delete-closest", suite.session.ID), map[string]any{
		"global_seconds": 118.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Deleted    bool                   `json:"deleted"`
		Annotation annotations.Annotation `json:"annotation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Deleted)
	assert.Equal(t, target.ID, response.Annotation.ID)

	assert.Len(t, suite.session.Annotations(), 2)
}

func TestReassignAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	ann := suite.recordAt(60, 1)

	w := suite.do(http.MethodPut, fmt.Sprintf("/sessions/%s/annotations/%s/event-type", suite.session.ID, ann.ID), map[string]any{
		"event_type_id": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated annotations.Annotation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 2, updated.EventTypeKey)
	assert.Equal(t, "Cyclist crossing", updated.EventTypeName)

	// Counts moved with the annotation
	catalog := suite.session.EventTypes()
	assert.Equal(t, 0, catalog[0].Count)
	assert.Equal(t, 1, catalog[1].Count)
}

func TestSetNote(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	ann := suite.recordAt(60, 1)

	w := suite.do(http.MethodPut, fmt.Sprintf("/sessions/%s/annotations/%s/note", suite.session.ID, ann.ID), map[string]any{
		"note": "two pedestrians, one stroller",
	})
	require.Equal(t, http.StatusOK, w.Code)

	anns := suite.session.Annotations()
	require.Len(t, anns, 1)
	assert.Equal(t, "two pedestrians, one stroller", anns[0].Note)

	w = suite.do(http.MethodPut, fmt.Sprintf("/sessions/%s/annotations/missing/note", suite.session.ID), map[string]any{
		"note": "anything",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
