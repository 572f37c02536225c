package playback_test

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

	playbackapi "github.com/fieldtally/observer-api/api/playback"
	"github.com/fieldtally/observer-api/api/types"
	"github.com/fieldtally/observer-api/internal/engine"
)

type PlaybackTestSuite struct {
	t       *testing.T
	router  *gin.Engine
	session *engine.Session
}

func setupPlaybackTestSuite(t *testing.T) *PlaybackTestSuite {
	gin.SetMode(gin.TestMode)

	manager := engine.NewManager(engine.Options{
		MaxRate:       16,
		SyncTolerance: 0.5,
		SeekStep:      5,
		SeekStepLarge: 60,
	})
	deps := &types.Dependencies{Manager: manager}

	router := gin.New()
	playbackapi.RegisterRoutes(router.Group("/sessions/:id/playback"), deps, nil)

	session := manager.Create("test session")
	for _, seg := range []struct {
		name     string
		duration float64
	}{
		{"crossing_10-00-00.mp4", 100},
		{"crossing_b.mp4", 50},
		{"crossing_c.mp4", 200},
	} {
		_, err := session.AppendSegment(seg.name, time.Time{}, seg.duration)
		require.NoError(t, err)
	}

	return &PlaybackTestSuite{t: t, router: router, session: session}
}

func (suite *PlaybackTestSuite) do(method, path string, payload any) types.PlaybackResponse {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(suite.t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, fmt.Sprintf("/sessions/%s/playback%s", suite.session.ID, path), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	require.Equal(suite.t, http.StatusOK, w.Code, w.Body.String())

	var response types.PlaybackResponse
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestPlayPauseToggle(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	state := suite.do(http.MethodPost, "/play", nil)
	assert.True(t, state.Playback.Playing)

	state = suite.do(http.MethodPost, "/pause", nil)
	assert.False(t, state.Playback.Playing)

	state = suite.do(http.MethodPost, "/toggle", nil)
	assert.True(t, state.Playback.Playing)
}

func TestSetRateAndReverse(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	state := suite.do(http.MethodPut, "/rate", map[string]any{"rate": 4.0})
	assert.Equal(t, 4.0, state.Playback.Rate)

	// Magnitude clamps to the configured bound
	state = suite.do(http.MethodPut, "/rate", map[string]any{"rate": -64.0})
	assert.Equal(t, -16.0, state.Playback.Rate)

	state = suite.do(http.MethodPost, "/reverse", nil)
	assert.Equal(t, 16.0, state.Playback.Rate)
}

func TestSeekAndStep(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	state := suite.do(http.MethodPut, "/seek", map[string]any{"global_seconds": 120.0})
	assert.Equal(t, 120.0, state.Playback.Global)
	assert.Equal(t, 1, state.Playback.SegmentIndex)
	assert.Equal(t, 20.0, state.Playback.SegmentOffset)

	state = suite.do(http.MethodPost, "/step", map[string]any{"large": true})
	assert.Equal(t, 180.0, state.Playback.Global)
	assert.Equal(t, 2, state.Playback.SegmentIndex)

	state = suite.do(http.MethodPost, "/step", map[string]any{"back": true})
	assert.Equal(t, 175.0, state.Playback.Global)

	// Seeking beyond the end clamps
	state = suite.do(http.MethodPut, "/seek", map[string]any{"global_seconds": 1000.0})
	assert.Equal(t, 350.0, state.Playback.Global)
}

func TestTick(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	suite.do(http.MethodPut, "/seek", map[string]any{"global_seconds": 99.0})
	suite.do(http.MethodPost, "/play", nil)

	// One second of real time at rate 1 crosses into the second segment
	state := suite.do(http.MethodPost, "/tick", map[string]any{"elapsed_ms": 1000.0})
	assert.Equal(t, 100.0, state.Playback.Global)
	assert.Equal(t, 1, state.Playback.SegmentIndex)
	assert.Equal(t, 0.0, state.Playback.SegmentOffset)

	// Running off the end pauses at the final frame
	state = suite.do(http.MethodPost, "/tick", map[string]any{"elapsed_ms": 600000.0})
	assert.Equal(t, 350.0, state.Playback.Global)
	assert.False(t, state.Playback.Playing)
}

func TestSync(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	suite.do(http.MethodPut, "/seek", map[string]any{"global_seconds": 120.0})

	// Within tolerance the reported position wins
	state := suite.do(http.MethodPost, "/sync", map[string]any{"segment_offset": 20.3})
	assert.Equal(t, 20.3, state.Playback.SegmentOffset)

	// Beyond tolerance the derived position wins
	state = suite.do(http.MethodPost, "/sync", map[string]any{"segment_offset": 45.0})
	assert.Equal(t, 20.0, state.Playback.SegmentOffset)
	assert.Equal(t, 120.0, state.Playback.Global)
}

func TestMute(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	state := suite.do(http.MethodPut, "/mute", map[string]any{"muted": true})
	assert.True(t, state.Playback.Muted)

	state = suite.do(http.MethodPut, "/mute", map[string]any{"muted": false})
	assert.False(t, state.Playback.Muted)
}

func TestGetState(t *testing.T) {
	suite := setupPlaybackTestSuite(t)

	state := suite.do(http.MethodGet, "", nil)
	assert.Equal(t, 0.0, state.Playback.Global)
	assert.Equal(t, 1.0, state.Playback.Rate)
	assert.False(t, state.Playback.Playing)
}
