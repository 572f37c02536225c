package playback

import (
	"math"

	"github.com/fieldtally/observer-api/internal/timeline"
)

// State is the full playback state at one observation point. Global and
// (SegmentIndex, SegmentOffset) always agree under the position mapper.
type State struct {
	Global        float64 `json:"global"`
	SegmentIndex  int     `json:"segment_index"`
	SegmentID     string  `json:"segment_id"`
	SegmentOffset float64 `json:"segment_offset"`
	Playing       bool    `json:"playing"`
	Muted         bool    `json:"muted"`
	// Rate is the signed speed multiplier: sign encodes direction,
	// magnitude encodes speed relative to real time.
	Rate float64 `json:"rate"`
}

// Controller drives playback over a segment registry. Advancement happens
// only through Tick, so playback is deterministic and testable without a
// clock. The controller never blocks and never schedules anything itself.
type Controller struct {
	registry  *timeline.Registry
	state     State
	maxRate   float64
	tolerance float64
}

// NewController creates a paused controller at global position 0.
// maxRate bounds the rate magnitude symmetrically in both directions;
// tolerance is the boundary drift allowed before the mapper wins.
func NewController(registry *timeline.Registry, maxRate, tolerance float64) *Controller {
	if maxRate <= 0 {
		maxRate = 16
	}
	if tolerance <= 0 {
		tolerance = 0.5
	}
	return &Controller{
		registry:  registry,
		state:     State{Rate: 1},
		maxRate:   maxRate,
		tolerance: tolerance,
	}
}

// State returns the current playback state
func (c *Controller) State() State {
	return c.state
}

// Play starts playback without altering position
func (c *Controller) Play() State {
	c.state.Playing = true
	return c.state
}

// Pause stops playback without altering position
func (c *Controller) Pause() State {
	c.state.Playing = false
	return c.state
}

// Toggle flips the playing flag
func (c *Controller) Toggle() State {
	c.state.Playing = !c.state.Playing
	return c.state
}

// SetMuted sets the mute flag
func (c *Controller) SetMuted(muted bool) State {
	c.state.Muted = muted
	return c.state
}

// SetRate sets the signed speed multiplier. The magnitude is clamped to the
// configured bound regardless of sign; a zero rate is ignored because it
// would stall the state machine while nominally playing.
func (c *Controller) SetRate(rate float64) State {
	if rate == 0 {
		return c.state
	}
	if math.Abs(rate) > c.maxRate {
		rate = math.Copysign(c.maxRate, rate)
	}
	c.state.Rate = rate
	return c.state
}

// Reverse negates the current rate in place, keeping its magnitude
func (c *Controller) Reverse() State {
	c.state.Rate = -c.state.Rate
	return c.state
}

// Seek moves to a global position, clamped into [0, total]. Always legal
// regardless of play state; the playing flag is untouched.
func (c *Controller) Seek(globalSeconds float64) State {
	c.applyPosition(c.registry.Locate(c.registry.Clamp(globalSeconds)))
	return c.state
}

// SeekBy moves relative to the current position
func (c *Controller) SeekBy(deltaSeconds float64) State {
	return c.Seek(c.state.Global + deltaSeconds)
}

// Tick advances playback by elapsed wall-clock milliseconds scaled by the
// current rate. It is a no-op while paused. Forward playback rolls across
// segment boundaries into the next segment at offset 0 and pauses at the
// final frame; reverse playback rolls into the previous segment at its full
// duration and pauses at global 0.
func (c *Controller) Tick(elapsedMs float64) State {
	if !c.state.Playing || elapsedMs <= 0 {
		return c.state
	}

	delta := elapsedMs * c.state.Rate / 1000
	target := c.state.Global + delta
	total := c.registry.TotalDuration()

	if c.state.Rate > 0 {
		if target >= total {
			c.applyPosition(c.registry.Locate(total))
			c.state.Playing = false
			return c.state
		}
		c.applyPosition(c.locateForward(target))
		return c.state
	}

	if target <= 0 {
		c.applyPosition(c.registry.Locate(0))
		c.state.Playing = false
		return c.state
	}
	// Locate prefers the earlier segment at its full duration on exact
	// boundaries, which is the reverse-transition rule.
	c.applyPosition(c.registry.Locate(target))
	return c.state
}

// SyncLocal reconciles a caller-reported segment-local position against the
// mapper. Small drift keeps the reported value to avoid visible jitter;
// drift past the tolerance trusts the mapper.
func (c *Controller) SyncLocal(reportedOffset float64) State {
	derived := c.registry.Locate(c.state.Global)
	if math.Abs(reportedOffset-derived.SegmentOffset) > c.tolerance {
		c.applyPosition(derived)
		return c.state
	}
	c.state.SegmentIndex = derived.SegmentIndex
	c.state.SegmentID = derived.SegmentID
	c.state.SegmentOffset = reportedOffset
	return c.state
}

// Relocate re-derives segment coordinates after a registry mutation,
// clamping the global position into the possibly shrunken timeline.
func (c *Controller) Relocate() State {
	c.applyPosition(c.registry.Locate(c.registry.Clamp(c.state.Global)))
	return c.state
}

// Restore overwrites the playback state wholesale, then relocates so the
// derived coordinates agree with the current registry.
func (c *Controller) Restore(state State) State {
	c.state = state
	if c.state.Rate == 0 {
		c.state.Rate = 1
	}
	return c.Relocate()
}

func (c *Controller) applyPosition(pos timeline.Position) {
	c.state.Global = pos.Global
	c.state.SegmentIndex = pos.SegmentIndex
	c.state.SegmentID = pos.SegmentID
	c.state.SegmentOffset = pos.SegmentOffset
}

// locateForward resolves a global time for forward playback: an exact
// segment boundary lands on the next segment at offset 0, not the previous
// one at its full duration.
func (c *Controller) locateForward(target float64) timeline.Position {
	pos := c.registry.Locate(target)
	seg, ok := c.registry.Segment(pos.SegmentIndex)
	if ok && pos.SegmentOffset == seg.Duration && pos.SegmentIndex < c.registry.Len()-1 {
		next, _ := c.registry.Segment(pos.SegmentIndex + 1)
		return timeline.Position{
			SegmentIndex:  pos.SegmentIndex + 1,
			SegmentID:     next.ID,
			SegmentOffset: 0,
			Global:        pos.Global,
		}
	}
	return pos
}
