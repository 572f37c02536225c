package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateBoundaries(t *testing.T) {
	r := threeSegmentRegistry(t)

	tests := []struct {
		name           string
		global         float64
		expectedIndex  int
		expectedOffset float64
	}{
		{name: "start resolves to first segment", global: 0, expectedIndex: 0, expectedOffset: 0},
		{name: "inside first segment", global: 40, expectedIndex: 0, expectedOffset: 40},
		{name: "exact first boundary stays on first", global: 100, expectedIndex: 0, expectedOffset: 100},
		{name: "inside second segment", global: 120, expectedIndex: 1, expectedOffset: 20},
		{name: "inside third segment", global: 200, expectedIndex: 2, expectedOffset: 50},
		{name: "total duration resolves to last at full", global: 350, expectedIndex: 2, expectedOffset: 200},
		{name: "beyond total clamps", global: 500, expectedIndex: 2, expectedOffset: 200},
		{name: "negative clamps to zero", global: -10, expectedIndex: 0, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := r.Locate(tt.global)
			assert.Equal(t, tt.expectedIndex, pos.SegmentIndex)
			assert.InDelta(t, tt.expectedOffset, pos.SegmentOffset, 1e-9)
		})
	}
}

func TestLocateEmptyRegistry(t *testing.T) {
	r := NewRegistry()

	pos := r.Locate(42)
	assert.Equal(t, Position{}, pos)
}

func TestLocateTotalDurationProperty(t *testing.T) {
	r := threeSegmentRegistry(t)

	pos := r.Locate(r.TotalDuration())
	last, ok := r.Segment(r.Len() - 1)
	assert.True(t, ok)
	assert.Equal(t, r.Len()-1, pos.SegmentIndex)
	assert.Equal(t, last.Duration, pos.SegmentOffset)

	zero := r.Locate(0)
	assert.Equal(t, 0, zero.SegmentIndex)
	assert.Equal(t, 0.0, zero.SegmentOffset)
}

func TestClamp(t *testing.T) {
	r := threeSegmentRegistry(t)

	assert.Equal(t, 0.0, r.Clamp(-5))
	assert.Equal(t, 125.0, r.Clamp(125))
	assert.Equal(t, 350.0, r.Clamp(1000))
}
