package timecode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "zero", seconds: 0, expected: "00:00:00"},
		{name: "truncates fractional seconds", seconds: 59.9, expected: "00:00:59"},
		{name: "minutes rollover", seconds: 125, expected: "00:02:05"},
		{name: "hours", seconds: 3661, expected: "01:01:01"},
		{name: "unbounded hours", seconds: 360000, expected: "100:00:00"},
		{name: "negative clamps to zero", seconds: -5, expected: "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.seconds))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "midnight", input: "00:00:00", expected: 0},
		{name: "morning", input: "10:02:05", expected: 36125},
		{name: "whitespace tolerated", input: " 01:00:00 ", expected: 3600},
		{name: "missing field", input: "10:02", expected: 0},
		{name: "garbage", input: "not-a-time", expected: 0},
		{name: "minutes out of range", input: "00:61:00", expected: 0},
		{name: "seconds out of range", input: "00:00:75", expected: 0},
		{name: "empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0, 1, 59, 60, 3599, 3600, 36125, 86400} {
		assert.Equal(t, seconds, Parse(Format(seconds)))
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("00:00:00"))
	assert.True(t, Valid("23:59:59"))
	assert.True(t, Valid("100:00:00"))
	assert.False(t, Valid("24:60:00"))
	assert.False(t, Valid("1000"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("aa:bb:cc"))
}

func TestInferStart(t *testing.T) {
	modTime := time.Date(2024, 6, 1, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		fileName string
		modTime  time.Time
		expected string
	}{
		{name: "dashed pattern in name", fileName: "crossing_10-00-00.mp4", modTime: modTime, expected: "10:00:00"},
		{name: "compact pattern in name", fileName: "VID_101500.mp4", modTime: modTime, expected: "10:15:00"},
		{name: "dotted pattern in name", fileName: "cam2 09.15.30.mkv", modTime: modTime, expected: "09:15:30"},
		{name: "falls back to mod time", fileName: "recording.mp4", modTime: modTime, expected: "14:30:45"},
		{name: "out-of-range pattern ignored", fileName: "clip_99-99-99.mp4", modTime: modTime, expected: "14:30:45"},
		{name: "falls back to midnight", fileName: "recording.mp4", modTime: time.Time{}, expected: "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferStart(tt.fileName, tt.modTime))
		})
	}
}
