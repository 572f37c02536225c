package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// embeddedTimeRegex matches a time-of-day embedded in a recording file name,
// e.g. "crossing_10-00-00.mp4", "cam2 09.15.30.mkv" or "VID_101500.mp4".
var embeddedTimeRegex = regexp.MustCompile(`(\d{2})[-_.:]?(\d{2})[-_.:]?(\d{2})`)

// Format renders a non-negative number of seconds as "HH:MM:SS".
// Each field is floor-truncated and zero-padded; the hour field is unbounded.
func Format(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Parse converts an "HH:MM:SS" string into seconds. It fails softly: any
// malformed input yields 0, since callers use it for best-effort inference.
func Parse(s string) float64 {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil || sec < 0 || sec > 59 {
		return 0
	}
	return float64(h*3600 + m*60 + sec)
}

// Valid reports whether s parses as a well-formed "HH:MM:SS" string.
// "00:00:00" is valid even though it parses to zero seconds.
func Valid(s string) bool {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return false
	}
	for i, p := range parts {
		if len(p) == 0 {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return false
		}
		if i > 0 && n > 59 {
			return false
		}
	}
	return true
}

// InferStart derives a wall-clock start time for the first segment of a
// timeline. It prefers a time-of-day pattern embedded in the file name,
// falls back to the file's modification timestamp, and finally "00:00:00".
func InferStart(name string, modTime time.Time) string {
	if m := embeddedTimeRegex.FindStringSubmatch(name); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec, _ := strconv.Atoi(m[3])
		if h < 24 && min < 60 && sec < 60 {
			return fmt.Sprintf("%02d:%02d:%02d", h, min, sec)
		}
	}
	if !modTime.IsZero() {
		return modTime.Format("15:04:05")
	}
	return "00:00:00"
}
