// Package export renders a session's annotation list as CSV for spreadsheet
// review. Rows come out in global-offset order, one annotation per row.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fieldtally/observer-api/internal/annotations"
	"github.com/fieldtally/observer-api/pkg/timecode"
)

var header = []string{
	"index",
	"event_type_key",
	"event_type_name",
	"wall_clock",
	"global_offset",
	"timeline_position",
	"segment_name",
	"segment_offset",
	"note",
}

// WriteCSV writes the annotation list to w, header row first. A delimiter
// string other than a single rune falls back to a comma.
func WriteCSV(w io.Writer, anns []annotations.Annotation, delimiter string) error {
	cw := csv.NewWriter(w)
	if runes := []rune(delimiter); len(runes) == 1 {
		cw.Comma = runes[0]
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, ann := range anns {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(ann.EventTypeKey),
			ann.EventTypeName,
			ann.WallClock,
			strconv.FormatFloat(ann.Global, 'f', 3, 64),
			timecode.Format(ann.Global),
			ann.SegmentName,
			strconv.FormatFloat(ann.SegmentOffset, 'f', 3, 64),
			ann.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing annotation %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename builds a download filename from the session name, falling back to
// a generic one when the name is empty.
func Filename(sessionName string) string {
	if sessionName == "" {
		return "annotations.csv"
	}
	return sanitize(sessionName) + "-annotations.csv"
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "session"
	}
	return string(out)
}
