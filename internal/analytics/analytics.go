package analytics

import (
	"iter"

	"github.com/fieldtally/observer-api/internal/annotations"
	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// RangeCount is the per-type tally over a closed time range
type RangeCount struct {
	EventTypeKey  int    `json:"event_type_key"`
	EventTypeName string `json:"event_type_name"`
	Count         int    `json:"count"`
}

// CountResult is the outcome of a range count: one entry per catalog type
// plus the grand total.
type CountResult struct {
	Start  float64      `json:"start"`
	End    float64      `json:"end"`
	Counts []RangeCount `json:"counts"`
	Total  int          `json:"total"`
}

// Bin is one fixed-width histogram interval, half-open [Start, End)
type Bin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// Engine aggregates recorded annotations into counts and histograms
type Engine struct {
	store   *annotations.Store
	catalog *annotations.Catalog
}

// NewEngine creates an analytics engine over the given store and catalog
func NewEngine(store *annotations.Store, catalog *annotations.Catalog) *Engine {
	return &Engine{store: store, catalog: catalog}
}

// Reset points the engine at a replacement store and catalog, used after a
// session restore swaps them out.
func (e *Engine) Reset(store *annotations.Store, catalog *annotations.Catalog) {
	e.store = store
	e.catalog = catalog
}

// CountInRange counts annotations per event type with global offset in
// [start, end], inclusive on both ends. A start past the end yields all-zero
// counts. Callers clamp the endpoints into [0, total] beforehand.
func (e *Engine) CountInRange(start, end float64) CountResult {
	result := CountResult{Start: start, End: end}

	perType := make(map[int]int)
	if start <= end {
		for _, ann := range e.store.List() {
			if ann.Global >= start && ann.Global <= end {
				perType[ann.EventTypeKey]++
				result.Total++
			}
		}
	}

	for _, et := range e.catalog.List() {
		result.Counts = append(result.Counts, RangeCount{
			EventTypeKey:  et.Key,
			EventTypeName: et.Name,
			Count:         perType[et.Key],
		})
	}
	return result
}

// Histogram partitions [start, end) into consecutive bins of binWidth
// seconds, the final bin truncated at end, and counts annotations of the
// given type per bin with the half-open [binStart, binEnd) convention so
// boundary values are never double-counted. The returned sequence is lazy
// and finite; ranging over it again restarts from the first bin.
func (e *Engine) Histogram(start, end, binWidth float64, eventTypeKey int) (iter.Seq[Bin], error) {
	if binWidth <= 0 {
		return nil, apperrors.InvalidBinWidth(binWidth)
	}
	if !e.catalog.Has(eventTypeKey) {
		return nil, apperrors.UnknownEventType(eventTypeKey)
	}

	entries := e.store.List()
	return func(yield func(Bin) bool) {
		for binStart := start; binStart < end; binStart += binWidth {
			binEnd := binStart + binWidth
			if binEnd > end {
				binEnd = end
			}
			bin := Bin{Start: binStart, End: binEnd}
			for _, ann := range entries {
				if ann.EventTypeKey == eventTypeKey && ann.Global >= binStart && ann.Global < binEnd {
					bin.Count++
				}
			}
			if !yield(bin) {
				return
			}
		}
	}, nil
}

// HistogramBins collects the histogram sequence into a slice
func (e *Engine) HistogramBins(start, end, binWidth float64, eventTypeKey int) ([]Bin, error) {
	seq, err := e.Histogram(start, end, binWidth, eventTypeKey)
	if err != nil {
		return nil, err
	}
	var bins []Bin
	for bin := range seq {
		bins = append(bins, bin)
	}
	return bins, nil
}
