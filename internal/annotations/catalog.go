package annotations

import (
	"sort"

	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

// EventType is one catalog entry: a recordable category bound to a numeric
// hotkey identity. Count is a derived cache maintained by the store; it
// always equals the number of annotations referencing the key.
type EventType struct {
	Key   int    `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Catalog is the event-type configuration visible to the caller. The store
// and analytics look entries up by key and never copy mutable fields, so
// name and color changes are visible everywhere without propagation.
type Catalog struct {
	types map[int]*EventType
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{types: make(map[int]*EventType)}
}

// Add registers an event type, replacing any existing entry with the key
func (c *Catalog) Add(key int, name, color string) {
	count := 0
	if existing, ok := c.types[key]; ok {
		count = existing.Count
	}
	c.types[key] = &EventType{Key: key, Name: name, Color: color, Count: count}
}

// Has reports whether the key is in the catalog
func (c *Catalog) Has(key int) bool {
	_, ok := c.types[key]
	return ok
}

// Get returns a copy of the entry for key
func (c *Catalog) Get(key int) (EventType, bool) {
	et, ok := c.types[key]
	if !ok {
		return EventType{}, false
	}
	return *et, true
}

// Rename updates an entry's display name. Cascading the new name onto
// existing annotations is the store's job, not the catalog's.
func (c *Catalog) Rename(key int, name string) error {
	et, ok := c.types[key]
	if !ok {
		return apperrors.UnknownEventType(key)
	}
	et.Name = name
	return nil
}

// SetColor updates an entry's display color
func (c *Catalog) SetColor(key int, color string) error {
	et, ok := c.types[key]
	if !ok {
		return apperrors.UnknownEventType(key)
	}
	et.Color = color
	return nil
}

// List returns the catalog ordered by key, with live counts
func (c *Catalog) List() []EventType {
	out := make([]EventType, 0, len(c.types))
	for _, et := range c.types {
		out = append(out, *et)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (c *Catalog) increment(key int) {
	if et, ok := c.types[key]; ok {
		et.Count++
	}
}

// decrement floors the count at zero
func (c *Catalog) decrement(key int) {
	if et, ok := c.types[key]; ok && et.Count > 0 {
		et.Count--
	}
}

// resetCounts zeroes every derived count, used before a recount on restore
func (c *Catalog) resetCounts() {
	for _, et := range c.types {
		et.Count = 0
	}
}
