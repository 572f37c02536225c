package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/fieldtally/observer-api/pkg/errors"
)

func TestCatalogListOrderedByKey(t *testing.T) {
	c := NewCatalog()
	c.Add(5, "Near miss", "#9c27b0")
	c.Add(1, "Pedestrian crossing", "#4caf50")
	c.Add(3, "Jaywalking", "#f44336")

	list := c.List()
	assert.Equal(t, []int{1, 3, 5}, []int{list[0].Key, list[1].Key, list[2].Key})
}

func TestCatalogAddPreservesCount(t *testing.T) {
	c := NewCatalog()
	c.Add(1, "Pedestrian crossing", "#4caf50")
	c.increment(1)
	c.increment(1)

	// Re-adding (e.g. a color change through config reload) keeps the count
	c.Add(1, "Pedestrian crossing", "#ffffff")
	et, _ := c.Get(1)
	assert.Equal(t, 2, et.Count)
	assert.Equal(t, "#ffffff", et.Color)
}

func TestCatalogRenameUnknown(t *testing.T) {
	c := NewCatalog()
	err := c.Rename(7, "anything")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnknownEventType))
}

func TestCatalogSetColor(t *testing.T) {
	c := NewCatalog()
	c.Add(2, "Cyclist crossing", "#2196f3")

	assert.NoError(t, c.SetColor(2, "#000000"))
	et, _ := c.Get(2)
	assert.Equal(t, "#000000", et.Color)

	assert.Error(t, c.SetColor(9, "#000000"))
}
