package category_cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCache_GetSet(t *testing.T) {
	c := New()

	_, ok := c.Get("v1", "Glass Door Merchandiser")
	assert.False(t, ok)

	c.Set("v1", "Glass Door Merchandiser", "Merchandiser")
	label, ok := c.Get("v1", "Glass Door Merchandiser")
	assert.True(t, ok)
	assert.Equal(t, "Merchandiser", label)
}

func TestLabelCache_VersionIsolation(t *testing.T) {
	c := New()
	c.Set("v1", "Display Case", "Display Case")

	_, ok := c.Get("v2", "Display Case")
	assert.False(t, ok, "entries from another rule-table version must not leak")
}

func TestLabelCache_ConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set("v1", "worktop", "Worktop")
			_, _ = c.Get("v1", "worktop")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}
