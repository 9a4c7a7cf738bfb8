//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"apprien-go-sdk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Now stays fixed until advanced", func(t *testing.T) {
		c := clock.NewMockClock(start)
		assert.Equal(t, start, c.Now())
		assert.Equal(t, start, c.Now())
	})

	t.Run("Add and Since", func(t *testing.T) {
		c := clock.NewMockClock(start)
		c.Add(500 * time.Millisecond)
		assert.Equal(t, 500*time.Millisecond, clock.Since(c, start))
	})

	t.Run("Set replaces the current time", func(t *testing.T) {
		c := clock.NewMockClock(start)
		later := start.Add(time.Hour)
		c.Set(later)
		assert.Equal(t, later, c.Now())
	})

	t.Run("concurrent Add is consistent", func(t *testing.T) {
		c := clock.NewMockClock(start)
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Add(time.Millisecond)
			}()
		}
		wg.Wait()
		assert.Equal(t, 100*time.Millisecond, clock.Since(c, start))
	})
}

func TestRealClock(t *testing.T) {
	c := clock.NewRealClock()
	before := time.Now()
	now := c.Now()
	assert.False(t, now.Before(before))
}
