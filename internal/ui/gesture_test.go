package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarousel_SettleRoundsAndClamps(t *testing.T) {
	tests := []struct {
		name   string
		origin int
		deltas []float64
		total  int
		want   int
	}{
		{"one notch stays", 2, []float64{wheelStep}, 6, 2},
		{"two notches move", 2, []float64{wheelStep, wheelStep}, 6, 3},
		{"backwards", 2, []float64{-wheelStep, -wheelStep, -wheelStep}, 6, 1},
		{"past the end clamps", 5, []float64{1, 1, 1}, 6, 5},
		{"before the start clamps", 0, []float64{-1, -1}, 6, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Carousel
			for _, d := range tc.deltas {
				assert.NotNil(t, c.Scroll(tc.origin, d))
			}
			got, ok := c.Settle(gestureSettleMsg{seq: c.seq}, tc.total)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)

			_, active := c.Offset()
			assert.False(t, active)
		})
	}
}

func TestCarousel_IgnoresStaleAndIdleTicks(t *testing.T) {
	var c Carousel
	_, ok := c.Settle(gestureSettleMsg{seq: 0}, 3)
	assert.False(t, ok, "idle carousel")

	c.Scroll(0, 1)
	c.Scroll(0, 1)
	_, ok = c.Settle(gestureSettleMsg{seq: 1}, 3)
	assert.False(t, ok, "superseded tick")

	off, active := c.Offset()
	assert.True(t, active)
	assert.InDelta(t, 2.0, off, 1e-9)

	c.Cancel()
	_, ok = c.Settle(gestureSettleMsg{seq: c.seq}, 3)
	assert.False(t, ok, "cancelled gesture")
}

func TestCarousel_ZeroTotal(t *testing.T) {
	var c Carousel
	c.Scroll(0, 1)
	_, ok := c.Settle(gestureSettleMsg{seq: c.seq}, 0)
	assert.False(t, ok)
}

func TestScrollIndicator(t *testing.T) {
	assert.Equal(t, "▯▮▯", scrollIndicator(1.2, 3))
	assert.Equal(t, "▯▯▯", scrollIndicator(4, 3))
	assert.Empty(t, scrollIndicator(0, 0))
}
