package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Wheel tuning. Three notches move roughly one page.
const (
	wheelStep   = 0.34
	settleDelay = 180 * time.Millisecond
)

// Carousel turns continuous wheel scrolling into discrete "settled on page K"
// reports. The float offset never leaves this type; the tour only ever sees
// a clamped integer index.
type Carousel struct {
	position float64
	active   bool
	seq      int
}

// Scroll starts or continues a gesture from page origin and schedules a settle.
func (c *Carousel) Scroll(origin int, delta float64) tea.Cmd {
	if !c.active {
		c.position = float64(origin)
		c.active = true
	}
	c.position += delta
	c.seq++
	seq := c.seq
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return gestureSettleMsg{seq: seq}
	})
}

// Settle ends the gesture if msg is the latest tick and returns the page it
// landed on, clamped to [0, total-1].
func (c *Carousel) Settle(msg gestureSettleMsg, total int) (int, bool) {
	if !c.active || msg.seq != c.seq || total <= 0 {
		return 0, false
	}
	c.active = false
	idx := int(math.Round(c.position))
	return min(max(idx, 0), total-1), true
}

// Offset reports the in-flight position for rendering; ok is false when idle.
func (c *Carousel) Offset() (float64, bool) {
	return c.position, c.active
}

// Cancel drops an in-flight gesture, e.g. when a key press moves the page.
func (c *Carousel) Cancel() {
	c.active = false
	c.seq++
}
