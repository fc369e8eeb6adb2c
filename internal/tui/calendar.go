package tui

import (
	"sync"

	"time-calculator/pkg/datemath"
)

// calendar is the start-date binding of the terminal form. It accepts
// anything the clock can resolve and keeps the resolved yyyy-mm-dd date.
type calendar struct {
	mu    sync.Mutex
	clock *datemath.Clock
	date  string
}

func newCalendar(clock *datemath.Clock) *calendar {
	return &calendar{clock: clock}
}

func (c *calendar) SetDate(date string) error {
	resolved, err := c.clock.ResolveDate(date)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.date = resolved
	c.mu.Unlock()
	return nil
}

func (c *calendar) Clear() {
	c.mu.Lock()
	c.date = ""
	c.mu.Unlock()
}

