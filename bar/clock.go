package bar

import "time"

// DefaultClockFormat is the reference layout used when a clock is
// built without one.
const DefaultClockFormat = "Mon 02 Jan 15:04"

// Clock is a text widget showing the current time. It only re-renders
// when the formatted time actually changes, so a minute-resolution
// format redraws once a minute regardless of how often Tick runs.
type Clock struct {
	*Text
	format string
	now    func() time.Time
}

// NewClock creates a clock with the given format ("" uses
// DefaultClockFormat).
func NewClock(style TextStyle, format string) *Clock {
	if format == "" {
		format = DefaultClockFormat
	}
	c := &Clock{
		Text:   NewText("", style, false, false),
		format: format,
		now:    time.Now,
	}
	c.Tick()
	return c
}

// Tick refreshes the displayed time.
func (c *Clock) Tick() {
	c.SetText(c.now().Format(c.format))
}
