package draw

import "github.com/Arstman/penrose/text"

// Option configures a Draw backend at construction time.
type Option func(*config)

// config holds construction settings shared by the backends.
type config struct {
	display  string
	resolver text.Resolver
}

func defaultConfig() config {
	return config{}
}

// WithDisplay sets the display string for the X connection, in the
// usual ":0" form. An empty string uses the DISPLAY environment
// variable. The in-memory backend ignores this.
func WithDisplay(display string) Option {
	return func(c *config) {
		c.display = display
	}
}

// WithResolver overrides how font descriptions resolve to concrete
// fonts. The X backend defaults to scanning the system's installed
// fonts; the in-memory backend defaults to a static resolver over the
// compiled-in font so headless runs stay deterministic.
func WithResolver(r text.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}
