package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	logger   *log.Logger
	eventBus EventBus
	clock    quartz.Clock
	strict   bool
}

// WithLogger sets the logger used for round processing. Defaults to the
// charmbracelet/log default logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) { c.logger = logger }
}

// WithEventBus publishes game events on the given bus instead of a private one.
func WithEventBus(bus EventBus) Option {
	return func(c *gameConfig) { c.eventBus = bus }
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) { c.clock = clock }
}

// WithStrictBounds additionally rejects any bid or trick count outside
// 0..cards dealt. Without it only the round sums are checked.
func WithStrictBounds() Option {
	return func(c *gameConfig) { c.strict = true }
}
