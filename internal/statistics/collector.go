package statistics

import (
	"github.com/lox/podrida/internal/game"
)

// Collector keeps a live Report up to date by listening to a game's event bus.
type Collector struct {
	report   *Report
	rejected int
	finished bool
}

// NewCollector creates a collector for the given seating order and peak card
// count.
func NewCollector(names []string, maxCards int) *Collector {
	r := &Report{MaxCards: maxCards}
	for _, name := range names {
		r.Players = append(r.Players, NewPlayerStats(name, maxCards))
	}
	return &Collector{report: r}
}

// Attach creates a collector for g and subscribes it to g's event bus
func Attach(g *game.Game) *Collector {
	names := make([]string, 0, g.PlayerCount())
	for _, p := range g.Players() {
		names = append(names, p.Name)
	}
	c := NewCollector(names, g.MaxCards())
	g.EventBus().Subscribe(c)
	return c
}

// OnEvent implements game.EventSubscriber
func (c *Collector) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundCompletedEvent:
		for i, s := range c.report.Players {
			if i < len(e.Result.Bids) {
				s.Add(e.Result.Bids[i], e.Result.Tricks[i])
			}
		}
	case game.RoundRejectedEvent:
		c.rejected++
	case game.GameOverEvent:
		c.finished = true
	}
}

// Report returns the collected statistics
func (c *Collector) Report() *Report {
	return c.report
}

// Rejected returns how many round submissions were rejected
func (c *Collector) Rejected() int {
	return c.rejected
}

// Finished reports whether the game over event has been seen
func (c *Collector) Finished() bool {
	return c.finished
}
