package game

import (
	"errors"
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowBids bool // Include each player's bid and tricks in round lines
}

// EventFormatter provides centralized formatting for game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format renders any game event, one line per slice entry
func (ef *EventFormatter) Format(event GameEvent) []string {
	switch e := event.(type) {
	case RoundCompletedEvent:
		return ef.FormatRoundCompleted(e)
	case RoundRejectedEvent:
		return []string{ef.FormatRoundRejected(e)}
	case GameOverEvent:
		return []string{ef.FormatGameOver(e)}
	}
	return []string{event.EventType().String()}
}

// FormatRoundCompleted formats a scored round: a header line followed by one
// line per player.
func (ef *EventFormatter) FormatRoundCompleted(event RoundCompletedEvent) []string {
	r := event.Result
	dealer := ""
	if r.Dealer < len(event.Standings) {
		dealer = event.Standings[r.Dealer].Name
	}

	lines := []string{fmt.Sprintf("*** ROUND %d (%d %s, dealt by %s) ***", r.Round, r.Cards, plural(r.Cards, "card"), dealer)}
	for i, s := range event.Standings {
		var line string
		if ef.opts.ShowBids {
			line = fmt.Sprintf("%s: bid %d, took %d, %+d (total %d)", s.Name, r.Bids[i], r.Tricks[i], r.Deltas[i], s.Score)
		} else {
			line = fmt.Sprintf("%s: %+d (total %d)", s.Name, r.Deltas[i], s.Score)
		}
		lines = append(lines, line)
	}
	return lines
}

// FormatRoundRejected formats every rule violation found in a submission
func (ef *EventFormatter) FormatRoundRejected(event RoundRejectedEvent) string {
	return fmt.Sprintf("Round %d rejected: %s", event.Round, ViolationMessage(event.Err))
}

// FormatGameOver announces the winner, noting a tie when there is one
func (ef *EventFormatter) FormatGameOver(event GameOverEvent) string {
	w := event.Winner
	if len(event.Leaders) > 1 {
		names := make([]string, len(event.Leaders))
		for i, p := range event.Leaders {
			names[i] = p.Name
		}
		return fmt.Sprintf("Tie at %d points between %s; %s wins on seating order",
			w.Score, strings.Join(names, ", "), w.Name)
	}
	return fmt.Sprintf("%s wins with %d points", w.Name, w.Score)
}

// ViolationMessage flattens a (possibly joined) round error into one line.
func ViolationMessage(err error) string {
	if err == nil {
		return ""
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var parts []string
		for _, e := range joined.Unwrap() {
			parts = append(parts, ViolationMessage(e))
		}
		return strings.Join(parts, "; ")
	}
	var v *RuleViolation
	if errors.As(err, &v) {
		return v.Error()
	}
	return err.Error()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
