package game

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundCompleted EventType = "round_completed"
	EventTypeRoundRejected  EventType = "round_rejected"
	EventTypeGameOver       EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens to a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundCompletedEvent is published after a round has been scored
type RoundCompletedEvent struct {
	Result    RoundResult
	Standings []Standing
	timestamp time.Time
}

func (e RoundCompletedEvent) EventType() EventType { return EventTypeRoundCompleted }
func (e RoundCompletedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundCompletedEvent creates a new round completed event
func NewRoundCompletedEvent(result RoundResult, standings []Standing, at time.Time) RoundCompletedEvent {
	return RoundCompletedEvent{
		Result:    result,
		Standings: standings,
		timestamp: at,
	}
}

// RoundRejectedEvent is published when a round submission breaks a rule.
// Err holds every violation found.
type RoundRejectedEvent struct {
	Round     int
	Cards     int
	Bids      []int
	Tricks    []int
	Err       error
	timestamp time.Time
}

func (e RoundRejectedEvent) EventType() EventType { return EventTypeRoundRejected }
func (e RoundRejectedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundRejectedEvent creates a new round rejected event
func NewRoundRejectedEvent(round, cards int, bids, tricks []int, err error, at time.Time) RoundRejectedEvent {
	return RoundRejectedEvent{
		Round:     round,
		Cards:     cards,
		Bids:      append([]int(nil), bids...),
		Tricks:    append([]int(nil), tricks...),
		Err:       err,
		timestamp: at,
	}
}

// GameOverEvent is published once, after the last round is scored
type GameOverEvent struct {
	Winner    Player
	Leaders   []Player // more than one on a tie
	Standings []Standing
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(winner Player, leaders []Player, standings []Standing, at time.Time) GameOverEvent {
	return GameOverEvent{
		Winner:    winner,
		Leaders:   leaders,
		Standings: standings,
		timestamp: at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a plain function to EventSubscriber.
// Function values are not comparable, so they cannot be unsubscribed.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Delivery is synchronous,
// in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
