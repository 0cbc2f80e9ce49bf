package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// TestGameOption configures test game creation
type TestGameOption func(*testGameBuilder)

type testGameBuilder struct {
	players  []string
	maxCards int
	dealer   int
	variant  Variant
	opts     []Option
}

func WithPlayers(names ...string) TestGameOption {
	return func(b *testGameBuilder) { b.players = names }
}

func WithMaxCards(n int) TestGameOption {
	return func(b *testGameBuilder) { b.maxCards = n }
}

func WithDealer(seat int) TestGameOption {
	return func(b *testGameBuilder) { b.dealer = seat }
}

func WithVariant(v Variant) TestGameOption {
	return func(b *testGameBuilder) { b.variant = v }
}

func WithGameOptions(opts ...Option) TestGameOption {
	return func(b *testGameBuilder) { b.opts = append(b.opts, opts...) }
}

// newTestGame creates a game with sensible defaults: three players, 3 cards,
// classic rules, seat 0 dealing and a discarding logger.
func newTestGame(t *testing.T, opts ...TestGameOption) *Game {
	t.Helper()
	b := &testGameBuilder{
		players:  []string{"Alice", "Bob", "Charlie"},
		maxCards: 3,
		variant:  Classic,
	}
	for _, opt := range opts {
		opt(b)
	}
	gameOpts := append([]Option{WithLogger(log.New(io.Discard))}, b.opts...)
	g, err := New(b.players, b.maxCards, b.dealer, b.variant, gameOpts...)
	require.NoError(t, err)
	return g
}

// validRound returns bids and tricks that pass both rules for a round of
// the given size: everybody bids 0 and seat 0 takes every trick.
func validRound(players, cards int) ([]int, []int) {
	bids := make([]int, players)
	tricks := make([]int, players)
	tricks[0] = cards
	return bids, tricks
}

// eventRecorder captures published events
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) ofType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}
