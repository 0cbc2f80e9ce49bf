package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Game is the scoring state machine for one podrida game. It owns the round
// schedule, the round and dealer pointers, and every player's score and
// history. It is not safe for concurrent use.
type Game struct {
	players  []*Player
	schedule Schedule
	variant  Variant
	round    int // index into schedule; == schedule.Len() once the game is over
	dealer   int
	strict   bool

	logger   *log.Logger
	eventBus EventBus
	clock    quartz.Clock
}

// RoundResult describes a successfully scored round.
type RoundResult struct {
	Round  int // 1-based
	Cards  int
	Dealer int
	Bids   []int
	Tricks []int
	Deltas []int // points gained or lost this round, by seat
	Totals []int // scores after the round, by seat
}

// New creates a game for the given seating order. dealer is the seat that
// deals the first round.
//
//	g, err := game.New([]string{"Ana", "Beto", "Caro"}, 7, 0, game.Classic)
//	if err != nil {
//	    return err
//	}
//	_, err = g.ProcessRound([]int{1, 0, 1}, []int{1, 0, 0})
func New(names []string, maxCards, dealer int, variant Variant, opts ...Option) (*Game, error) {
	cfg := &gameConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}
	if cfg.eventBus == nil {
		cfg.eventBus = NewEventBus()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}

	if len(names) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(names))
	}
	seen := make(map[string]bool, len(names))
	players := make([]*Player, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("seat %d: %w", i, ErrEmptyName)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, name)
		}
		seen[name] = true
		players[i] = &Player{Seat: i, Name: name}
	}
	if dealer < 0 || dealer >= len(names) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidDealer, dealer, len(names))
	}

	schedule, err := GenerateSchedule(maxCards, len(names), variant)
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule: %w", err)
	}

	g := &Game{
		players:  players,
		schedule: schedule,
		variant:  variant,
		dealer:   dealer,
		strict:   cfg.strict,
		logger:   cfg.logger.WithPrefix("game"),
		eventBus: cfg.eventBus,
		clock:    cfg.clock,
	}

	g.logger.Debug("Game created",
		"players", len(players),
		"maxCards", maxCards,
		"variant", variant,
		"rounds", schedule.Len(),
		"dealer", players[dealer].Name)

	return g, nil
}

// EventBus returns the bus game events are published on
func (g *Game) EventBus() EventBus {
	return g.eventBus
}

// ProcessRound validates and scores the current round. Both the bid rule and
// the trick-sum rule are checked; if either fails the returned error joins
// every violation and the game is left untouched.
func (g *Game) ProcessRound(bids, tricks []int) (*RoundResult, error) {
	if g.IsTerminal() {
		return nil, ErrGameOver
	}
	n := len(g.players)
	if len(bids) != n || len(tricks) != n {
		return nil, &ArityError{Want: n, Bids: len(bids), Tricks: len(tricks)}
	}

	cards := g.schedule.At(g.round)
	if err := g.validate(bids, tricks, cards); err != nil {
		g.logger.Debug("Round rejected",
			"round", g.round+1,
			"cards", cards,
			"bids", bids,
			"tricks", tricks,
			"error", err)
		g.eventBus.Publish(NewRoundRejectedEvent(g.round+1, cards, bids, tricks, err, g.clock.Now()))
		return nil, err
	}

	result := RoundResult{
		Round:  g.round + 1,
		Cards:  cards,
		Dealer: g.dealer,
		Bids:   append([]int(nil), bids...),
		Tricks: append([]int(nil), tricks...),
		Deltas: make([]int, n),
		Totals: make([]int, n),
	}
	for i, p := range g.players {
		result.Deltas[i] = p.record(bids[i], tricks[i])
		result.Totals[i] = p.Score
	}

	g.round++
	g.dealer = (g.dealer + 1) % n

	g.logger.Debug("Round scored",
		"round", result.Round,
		"cards", cards,
		"deltas", result.Deltas,
		"totals", result.Totals)

	g.eventBus.Publish(NewRoundCompletedEvent(result, g.Standings(), g.clock.Now()))

	if g.IsTerminal() {
		winner := g.Winner()
		g.logger.Info("Game over", "winner", winner.Name, "score", winner.Score)
		g.eventBus.Publish(NewGameOverEvent(winner, g.Leaders(), g.Standings(), g.clock.Now()))
	}

	return &result, nil
}

func (g *Game) validate(bids, tricks []int, cards int) error {
	var errs []error
	if g.strict {
		if err := validateBounds(bids, cards); err != nil {
			errs = append(errs, err)
		}
		if err := validateBounds(tricks, cards); err != nil {
			errs = append(errs, err)
		}
	}
	if err := ValidateBids(bids, cards); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateResults(tricks, cards); err != nil {
		errs = append(errs, err)
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return errors.Join(errs...)
}

// IsTerminal reports whether every round has been played
func (g *Game) IsTerminal() bool {
	return g.round >= g.schedule.Len()
}

// CurrentRoundCards returns the cards dealt in the current round, or 0 once
// the game is over.
func (g *Game) CurrentRoundCards() int {
	if g.IsTerminal() {
		return 0
	}
	return g.schedule.At(g.round)
}

// RoundNumber returns the 1-based number of the round being played. Once the
// game is over it stays at TotalRounds.
func (g *Game) RoundNumber() int {
	if g.IsTerminal() {
		return g.schedule.Len()
	}
	return g.round + 1
}

// RoundsPlayed returns how many rounds have been scored
func (g *Game) RoundsPlayed() int {
	return g.round
}

// TotalRounds returns the length of the schedule
func (g *Game) TotalRounds() int {
	return g.schedule.Len()
}

// IsPeakRound reports whether the current round deals the maximum card count
func (g *Game) IsPeakRound() bool {
	return !g.IsTerminal() && g.schedule.At(g.round) == g.schedule.Peak()
}

// DealerIndex returns the seat dealing the current round
func (g *Game) DealerIndex() int {
	return g.dealer
}

// DealerName returns the name of the current dealer
func (g *Game) DealerName() string {
	return g.players[g.dealer].Name
}

// LeadIndex returns the seat after the dealer ("mano"), who plays first and
// picks trump in forced maximum rounds.
func (g *Game) LeadIndex() int {
	return (g.dealer + 1) % len(g.players)
}

// LeadName returns the name of the lead player
func (g *Game) LeadName() string {
	return g.players[g.LeadIndex()].Name
}

// Variant returns the rule variant the game was created with
func (g *Game) Variant() Variant {
	return g.variant
}

// MaxCards returns the peak card count of the schedule
func (g *Game) MaxCards() int {
	return g.schedule.Peak()
}

// Schedule returns the round schedule
func (g *Game) Schedule() Schedule {
	return g.schedule
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Players returns copies of every player in seating order
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	for i, p := range g.players {
		out[i] = p.clone()
	}
	return out
}

// Player returns a copy of the player in the given seat
func (g *Game) Player(seat int) (Player, bool) {
	if seat < 0 || seat >= len(g.players) {
		return Player{}, false
	}
	return g.players[seat].clone(), true
}

// Standings returns every player's score in seating order
func (g *Game) Standings() []Standing {
	out := make([]Standing, len(g.players))
	for i, p := range g.players {
		out[i] = Standing{Seat: p.Seat, Name: p.Name, Score: p.Score}
	}
	return out
}

// Winner returns the player with the highest score. Ties go to the first
// tied player in seating order.
func (g *Game) Winner() Player {
	best := g.players[0]
	for _, p := range g.players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best.clone()
}

// Leaders returns every player sharing the highest score, in seating order
func (g *Game) Leaders() []Player {
	top := g.players[0].Score
	for _, p := range g.players[1:] {
		if p.Score > top {
			top = p.Score
		}
	}
	var leaders []Player
	for _, p := range g.players {
		if p.Score == top {
			leaders = append(leaders, p.clone())
		}
	}
	return leaders
}
