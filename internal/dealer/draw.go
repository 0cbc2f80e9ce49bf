// Package dealer picks the first dealer of a game at random, with a short
// spin through the seats so players can watch the draw.
package dealer

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/coder/quartz"
)

const (
	DefaultTicks    = 12
	DefaultInterval = 120 * time.Millisecond
)

var (
	// ErrTooFewSeats is returned when there is nobody to choose between.
	ErrTooFewSeats = errors.New("dealer draw needs at least 2 seats")
	// ErrInvalidInterval is returned for a spin with a non-positive interval.
	ErrInvalidInterval = errors.New("dealer draw interval must be positive")
)

// Option configures a draw
type Option func(*drawConfig)

type drawConfig struct {
	ticks    int
	interval time.Duration
	onTick   func(seat int)
}

// WithTicks sets how many seats are flashed before the result. Zero skips
// the spin.
func WithTicks(n int) Option {
	return func(c *drawConfig) { c.ticks = n }
}

// WithInterval sets the delay between flashes
func WithInterval(d time.Duration) Option {
	return func(c *drawConfig) { c.interval = d }
}

// WithOnTick registers a callback invoked with the seat shown on each flash.
// The last flash always shows the chosen seat.
func WithOnTick(fn func(seat int)) Option {
	return func(c *drawConfig) { c.onTick = fn }
}

// Spin is a dealer draw in progress. The result is fixed when the spin is
// created; Wait plays out the flashes.
type Spin struct {
	seats  int
	result int
	cfg    drawConfig
	ticker *quartz.Ticker
}

// Start chooses the dealer and arms the flash ticker.
func Start(clock quartz.Clock, rng *rand.Rand, seats int, opts ...Option) (*Spin, error) {
	if seats < 2 {
		return nil, ErrTooFewSeats
	}
	cfg := drawConfig{ticks: DefaultTicks, interval: DefaultInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ticks > 0 && cfg.interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, cfg.interval)
	}

	s := &Spin{
		seats:  seats,
		result: rng.IntN(seats),
		cfg:    cfg,
	}
	if cfg.ticks > 0 {
		s.ticker = clock.NewTicker(cfg.interval, "dealer", "draw")
	}
	return s, nil
}

// Wait flashes the seats and returns the chosen dealer. It returns early with
// ctx's error if ctx is cancelled.
func (s *Spin) Wait(ctx context.Context) (int, error) {
	if s.ticker == nil {
		return s.result, nil
	}
	defer s.ticker.Stop()

	// Start far enough back that the final flash lands on the result.
	seat := mod(s.result-(s.cfg.ticks-1), s.seats)
	for i := 0; i < s.cfg.ticks; i++ {
		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-s.ticker.C:
		}
		if s.cfg.onTick != nil {
			s.cfg.onTick(seat)
		}
		seat = (seat + 1) % s.seats
	}
	return s.result, nil
}

// Draw picks a dealer among seats, flashing seats on clock ticks first.
func Draw(ctx context.Context, clock quartz.Clock, rng *rand.Rand, seats int, opts ...Option) (int, error) {
	s, err := Start(clock, rng, seats, opts...)
	if err != nil {
		return -1, err
	}
	return s.Wait(ctx)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
