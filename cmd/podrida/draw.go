package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/podrida/internal/config"
	"github.com/lox/podrida/internal/dealer"
	"github.com/lox/podrida/internal/randutil"
)

const (
	defaultDrawTicks    = dealer.DefaultTicks
	defaultDrawInterval = dealer.DefaultInterval
)

type DrawCmd struct {
	Players  string        `short:"p" help:"Comma separated player names in seating order"`
	Ticks    int           `default:"12" help:"Seats flashed before the result"`
	Interval time.Duration `default:"120ms" help:"Delay between flashes"`
	Seed     int64         `help:"Random seed (0 seeds from the clock)"`
}

func (c *DrawCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	names := cfg.Game.Players
	if c.Players != "" {
		names = config.SplitPlayers(c.Players)
	}
	if len(names) == 0 {
		return errors.New("no players: pass --players or list them in the game block of " + defaultConfigFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = drawDealer(ctx, quartz.NewReal(), os.Stdout, names, c.Ticks, c.Interval, c.Seed)
	return err
}

// drawDealer spins through the names on w and returns the chosen seat
func drawDealer(ctx context.Context, clock quartz.Clock, w io.Writer, names []string, ticks int, interval time.Duration, seed int64) (int, error) {
	rng := randutil.FromClock(clock)
	if seed != 0 {
		rng = randutil.New(seed)
	}

	seat, err := dealer.Draw(ctx, clock, rng, len(names),
		dealer.WithTicks(ticks),
		dealer.WithInterval(interval),
		dealer.WithOnTick(func(seat int) {
			fmt.Fprintf(w, "\r%-24s", names[seat])
		}),
	)
	if err != nil {
		return -1, fmt.Errorf("dealer draw: %w", err)
	}
	if ticks > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, successStyle.Render(names[seat]+" deals first"))
	return seat, nil
}

// pause waits for d on the clock so the table can see the draw result
func pause(ctx context.Context, clock quartz.Clock, d time.Duration) error {
	timer := clock.NewTimer(d, "play", "pause")
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
