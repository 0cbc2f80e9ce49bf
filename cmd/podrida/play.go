package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/podrida/internal/config"
	"github.com/lox/podrida/internal/game"
	"github.com/lox/podrida/internal/tui"
)

// drawPause keeps the draw result on screen before the TUI takes over
const drawPause = time.Second

type PlayCmd struct {
	Players  string `short:"p" help:"Comma separated player names in seating order"`
	MaxCards int    `short:"m" help:"Cards dealt in the peak round"`
	Variant  string `help:"Rule variant (classic|forced-max)"`
	Dealer   int    `short:"d" default:"-1" help:"Seat of the first dealer, counting from 0"`
	Draw     bool   `help:"Draw the first dealer at random"`
	Strict   bool   `help:"Reject bids and tricks outside 0..cards dealt"`
	LogFile  string `help:"Log file path (overrides config)"`
}

// applyFlags overrides configured game settings with command line flags
func (c *PlayCmd) applyFlags(cfg *config.Config) {
	if c.Players != "" {
		cfg.Game.Players = config.SplitPlayers(c.Players)
	}
	if c.MaxCards > 0 {
		cfg.Game.MaxCards = c.MaxCards
	}
	if c.Variant != "" {
		cfg.Game.Variant = c.Variant
	}
	if c.Dealer >= 0 {
		cfg.Game.Dealer = c.Dealer
		cfg.Game.Draw = false
	}
	if c.Draw {
		cfg.Game.Draw = true
	}
	if c.Strict {
		cfg.Game.Strict = true
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	cfg.Game.ApplyDefaults()
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	c.applyFlags(cfg)
	if len(cfg.Game.Players) == 0 {
		return errors.New("no players: pass --players or list them in the game block of " + defaultConfigFile)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := openLogFile(cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := newLogger(logFile, cfg.UI.LogLevel, "MAIN")

	fmt.Println(titleStyle.Render("♠ ♥ Podrida ♦ ♣"))
	fmt.Println()

	dealer := -1
	if cfg.Game.Draw {
		clock := quartz.NewReal()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		dealer, err = drawDealer(ctx, clock, os.Stdout, cfg.Game.Players, defaultDrawTicks, defaultDrawInterval, 0)
		if err == nil {
			err = pause(ctx, clock, drawPause)
		}
		stop()
		if err != nil {
			return err
		}
	}

	g, err := cfg.Game.NewGame(dealer, game.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("Starting game",
		"players", cfg.Game.Players,
		"maxCards", cfg.Game.MaxCards,
		"variant", g.Variant(),
		"dealer", g.DealerName(),
		"rounds", g.TotalRounds())

	model := tui.NewModel(g, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if g.RoundsPlayed() == 0 {
		return nil
	}
	if !g.IsTerminal() {
		fmt.Printf("Stopped after %d of %d rounds\n", g.RoundsPlayed(), g.TotalRounds())
	}
	printStandings(os.Stdout, g)
	return nil
}
