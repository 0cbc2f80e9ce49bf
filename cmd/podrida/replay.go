package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/podrida/internal/game"
	"github.com/lox/podrida/internal/statistics"
	"github.com/lox/podrida/internal/transcript"
)

type ReplayCmd struct {
	Files []string `arg:"" name:"file" help:"Transcript files to score"`
	Stats bool     `short:"s" help:"Print bidding statistics for each game"`
}

func (c *ReplayCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.UI.LogLevel, "REPLAY")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, err := transcript.ReplayFiles(ctx, c.Files, game.WithLogger(logger))
	if err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		fmt.Println(titleStyle.Render(o.Name))
		if o.Game != nil && o.Game.RoundsPlayed() > 0 {
			printStandings(os.Stdout, o.Game)
			if c.Stats {
				printStats(os.Stdout, statistics.NewReport(o.Game))
			}
		}
		if o.Err != nil {
			failed++
			fmt.Println(errorStyle.Render("error: " + o.Err.Error()))
		} else if !o.Game.IsTerminal() {
			fmt.Printf("incomplete: %d of %d rounds recorded\n", o.Game.RoundsPlayed(), o.Game.TotalRounds())
		}
		fmt.Println()
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(outcomes))
	}
	return nil
}

func printStats(w io.Writer, r *statistics.Report) {
	for _, s := range r.Players {
		fmt.Fprintf(w, "  %-12s hit %d/%d (%.0f%%), over %d, under %d, streak %d\n",
			s.Name, s.Hits, s.Rounds, s.HitRate()*100, s.OverBids, s.UnderBids, s.LongestStreak)
	}
	if best := r.MostAccurate(); best != nil && best.Rounds > 0 {
		fmt.Fprintf(w, "  Most accurate: %s\n", best.Name)
	}
}
