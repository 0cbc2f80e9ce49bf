// Package transcript reads recorded games and replays them through the
// scoring engine.
//
// A transcript is an HCL file with the table settings and every scored
// round in order:
//
//	game {
//	  players   = ["Ana", "Beto", "Caro"]
//	  max_cards = 2
//	  dealer    = 0
//	}
//
//	round {
//	  bids   = [0, 0, 0]
//	  tricks = [1, 0, 0]
//	}
package transcript

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/sync/errgroup"

	"github.com/lox/podrida/internal/config"
	"github.com/lox/podrida/internal/game"
)

// Transcript is a recorded game
type Transcript struct {
	Name   string
	Game   config.GameSettings
	Rounds []Round
}

// Round is one recorded round, in seating order
type Round struct {
	Bids   []int `hcl:"bids"`
	Tricks []int `hcl:"tricks"`
}

type transcriptFile struct {
	Game   config.GameSettings `hcl:"game,block"`
	Rounds []Round             `hcl:"round,block"`
}

// Load reads a transcript from disk
func Load(filename string) (*Transcript, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes a transcript from HCL source
func Parse(src []byte, filename string) (*Transcript, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var tf transcriptFile
	diags = gohcl.DecodeBody(file.Body, nil, &tf)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	tf.Game.ApplyDefaults()

	return &Transcript{Name: filename, Game: tf.Game, Rounds: tf.Rounds}, nil
}

// ReplayError reports the recorded round the engine refused
type ReplayError struct {
	Round int // 1-based
	Err   error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("round %d: %s", e.Round, game.ViolationMessage(e.Err))
}

func (e *ReplayError) Unwrap() error { return e.Err }

// Outcome is the result of replaying one transcript. Game holds the state
// reached, which is the final state unless Err is set.
type Outcome struct {
	Name    string
	Game    *game.Game
	Results []game.RoundResult
	Err     error
}

// Replay scores every recorded round. It stops at the first round the engine
// rejects and returns a *ReplayError alongside the partial outcome.
func Replay(t *Transcript, opts ...game.Option) (*Outcome, error) {
	if err := t.Game.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}
	g, err := t.Game.NewGame(-1, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name, err)
	}

	out := &Outcome{Name: t.Name, Game: g}
	for i, r := range t.Rounds {
		result, err := g.ProcessRound(r.Bids, r.Tricks)
		if err != nil {
			out.Err = &ReplayError{Round: i + 1, Err: err}
			return out, out.Err
		}
		out.Results = append(out.Results, *result)
	}
	return out, nil
}

// ReplayFiles loads and replays every file concurrently, one game per
// goroutine. Outcomes are returned in argument order; per-file failures are
// recorded in Outcome.Err. The returned error is only set when ctx ends first.
func ReplayFiles(ctx context.Context, files []string, opts ...game.Option) ([]Outcome, error) {
	outcomes := make([]Outcome, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = replayFile(name, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

func replayFile(name string, opts []game.Option) Outcome {
	t, err := Load(name)
	if err != nil {
		return Outcome{Name: name, Err: err}
	}
	out, err := Replay(t, opts...)
	if out == nil {
		return Outcome{Name: name, Err: err}
	}
	return *out
}
