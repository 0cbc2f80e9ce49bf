package transcript

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/podrida/internal/game"
)

const fullGame = `
game {
  players   = ["Alice", "Bob", "Charlie"]
  max_cards = 2
  dealer    = 2
}

round {
  bids   = [0, 0, 0]
  tricks = [1, 0, 0]
}

round {
  bids   = [1, 1, 1]
  tricks = [1, 1, 0]
}

round {
  bids   = [2, 0, 1]
  tricks = [2, 0, 0]
}

round {
  bids   = [0, 0, 0]
  tricks = [0, 0, 1]
}
`

const badRound = `
game {
  players   = ["Alice", "Bob"]
  max_cards = 1
}

round {
  bids   = [1, 0]
  tricks = [1, 0]
}
`

func quietLogger() game.Option {
	return game.WithLogger(log.New(io.Discard))
}

func TestParseAndReplay(t *testing.T) {
	tr, err := Parse([]byte(fullGame), "full.hcl")
	require.NoError(t, err)
	assert.Equal(t, "full.hcl", tr.Name)
	assert.Equal(t, 2, tr.Game.MaxCards)
	assert.Equal(t, "classic", tr.Game.Variant, "variant defaults to classic")
	require.Len(t, tr.Rounds, 4)

	out, err := Replay(tr, quietLogger())
	require.NoError(t, err)
	assert.True(t, out.Game.IsTerminal())
	assert.Len(t, out.Results, 4)
	assert.Equal(t, []int{36, 43, 1}, out.Results[3].Totals)
	assert.Equal(t, "Bob", out.Game.Winner().Name)
}

func TestReplayStopsAtRejectedRound(t *testing.T) {
	tr, err := Parse([]byte(badRound), "bad.hcl")
	require.NoError(t, err)

	out, err := Replay(tr, quietLogger())
	var replayErr *ReplayError
	require.ErrorAs(t, err, &replayErr)
	assert.Equal(t, 1, replayErr.Round)
	assert.ErrorIs(t, err, game.ErrSumEqualsDeal)
	assert.Equal(t, "round 1: bids cannot add up to 1: someone has to change their bid", err.Error())

	require.NotNil(t, out)
	assert.Equal(t, 0, out.Game.RoundsPlayed())
}

func TestReplayInvalidSettings(t *testing.T) {
	tr, err := Parse([]byte(`game {
  players = ["Solo"]
}`), "solo.hcl")
	require.NoError(t, err)

	out, err := Replay(tr, quietLogger())
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "at least 2 players")
}

func TestParseRequiresGameBlock(t *testing.T) {
	_, err := Parse([]byte(`round {
  bids = [0]
  tricks = [1]
}`), "nogame.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestReplayFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
		return path
	}
	files := []string{
		write("a.hcl", fullGame),
		write("b.hcl", badRound),
		filepath.Join(dir, "missing.hcl"),
		write("c.hcl", fullGame),
	}

	outcomes, err := ReplayFiles(context.Background(), files, quietLogger())
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	for i, o := range outcomes {
		assert.Equal(t, files[i], o.Name, "outcomes keep argument order")
	}
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, "Bob", outcomes[0].Game.Winner().Name)
	assert.ErrorIs(t, outcomes[1].Err, game.ErrSumEqualsDeal)
	assert.ErrorIs(t, outcomes[2].Err, os.ErrNotExist)
	assert.Nil(t, outcomes[2].Game)
	assert.NoError(t, outcomes[3].Err)
}

func TestReplayFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReplayFiles(ctx, []string{"x.hcl"}, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
