package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		maxCards int
		players  int
		variant  Variant
		want     []int
	}{
		{"single card classic", 1, 3, Classic, []int{1, 1}},
		{"single card forced max", 1, 4, ForcedMaxRound, []int{1, 1, 1, 1}},
		{"three cards classic", 3, 4, Classic, []int{1, 2, 3, 3, 2, 1}},
		{"three cards forced max", 3, 4, ForcedMaxRound, []int{1, 2, 3, 3, 3, 3, 2, 1}},
		{"heads up forced max matches classic", 2, 2, ForcedMaxRound, []int{1, 2, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := GenerateSchedule(tt.maxCards, tt.players, tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Rounds())
			assert.Equal(t, len(tt.want), s.Len())
			assert.Equal(t, tt.maxCards, s.Peak())
		})
	}
}

func TestGenerateScheduleShape(t *testing.T) {
	t.Parallel()

	for _, variant := range Variants() {
		for maxCards := 1; maxCards <= 12; maxCards++ {
			for players := 2; players <= 8; players++ {
				s, err := GenerateSchedule(maxCards, players, variant)
				require.NoError(t, err)

				peak := variant.PeakRepeats(players)
				require.Equal(t, 2*(maxCards-1)+peak, s.Len(),
					"length for max=%d players=%d variant=%s", maxCards, players, variant)

				rounds := s.Rounds()
				legs := append(slices.Clone(rounds[:maxCards-1]), rounds[maxCards-1+peak:]...)
				reversed := slices.Clone(legs)
				slices.Reverse(reversed)
				assert.Equal(t, legs, reversed, "legs must be a palindrome")

				for _, cards := range rounds[maxCards-1 : maxCards-1+peak] {
					assert.Equal(t, maxCards, cards)
				}
				for i := 1; i < maxCards-1; i++ {
					assert.Equal(t, rounds[i-1]+1, rounds[i], "ascending leg")
				}
			}
		}
	}
}

func TestGenerateScheduleErrors(t *testing.T) {
	t.Parallel()

	_, err := GenerateSchedule(0, 3, Classic)
	assert.ErrorIs(t, err, ErrInvalidMaxCards)

	_, err = GenerateSchedule(-2, 3, Classic)
	assert.ErrorIs(t, err, ErrInvalidMaxCards)

	_, err = GenerateSchedule(3, 1, Classic)
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = GenerateSchedule(3, 3, Variant(7))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestScheduleRoundsIsACopy(t *testing.T) {
	s, err := GenerateSchedule(2, 2, Classic)
	require.NoError(t, err)

	rounds := s.Rounds()
	rounds[0] = 99
	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 6, s.TotalTricks())
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", Classic, false},
		{"classic", Classic, false},
		{" Classic ", Classic, false},
		{"forced-max", ForcedMaxRound, false},
		{"forced_max", ForcedMaxRound, false},
		{"special", ForcedMaxRound, false},
		{"hold'em", Classic, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "classic", Classic.String())
	assert.Equal(t, "forced-max", ForcedMaxRound.String())
	assert.Equal(t, "Variant(9)", Variant(9).String())
}
