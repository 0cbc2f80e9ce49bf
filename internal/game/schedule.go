package game

import "fmt"

// Schedule is the ordered list of card counts dealt in each round of a game.
// It is built once by GenerateSchedule and never modified.
type Schedule struct {
	rounds []int
}

// GenerateSchedule builds the up-down round sequence for a game: an
// ascending run 1..maxCards-1, the peak run of maxCards repeated
// variant.PeakRepeats(playerCount) times, then the ascending run reversed.
func GenerateSchedule(maxCards, playerCount int, variant Variant) (Schedule, error) {
	if maxCards < 1 {
		return Schedule{}, fmt.Errorf("%w: %d", ErrInvalidMaxCards, maxCards)
	}
	if playerCount < 2 {
		return Schedule{}, fmt.Errorf("%w: got %d", ErrTooFewPlayers, playerCount)
	}
	if !variant.Valid() {
		return Schedule{}, fmt.Errorf("%w: %v", ErrUnknownVariant, variant)
	}

	peak := variant.PeakRepeats(playerCount)
	rounds := make([]int, 0, 2*(maxCards-1)+peak)

	for cards := 1; cards < maxCards; cards++ {
		rounds = append(rounds, cards)
	}
	for range peak {
		rounds = append(rounds, maxCards)
	}
	for cards := maxCards - 1; cards >= 1; cards-- {
		rounds = append(rounds, cards)
	}

	return Schedule{rounds: rounds}, nil
}

// Len returns the total number of rounds
func (s Schedule) Len() int {
	return len(s.rounds)
}

// At returns the number of cards dealt in round i (zero-based)
func (s Schedule) At(i int) int {
	return s.rounds[i]
}

// Peak returns the largest card count in the schedule, or 0 if empty.
func (s Schedule) Peak() int {
	peak := 0
	for _, cards := range s.rounds {
		if cards > peak {
			peak = cards
		}
	}
	return peak
}

// Rounds returns a copy of the card counts
func (s Schedule) Rounds() []int {
	out := make([]int, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// TotalTricks returns the number of tricks played over the whole game.
func (s Schedule) TotalTricks() int {
	total := 0
	for _, cards := range s.rounds {
		total += cards
	}
	return total
}
