package statistics

import (
	"math"
	"strconv"

	"github.com/lox/podrida/internal/game"
)

// Histogram counts how often each value in [0, Max] was seen. Values the
// engine accepted but that fall outside the range are counted in Below and
// Above rather than dropped.
type Histogram struct {
	Max    int
	Counts []int // Counts[v] is the number of rounds with value v
	Below  int   // values < 0
	Above  int   // values > Max
}

// NewHistogram creates an empty histogram over [0, maxValue]
func NewHistogram(maxValue int) *Histogram {
	if maxValue < 0 {
		maxValue = 0
	}
	return &Histogram{Max: maxValue, Counts: make([]int, maxValue+1)}
}

// Add counts one observation
func (h *Histogram) Add(v int) {
	switch {
	case v < 0:
		h.Below++
	case v > h.Max:
		h.Above++
	default:
		h.Counts[v]++
	}
}

// Total returns the number of observations, including out-of-range ones
func (h *Histogram) Total() int {
	total := h.Below + h.Above
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Peak returns the largest single bucket count
func (h *Histogram) Peak() int {
	peak := 0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}
	return peak
}

// Mode returns the most frequent in-range value, preferring the smallest on
// ties, or -1 when nothing in range has been counted.
func (h *Histogram) Mode() int {
	mode, best := -1, 0
	for v, c := range h.Counts {
		if c > best {
			mode, best = v, c
		}
	}
	return mode
}

// Labels returns the bucket labels "0".."Max"
func (h *Histogram) Labels() []string {
	labels := make([]string, len(h.Counts))
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// PlayerStats tracks one player's bidding accuracy over a game
type PlayerStats struct {
	Name   string
	Rounds int
	Hits   int // rounds where tricks == bid

	SumMiss   int // sum of |bid - tricks| over missed rounds
	OverBids  int // rounds where the player took fewer tricks than bid
	UnderBids int // rounds where the player took more tricks than bid

	LongestStreak int // longest run of consecutive hits
	BestRound     int // 1-based round with the highest score, 0 if none
	BestScore     int
	Points        int

	Bids   *Histogram
	Tricks *Histogram

	streak int
}

// NewPlayerStats creates empty statistics for a player; maxCards is the
// largest card count in the game's schedule.
func NewPlayerStats(name string, maxCards int) *PlayerStats {
	return &PlayerStats{
		Name:   name,
		Bids:   NewHistogram(maxCards),
		Tricks: NewHistogram(maxCards),
	}
}

// Add incorporates one round
func (s *PlayerStats) Add(bid, tricks int) {
	s.Rounds++
	score := game.Score(bid, tricks)
	s.Points += score
	s.Bids.Add(bid)
	s.Tricks.Add(tricks)

	if bid == tricks {
		s.Hits++
		s.streak++
		if s.streak > s.LongestStreak {
			s.LongestStreak = s.streak
		}
	} else {
		s.streak = 0
		s.SumMiss += int(math.Abs(float64(bid - tricks)))
		if tricks < bid {
			s.OverBids++
		} else {
			s.UnderBids++
		}
	}

	if s.BestRound == 0 || score > s.BestScore {
		s.BestRound = s.Rounds
		s.BestScore = score
	}
}

// HitRate returns the fraction of rounds where the bid was made exactly
func (s *PlayerStats) HitRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rounds)
}

// MeanMiss returns the average distance between bid and tricks over all rounds
func (s *PlayerStats) MeanMiss() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.SumMiss) / float64(s.Rounds)
}

// FromHistory rebuilds a player's statistics from their recorded bids and
// tricks.
func FromHistory(p game.Player, maxCards int) *PlayerStats {
	s := NewPlayerStats(p.Name, maxCards)
	for i, bid := range p.Bids {
		s.Add(bid, p.Tricks[i])
	}
	return s
}

// Report holds statistics for every player of a game, in seating order.
type Report struct {
	MaxCards int
	Players  []*PlayerStats
}

// NewReport builds a report from a game's histories. It can be called at any
// point; only scored rounds are included.
func NewReport(g *game.Game) *Report {
	maxCards := g.MaxCards()
	r := &Report{MaxCards: maxCards}
	for _, p := range g.Players() {
		r.Players = append(r.Players, FromHistory(p, maxCards))
	}
	return r
}

// Player returns the statistics for the named player, or nil
func (r *Report) Player(name string) *PlayerStats {
	for _, s := range r.Players {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// MostAccurate returns the player with the highest hit rate; ties go to the
// earlier seat. Returns nil for an empty report.
func (r *Report) MostAccurate() *PlayerStats {
	var best *PlayerStats
	for _, s := range r.Players {
		if best == nil || s.HitRate() > best.HitRate() {
			best = s
		}
	}
	return best
}
