package statistics

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/podrida/internal/game"
)

func TestHistogram(t *testing.T) {
	h := NewHistogram(3)
	for _, v := range []int{0, 1, 1, 3, -1, 5, 1} {
		h.Add(v)
	}

	want := []int{1, 3, 0, 1}
	for i, c := range want {
		if h.Counts[i] != c {
			t.Errorf("Counts[%d] = %d, want %d", i, h.Counts[i], c)
		}
	}
	if h.Below != 1 || h.Above != 1 {
		t.Errorf("Expected 1 below and 1 above, got %d and %d", h.Below, h.Above)
	}
	if h.Total() != 7 {
		t.Errorf("Expected total 7, got %d", h.Total())
	}
	if h.Mode() != 1 {
		t.Errorf("Expected mode 1, got %d", h.Mode())
	}
	if h.Peak() != 3 {
		t.Errorf("Expected peak 3, got %d", h.Peak())
	}
	labels := h.Labels()
	if len(labels) != 4 || labels[0] != "0" || labels[3] != "3" {
		t.Errorf("Unexpected labels %v", labels)
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := NewHistogram(-4)
	if h.Max != 0 || len(h.Counts) != 1 {
		t.Fatalf("Negative max should clamp to a single bucket, got %+v", h)
	}
	if h.Mode() != -1 {
		t.Errorf("Empty histogram mode should be -1, got %d", h.Mode())
	}
}

func TestPlayerStatsAdd(t *testing.T) {
	s := NewPlayerStats("Ana", 3)
	rounds := [][2]int{
		{1, 1}, // hit +13
		{0, 0}, // hit +10
		{2, 0}, // over by 2, -6
		{0, 1}, // under by 1, -3
		{3, 3}, // hit +19
	}
	for _, r := range rounds {
		s.Add(r[0], r[1])
	}

	if s.Rounds != 5 || s.Hits != 3 {
		t.Fatalf("Expected 5 rounds and 3 hits, got %d and %d", s.Rounds, s.Hits)
	}
	if s.OverBids != 1 || s.UnderBids != 1 {
		t.Errorf("Expected 1 over and 1 under, got %d and %d", s.OverBids, s.UnderBids)
	}
	if s.SumMiss != 3 {
		t.Errorf("Expected total miss 3, got %d", s.SumMiss)
	}
	if s.LongestStreak != 2 {
		t.Errorf("Expected longest streak 2, got %d", s.LongestStreak)
	}
	if s.BestRound != 5 || s.BestScore != 19 {
		t.Errorf("Expected best round 5 with 19, got %d with %d", s.BestRound, s.BestScore)
	}
	if s.Points != 33 {
		t.Errorf("Expected 33 points, got %d", s.Points)
	}
	if math.Abs(s.HitRate()-0.6) > 1e-9 {
		t.Errorf("Expected hit rate 0.6, got %f", s.HitRate())
	}
	if math.Abs(s.MeanMiss()-0.6) > 1e-9 {
		t.Errorf("Expected mean miss 0.6, got %f", s.MeanMiss())
	}
	if s.Bids.Counts[0] != 2 || s.Tricks.Counts[0] != 2 {
		t.Errorf("Unexpected zero buckets: bids %v tricks %v", s.Bids.Counts, s.Tricks.Counts)
	}
}

func TestPlayerStatsZeroRounds(t *testing.T) {
	s := NewPlayerStats("Ana", 2)
	if s.HitRate() != 0 || s.MeanMiss() != 0 {
		t.Errorf("Empty stats should report zeros")
	}
}

func playGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New([]string{"Ana", "Beto", "Caro"}, 2, 0, game.Classic, game.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestReportMatchesCollector(t *testing.T) {
	g := playGame(t)
	collector := Attach(g)

	rounds := [][2][]int{
		{{0, 0, 0}, {1, 0, 0}},
		{{1, 1, 1}, {1, 1, 0}},
		{{1, 1, 0}, {1, 1, 0}}, // rejected: bids add up to 2
		{{2, 0, 1}, {2, 0, 0}},
		{{0, 0, 0}, {0, 0, 1}},
	}
	for _, r := range rounds {
		_, _ = g.ProcessRound(r[0], r[1])
	}

	if !g.IsTerminal() {
		t.Fatal("Expected game to be over")
	}
	if !collector.Finished() {
		t.Error("Collector should have seen game over")
	}
	if collector.Rejected() != 1 {
		t.Errorf("Expected 1 rejected round, got %d", collector.Rejected())
	}

	report := NewReport(g)
	live := collector.Report()
	if report.MaxCards != 2 || live.MaxCards != 2 {
		t.Errorf("Expected max cards 2, got %d and %d", report.MaxCards, live.MaxCards)
	}
	for i, s := range report.Players {
		l := live.Players[i]
		if s.Name != l.Name || s.Hits != l.Hits || s.Points != l.Points {
			t.Errorf("Seat %d: report %+v differs from collector %+v", i, s, l)
		}
		standing := g.Standings()[i]
		if s.Points != standing.Score {
			t.Errorf("Seat %d: points %d do not match score %d", i, s.Points, standing.Score)
		}
	}

	beto := report.Player("Beto")
	if beto == nil || beto.Hits != 4 {
		t.Fatalf("Expected Beto to hit every round, got %+v", beto)
	}
	if report.Player("Nobody") != nil {
		t.Error("Unknown player should be nil")
	}
	if report.MostAccurate().Name != "Beto" {
		t.Errorf("Expected Beto most accurate, got %s", report.MostAccurate().Name)
	}

	// Ana bid 0,1,2,0 -> buckets 0:2, 1:1, 2:1
	ana := report.Player("Ana")
	if ana.Bids.Counts[0] != 2 || ana.Bids.Counts[1] != 1 || ana.Bids.Counts[2] != 1 {
		t.Errorf("Unexpected Ana bid histogram %v", ana.Bids.Counts)
	}
}
