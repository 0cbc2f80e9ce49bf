package game

import "sort"

// Player is a seated player with their running score and per-round history.
// Bids and Tricks are parallel: index r holds round r's bid and tricks won.
type Player struct {
	Seat   int
	Name   string
	Score  int
	Bids   []int
	Tricks []int
}

// Rounds returns the number of rounds recorded for the player
func (p *Player) Rounds() int {
	return len(p.Bids)
}

// Hits returns how many rounds the player made their bid exactly
func (p *Player) Hits() int {
	hits := 0
	for i, bid := range p.Bids {
		if bid == p.Tricks[i] {
			hits++
		}
	}
	return hits
}

// record applies one round's outcome to the player
func (p *Player) record(bid, tricks int) int {
	delta := Score(bid, tricks)
	p.Score += delta
	p.Bids = append(p.Bids, bid)
	p.Tricks = append(p.Tricks, tricks)
	return delta
}

// clone returns a deep copy so callers cannot mutate engine state
func (p *Player) clone() Player {
	c := *p
	c.Bids = append([]int(nil), p.Bids...)
	c.Tricks = append([]int(nil), p.Tricks...)
	return c
}

// Standing is a player's name and score at a point in the game.
type Standing struct {
	Seat  int
	Name  string
	Score int
}

// RankStandings returns a copy of standings ordered by score, highest first.
// Equal scores keep their seating order.
func RankStandings(standings []Standing) []Standing {
	ranked := append([]Standing(nil), standings...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
