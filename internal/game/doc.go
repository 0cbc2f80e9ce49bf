// Package game implements the scoring engine for podrida, an Oh-Hell style
// trick-taking game.
//
// The main type is Game, which owns the round schedule, the current round,
// the dealer seat, and every player's running score and bid/trick history.
// Callers submit each round's bids and tricks won and read back scores.
//
// # Basic Usage
//
//	g, err := game.New([]string{"Ana", "Beto", "Caro"}, 5, 0, game.Classic)
//	if err != nil {
//	    return err
//	}
//	for !g.IsTerminal() {
//	    bids, tricks := collect(g.CurrentRoundCards())
//	    if _, err := g.ProcessRound(bids, tricks); err != nil {
//	        var v *game.RuleViolation
//	        if errors.As(err, &v) {
//	            // show v and ask again for the same round
//	        }
//	    }
//	}
//	winner := g.Winner()
//
// # Rules
//
//   - The schedule climbs from 1 card to the peak, deals the peak twice
//     (Classic) or once per player (ForcedMaxRound), then climbs back down.
//   - Bids for a round must not add up to the cards dealt.
//   - Tricks won must add up to exactly the cards dealt.
//   - Making a bid exactly scores 10 + 3 per trick; missing it costs 3 per
//     trick of difference.
//   - The dealer moves one seat per scored round; the seat after the dealer
//     leads.
//
// A rejected round leaves the game untouched. Events for scored, rejected
// and final rounds are published on the game's EventBus.
package game
