package game

import (
	"errors"
	"fmt"
)

// Construction and usage errors
var (
	ErrTooFewPlayers   = errors.New("at least 2 players required")
	ErrDuplicatePlayer = errors.New("duplicate player name")
	ErrEmptyName       = errors.New("player name cannot be empty")
	ErrInvalidMaxCards = errors.New("max cards must be positive")
	ErrInvalidDealer   = errors.New("dealer index out of range")
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrGameOver        = errors.New("game is over")
)

// Rule violation sentinels, matched by errors.Is against a *RuleViolation.
var (
	ErrSumEqualsDeal = errors.New("sum of bids equals cards dealt")
	ErrSumMismatch   = errors.New("sum of tricks does not match cards dealt")
	ErrOutOfRange    = errors.New("value outside 0..cards dealt")
)

// ViolationKind names the rule a round submission broke.
type ViolationKind string

const (
	SumEqualsDeal ViolationKind = "sum-equals-deal"
	SumMismatch   ViolationKind = "sum-mismatch"
	OutOfRange    ViolationKind = "out-of-range"
)

// RuleViolation is returned when a round's bids or tricks break a scoring
// rule. It is always recoverable by resubmitting the same round.
type RuleViolation struct {
	Kind  ViolationKind
	Dealt int // cards dealt this round
	Sum   int // offending sum (SumEqualsDeal, SumMismatch)

	// Set for OutOfRange only
	Player int
	Value  int
}

func (v *RuleViolation) Error() string {
	switch v.Kind {
	case SumEqualsDeal:
		return fmt.Sprintf("bids cannot add up to %d: someone has to change their bid", v.Dealt)
	case SumMismatch:
		return fmt.Sprintf("tricks won must add up to exactly %d (got %d)", v.Dealt, v.Sum)
	case OutOfRange:
		return fmt.Sprintf("seat %d: %d is outside 0..%d", v.Player, v.Value, v.Dealt)
	}
	return fmt.Sprintf("rule violation %s", v.Kind)
}

// Is lets errors.Is match the kind sentinels.
func (v *RuleViolation) Is(target error) bool {
	switch target {
	case ErrSumEqualsDeal:
		return v.Kind == SumEqualsDeal
	case ErrSumMismatch:
		return v.Kind == SumMismatch
	case ErrOutOfRange:
		return v.Kind == OutOfRange
	}
	return false
}

// ArityError reports a round submission whose length does not match the
// number of seated players.
type ArityError struct {
	Want   int
	Bids   int
	Tricks int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %d bids and tricks, got %d bids and %d tricks", e.Want, e.Bids, e.Tricks)
}

// ValidateBids enforces the podrida rule: the bids for a round must not add
// up to the number of cards dealt. Individual bids are not bounded here.
func ValidateBids(bids []int, cards int) error {
	total := sum(bids)
	if total == cards {
		return &RuleViolation{Kind: SumEqualsDeal, Dealt: cards, Sum: total}
	}
	return nil
}

// ValidateResults checks that the tricks won in a round add up to exactly
// the number of cards dealt.
func ValidateResults(actuals []int, cards int) error {
	total := sum(actuals)
	if total != cards {
		return &RuleViolation{Kind: SumMismatch, Dealt: cards, Sum: total}
	}
	return nil
}

// validateBounds rejects any value outside [0, cards]. Only used when the
// game was created with WithStrictBounds.
func validateBounds(values []int, cards int) error {
	for i, v := range values {
		if v < 0 || v > cards {
			return &RuleViolation{Kind: OutOfRange, Dealt: cards, Player: i, Value: v}
		}
	}
	return nil
}

// Score returns the points for one player in one round: 10 plus 3 per trick
// when the bid is made exactly, otherwise minus 3 per trick of difference.
func Score(bid, actual int) int {
	if bid == actual {
		return 10 + 3*actual
	}
	diff := bid - actual
	if diff < 0 {
		diff = -diff
	}
	return -3 * diff
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
