package game

import (
	"fmt"
	"strings"
)

// Variant selects the rule set a game is played under.
type Variant int

const (
	// Classic deals the peak card count twice.
	Classic Variant = iota
	// ForcedMaxRound deals the peak card count once per player so every seat
	// gets to lead a maximum round.
	ForcedMaxRound
)

var variantNames = map[Variant]string{
	Classic:        "classic",
	ForcedMaxRound: "forced-max",
}

// String returns the configuration name of the variant
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Valid reports whether v is one of the known variants
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// PeakRepeats returns how many rounds deal the maximum card count.
func (v Variant) PeakRepeats(playerCount int) int {
	if v == ForcedMaxRound {
		return playerCount
	}
	return 2
}

// ParseVariant converts a configuration name into a Variant.
// The empty string selects Classic.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return Classic, nil
	case "forced-max", "forced_max", "special":
		return ForcedMaxRound, nil
	}
	return Classic, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Variants lists the known variants in declaration order
func Variants() []Variant {
	return []Variant{Classic, ForcedMaxRound}
}
