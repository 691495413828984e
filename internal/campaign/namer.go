package campaign

import "fmt"

// MaxLeaves bounds leaf counts to the single-letter naming range. Counts
// above 26 would need a multi-letter scheme; until one exists the namer
// fails fast instead of emitting non-alphabetic suffixes.
const MaxLeaves = 26

// LeafName returns the contract name for the leaf at the given zero-based
// ordinal: the family stem followed by an uppercase letter ('A' + ordinal).
func LeafName(family Family, ordinal uint8) (string, error) {
	if !family.IsLeafFamily() {
		return "", fmt.Errorf("%s: %w", family, ErrNotLeafFamily)
	}
	if ordinal >= MaxLeaves {
		return "", fmt.Errorf("ordinal %d: %w", ordinal, ErrOrdinalOutOfRange)
	}
	return family.Stem() + string(rune('A'+ordinal)), nil
}
