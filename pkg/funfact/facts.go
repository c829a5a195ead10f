package funfact

import (
	"errors"
)

// ErrIndexOutOfRange is returned when a 1-based position does not address a fact
var ErrIndexOutOfRange = errors.New("fun fact index out of range")

// Merge appends additions to existing, skipping any fact already present.
// Order is preserved: existing facts first, then new facts as submitted
func Merge(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing)+len(additions))
	merged := make([]string, 0, len(existing)+len(additions))

	for _, list := range [][]string{existing, additions} {
		for _, fact := range list {
			if seen[fact] {
				continue
			}
			seen[fact] = true
			merged = append(merged, fact)
		}
	}

	return merged
}

// ResolveIndex converts a 1-based position into a slice index for a list of the given length
func ResolveIndex(position, length int) (int, error) {
	i := position - 1
	if i < 0 || i >= length {
		return 0, ErrIndexOutOfRange
	}
	return i, nil
}

// Replace returns a copy of facts with the fact at the 1-based position swapped out
func Replace(facts []string, position int, fact string) ([]string, error) {
	i, err := ResolveIndex(position, len(facts))
	if err != nil {
		return nil, err
	}

	out := copyFacts(facts)
	out[i] = fact
	return out, nil
}

// Remove returns a copy of facts without the fact at the 1-based position
func Remove(facts []string, position int) ([]string, error) {
	i, err := ResolveIndex(position, len(facts))
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(facts)-1)
	out = append(out, facts[:i]...)
	out = append(out, facts[i+1:]...)
	return out, nil
}
