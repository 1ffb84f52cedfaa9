// Package pairing defines the canonical representation of base-pairing
// positions in a linear sequence.
//
// All input formats converge on the same shape here: a [Pair] is an
// unordered pair of two distinct 1-based positions, and a [Set] is a
// duplicate-free collection of such pairs. [Normalize] is the single point
// where cross-format differences are erased: it deduplicates raw parser
// output and produces the ordered pair sequence that helix segmentation
// and rendering consume.
package pairing

import (
	"cmp"
	"slices"

	"github.com/arcplot/arcplot/pkg/errors"
)

// Pair is an unordered pair of two distinct sequence positions.
// Positions are 1-based in all source formats. The zero value is invalid.
type Pair struct {
	First  int
	Second int
}

// Canonical returns the pair with its coordinates in ascending order.
// (q, p) and (p, q) canonicalize to the same value, which is what makes
// map-keyed deduplication order-independent.
func (p Pair) Canonical() Pair {
	if p.Second < p.First {
		return Pair{First: p.Second, Second: p.First}
	}
	return p
}

// Span returns the absolute distance between the two positions.
func (p Pair) Span() int {
	if p.Second < p.First {
		return p.First - p.Second
	}
	return p.Second - p.First
}

// Midpoint returns the center of the pair on the sequence axis.
func (p Pair) Midpoint() float64 {
	return float64(p.First+p.Second) / 2
}

// Compare orders pairs lexicographically: by first coordinate ascending,
// second coordinate as tie-break. This is the total order behind the
// ordered pair sequence.
func Compare(a, b Pair) int {
	if c := cmp.Compare(a.First, b.First); c != 0 {
		return c
	}
	return cmp.Compare(a.Second, b.Second)
}

// Set is a collection of pairs with no duplicate unordered pairs.
type Set struct {
	members map[Pair]struct{}
}

// NewSet creates an empty pair set.
func NewSet() *Set {
	return &Set{members: make(map[Pair]struct{})}
}

// Add inserts the pair, ignoring exact and order-swapped duplicates.
// Self-pairs (p == q) are rejected and reported.
func (s *Set) Add(p Pair) error {
	if p.First == p.Second {
		return errors.New(errors.ErrCodeParse, "position %d pairs with itself", p.First)
	}
	s.members[p.Canonical()] = struct{}{}
	return nil
}

// Contains reports whether the set holds the pair in either coordinate order.
func (s *Set) Contains(p Pair) bool {
	_, ok := s.members[p.Canonical()]
	return ok
}

// Len returns the number of distinct unordered pairs.
func (s *Set) Len() int {
	return len(s.members)
}

// Ordered returns the members sorted by [Compare]. The result is a fresh
// slice; the set itself is not consumed.
func (s *Set) Ordered() []Pair {
	out := make([]Pair, 0, len(s.members))
	for p := range s.members {
		out = append(out, p)
	}
	slices.SortFunc(out, Compare)
	return out
}

// Normalize deduplicates raw parser output and returns the ordered pair
// sequence: canonical pairs sorted by [Compare], no duplicates. It is
// idempotent. An empty result is an error, since there is nothing to
// segment or draw.
func Normalize(raw []Pair) ([]Pair, error) {
	set := NewSet()
	for _, p := range raw {
		if err := set.Add(p); err != nil {
			return nil, err
		}
	}
	if set.Len() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no base pairs after normalization")
	}
	return set.Ordered(), nil
}

// Bounds holds the minimum and maximum position across a pair sequence.
type Bounds struct {
	Min int
	Max int
}

// BoundsOf scans the pairs for the extreme positions on either strand.
// It panics on an empty slice; callers normalize first.
func BoundsOf(pairs []Pair) Bounds {
	b := Bounds{Min: pairs[0].First, Max: pairs[0].First}
	for _, p := range pairs {
		b.Min = min(b.Min, p.First, p.Second)
		b.Max = max(b.Max, p.First, p.Second)
	}
	return b
}
