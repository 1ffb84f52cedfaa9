// Package helix clusters an ordered pair sequence into contiguous helices.
//
// A helix is a maximal run of pairs that are adjacent on either strand of
// the pairing: pair i extends the current helix when its first coordinate
// is exactly one greater than the previous pair's first coordinate, or its
// second coordinate is exactly one greater than the previous pair's second
// coordinate. The walk is a single forward pass; a pair is permanently
// assigned to the helix open at the time it is visited.
//
// Two known approximations are part of the contract and must not be
// "fixed": gaps of two or more unpaired residues between consecutive
// members always start a new helix, and the first pair in the sequence
// always opens helix 0 even when it visually belongs elsewhere.
package helix

import (
	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/pairing"
)

// Helix is an ordered, non-empty run of strand-adjacent pairs.
// Index is assigned in increasing order of first appearance in the ordered
// pair sequence; Pairs mirrors the sequence order.
type Helix struct {
	Index int
	Pairs []pairing.Pair
}

// Segment partitions the ordered pair sequence into helices. Every input
// pair lands in exactly one helix. The input must be non-empty and already
// normalized (sorted, deduplicated); Segment does not reorder it.
func Segment(ordered []pairing.Pair) ([]Helix, error) {
	if len(ordered) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no pairs to segment")
	}

	helices := []Helix{{Index: 0, Pairs: []pairing.Pair{ordered[0]}}}
	for i := 1; i < len(ordered); i++ {
		cur := &helices[len(helices)-1]
		prev := cur.Pairs[len(cur.Pairs)-1]
		if adjacent(prev, ordered[i]) {
			cur.Pairs = append(cur.Pairs, ordered[i])
			continue
		}
		helices = append(helices, Helix{
			Index: cur.Index + 1,
			Pairs: []pairing.Pair{ordered[i]},
		})
	}
	return helices, nil
}

// adjacent reports whether next continues prev on either strand.
// Contiguity is tested independently per strand; either suffices.
func adjacent(prev, next pairing.Pair) bool {
	return next.First == prev.First+1 || next.Second == prev.Second+1
}

// MaxIndex returns the highest helix index in the segmentation.
func MaxIndex(helices []Helix) int {
	return helices[len(helices)-1].Index
}

// PairCount returns the total number of pairs across all helices.
func PairCount(helices []Helix) int {
	n := 0
	for _, h := range helices {
		n += len(h.Pairs)
	}
	return n
}
