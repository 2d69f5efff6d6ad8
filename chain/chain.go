package chain

import (
	"github.com/ndehigampala97/sawmc/lattice"
)

// MinLen is the smallest chain this package will build. A single bead has
// no bonds and nothing to sample; two beads already exercise both
// invariants. The move engine imposes its own, stricter minimum.
const MinLen = 2

// Chain is an ordered sequence of bead positions on the square lattice.
// Index i is the i-th bead along the backbone. The occupancy index maps
// each occupied site to the bead sitting on it.
//
// A Chain is immutable through its public API: candidate configurations
// are produced by WithBead/WithPair as independent copies, never by
// mutating the receiver. This keeps Monte Carlo rejection trivial — the
// prior state is simply retained.
type Chain struct {
	beads    []lattice.Point
	occupied map[lattice.Point]int
}

// NewStraight seeds a straight horizontal chain of n beads at unit
// spacing, bead i at (i, 0). The seed trivially satisfies both
// invariants. Returns ErrTooShort for n < MinLen.
// Complexity: O(n).
func NewStraight(n int) (*Chain, error) {
	if n < MinLen {
		return nil, ErrTooShort
	}
	beads := make([]lattice.Point, n)
	occ := make(map[lattice.Point]int, n)
	for i := 0; i < n; i++ {
		p := lattice.Point{X: i, Y: 0}
		beads[i] = p
		occ[p] = i
	}

	return &Chain{beads: beads, occupied: occ}, nil
}

// FromPoints builds a chain from explicit bead coordinates, validating
// both invariants. Returns ErrTooShort, ErrNotConnected or ErrOverlap.
// The input slice is deep-copied; later caller mutation cannot corrupt
// the chain. Complexity: O(n).
func FromPoints(pts []lattice.Point) (*Chain, error) {
	if len(pts) < MinLen {
		return nil, ErrTooShort
	}
	beads := make([]lattice.Point, len(pts))
	copy(beads, pts)
	occ := make(map[lattice.Point]int, len(beads))
	for i, p := range beads {
		if i > 0 && !lattice.Adjacent(beads[i-1], p) {
			return nil, ErrNotConnected
		}
		if _, dup := occ[p]; dup {
			return nil, ErrOverlap
		}
		occ[p] = i
	}

	return &Chain{beads: beads, occupied: occ}, nil
}

// Len returns the number of beads. Complexity: O(1).
func (c *Chain) Len() int {
	return len(c.beads)
}

// At returns the position of bead i. Panics via slice bounds on a bad
// index; the engine only ever passes indices it drew in range.
// Complexity: O(1).
func (c *Chain) At(i int) lattice.Point {
	return c.beads[i]
}

// Head returns the position of bead 0. Complexity: O(1).
func (c *Chain) Head() lattice.Point {
	return c.beads[0]
}

// Tail returns the position of bead Len()-1. Complexity: O(1).
func (c *Chain) Tail() lattice.Point {
	return c.beads[len(c.beads)-1]
}

// Points returns a defensive copy of all bead positions in backbone
// order. Complexity: O(n).
func (c *Chain) Points() []lattice.Point {
	out := make([]lattice.Point, len(c.beads))
	copy(out, c.beads)

	return out
}

// Occupied reports whether site p carries a bead, and which one.
// Complexity: O(1).
func (c *Chain) Occupied(p lattice.Point) (int, bool) {
	i, ok := c.occupied[p]

	return i, ok
}

// IsConnected reports whether every consecutive bead pair is
// lattice-adjacent. Pure query, no side effects. Complexity: O(n).
func (c *Chain) IsConnected() bool {
	for i := 0; i+1 < len(c.beads); i++ {
		if !lattice.Adjacent(c.beads[i], c.beads[i+1]) {
			return false
		}
	}

	return true
}

// IsSelfAvoiding reports whether all bead positions are pairwise
// distinct. Pure query, no side effects. Complexity: O(n).
func (c *Chain) IsSelfAvoiding() bool {
	seen := make(map[lattice.Point]struct{}, len(c.beads))
	for _, p := range c.beads {
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
	}

	return true
}

// WithBead returns a new chain equal to c except bead i sits at p.
// The receiver is untouched. No validity check is performed here; the
// caller validates the candidate as a whole. Returns ErrIndex for an
// out-of-range i. Complexity: O(n).
func (c *Chain) WithBead(i int, p lattice.Point) (*Chain, error) {
	if i < 0 || i >= len(c.beads) {
		return nil, ErrIndex
	}

	return c.rebuild(func(beads []lattice.Point) {
		beads[i] = p
	}), nil
}

// WithPair returns a new chain equal to c except beads i and i+1 sit at
// p and q respectively. The receiver is untouched; validation is the
// caller's job. Returns ErrIndex unless both indices are in range.
// Complexity: O(n).
func (c *Chain) WithPair(i int, p, q lattice.Point) (*Chain, error) {
	if i < 0 || i+1 >= len(c.beads) {
		return nil, ErrIndex
	}

	return c.rebuild(func(beads []lattice.Point) {
		beads[i] = p
		beads[i+1] = q
	}), nil
}

// Translate returns a copy of c rigidly shifted by d. A rigid shift
// preserves both invariants, so no validation is needed.
// Complexity: O(n).
func (c *Chain) Translate(d lattice.Point) *Chain {
	return c.rebuild(func(beads []lattice.Point) {
		for i := range beads {
			beads[i] = beads[i].Add(d)
		}
	})
}

// Equal reports whether c and other hold identical bead sequences.
// Complexity: O(n).
func (c *Chain) Equal(other *Chain) bool {
	if other == nil || len(c.beads) != len(other.beads) {
		return false
	}
	for i := range c.beads {
		if c.beads[i] != other.beads[i] {
			return false
		}
	}

	return true
}

// rebuild copies the bead slice, applies mutate, and reindexes occupancy.
// Occupancy may legitimately collide during candidate construction (the
// candidate can be self-intersecting); the last writer wins and the
// IsSelfAvoiding check catches it.
func (c *Chain) rebuild(mutate func([]lattice.Point)) *Chain {
	beads := make([]lattice.Point, len(c.beads))
	copy(beads, c.beads)
	mutate(beads)
	occ := make(map[lattice.Point]int, len(beads))
	for i, p := range beads {
		occ[p] = i
	}

	return &Chain{beads: beads, occupied: occ}
}
