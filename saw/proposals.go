// Package saw - candidate generation for the three local move types.
//
// Geometry on the square lattice:
//   - End move: the terminus hops to a free site adjacent to its anchor.
//   - Corner flip: bead i at the corner of the L formed by i−1 and i+1
//     reflects to the fourth corner of that unit square, prev + next − cur.
//   - Crankshaft: with anchors a=i−1 and d=i+2 adjacent, the pair (b, c)
//     reflects across the a–d axis to the two sites completing the
//     alternate rectangle with the same anchors (the 180° rotation of the
//     segment about that axis, restricted to the plane).
//
// Generators screen structural availability only (boxed-in terminus,
// collinear triple, non-adjacent anchors ⇒ ReasonNoTarget). Occupancy and
// bond validity of the finished candidate are left to the engine's
// uniform VALIDATE stage, except the end move, whose target set is by
// definition the free neighbors of the anchor.
package saw

import (
	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/lattice"
)

// proposeEnd relocates one terminus to a uniformly chosen free site
// adjacent to its anchor. Consumes one Float64 (terminus choice) and,
// when candidates exist, one Intn draw.
func (e *Engine) proposeEnd() (*chain.Chain, RejectReason) {
	n := e.ch.Len()

	endIdx, anchorIdx := 0, 1
	if e.rng.Float64() >= 0.5 {
		endIdx, anchorIdx = n-1, n-2
	}
	anchor := e.ch.At(anchorIdx)
	oldEnd := e.ch.At(endIdx)

	// Free sites around the anchor, excluding where the terminus already sits.
	var cands []lattice.Point
	for _, p := range anchor.Neighbors() {
		if p == oldEnd {
			continue
		}
		if _, occ := e.ch.Occupied(p); occ {
			continue
		}
		cands = append(cands, p)
	}
	if len(cands) == 0 {
		return nil, ReasonNoTarget
	}

	target := cands[e.rng.Intn(len(cands))]
	cand, err := e.ch.WithBead(endIdx, target)
	if err != nil {
		return nil, ReasonNoTarget
	}

	return cand, ReasonNone
}

// proposeCorner reflects an interior bead across the diagonal of the unit
// square spanned by its neighbors. A collinear triple has no corner to
// flip and reports no legal target. Consumes one Intn draw.
func (e *Engine) proposeCorner() (*chain.Chain, RejectReason) {
	n := e.ch.Len()
	i := 1 + e.rng.Intn(n-2)

	prev := e.ch.At(i - 1)
	cur := e.ch.At(i)
	next := e.ch.At(i + 1)

	// Straight segment: prev, cur, next share a row or a column.
	if (prev.X == cur.X && cur.X == next.X) || (prev.Y == cur.Y && cur.Y == next.Y) {
		return nil, ReasonNoTarget
	}

	// Fourth corner of the square: prev + next − cur.
	target := prev.Add(next).Sub(cur)
	cand, err := e.ch.WithBead(i, target)
	if err != nil {
		return nil, ReasonNoTarget
	}

	return cand, ReasonNone
}

// proposeCrankshaft flips the bead pair (i, i+1) to the other side of the
// axis through its flanking anchors. The flip exists only when the
// anchors are lattice-adjacent; reflection preserves bond lengths, so the
// candidate is connected by construction and only self-avoidance remains
// for the uniform validation stage. A pair already mirrored onto itself
// cannot occur in a self-avoiding chain, so the flip always relocates
// both beads. Consumes one Intn draw.
func (e *Engine) proposeCrankshaft() (*chain.Chain, RejectReason) {
	n := e.ch.Len()
	i := 1 + e.rng.Intn(n-3)

	a := e.ch.At(i - 1)
	b := e.ch.At(i)
	c := e.ch.At(i + 1)
	d := e.ch.At(i + 2)

	if !lattice.Adjacent(a, d) {
		return nil, ReasonNoTarget
	}

	// Reflect across the a–d axis: the bond a–d is horizontal or
	// vertical, so the mirror flips a single coordinate.
	var newB, newC lattice.Point
	if a.Y == d.Y {
		newB = lattice.Point{X: b.X, Y: 2*a.Y - b.Y}
		newC = lattice.Point{X: c.X, Y: 2*a.Y - c.Y}
	} else {
		newB = lattice.Point{X: 2*a.X - b.X, Y: b.Y}
		newC = lattice.Point{X: 2*a.X - c.X, Y: c.Y}
	}
	if newB == b && newC == c {
		return nil, ReasonNoTarget
	}

	cand, err := e.ch.WithPair(i, newB, newC)
	if err != nil {
		return nil, ReasonNoTarget
	}

	return cand, ReasonNone
}
