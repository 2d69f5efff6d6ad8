package chain_test

import (
	"errors"
	"testing"

	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/lattice"
)

// TestNewStraight verifies the seed configuration and its invariants.
func TestNewStraight(t *testing.T) {
	c, err := chain.NewStraight(6)
	if err != nil {
		t.Fatalf("NewStraight(6) error: %v", err)
	}
	if c.Len() != 6 {
		t.Fatalf("Len() = %d; want 6", c.Len())
	}
	for i := 0; i < 6; i++ {
		want := lattice.Point{X: i, Y: 0}
		if c.At(i) != want {
			t.Errorf("At(%d) = %v; want %v", i, c.At(i), want)
		}
	}
	if !c.IsConnected() {
		t.Error("straight seed must be connected")
	}
	if !c.IsSelfAvoiding() {
		t.Error("straight seed must be self-avoiding")
	}
}

// TestNewStraight_TooShort checks the length guard.
func TestNewStraight_TooShort(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := chain.NewStraight(n); !errors.Is(err, chain.ErrTooShort) {
			t.Errorf("NewStraight(%d) error = %v; want ErrTooShort", n, err)
		}
	}
}

// TestFromPoints_Errors rejects disconnected and overlapping inputs.
func TestFromPoints_Errors(t *testing.T) {
	cases := []struct {
		name string
		pts  []lattice.Point
		err  error
	}{
		{"TooShort", []lattice.Point{{X: 0, Y: 0}}, chain.ErrTooShort},
		{"Gap", []lattice.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}, chain.ErrNotConnected},
		{"Diagonal", []lattice.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, chain.ErrNotConnected},
		{"ImmediateBacktrack", []lattice.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, chain.ErrOverlap},
		{"OverlapFold", []lattice.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}, chain.ErrOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := chain.FromPoints(tc.pts); !errors.Is(err, tc.err) {
				t.Errorf("FromPoints(%v) error = %v; want %v", tc.pts, err, tc.err)
			}
		})
	}
}

// TestFromPoints_CopiesInput ensures later caller mutation cannot reach the chain.
func TestFromPoints_CopiesInput(t *testing.T) {
	pts := []lattice.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	c, err := chain.FromPoints(pts)
	if err != nil {
		t.Fatalf("FromPoints error: %v", err)
	}
	pts[0] = lattice.Point{X: 42, Y: 42}
	if c.At(0) != (lattice.Point{X: 0, Y: 0}) {
		t.Errorf("input mutation leaked into chain: At(0) = %v", c.At(0))
	}
}

// TestOccupied checks the occupancy index against bead order.
func TestOccupied(t *testing.T) {
	c, _ := chain.NewStraight(4)
	i, ok := c.Occupied(lattice.Point{X: 2, Y: 0})
	if !ok || i != 2 {
		t.Errorf("Occupied((2,0)) = %d,%v; want 2,true", i, ok)
	}
	if _, ok = c.Occupied(lattice.Point{X: 0, Y: 1}); ok {
		t.Error("Occupied((0,1)) = true on a straight chain; want false")
	}
}

// TestWithBead_LeavesReceiverUntouched is the copy-on-write contract:
// a candidate never mutates the state it was derived from.
func TestWithBead_LeavesReceiverUntouched(t *testing.T) {
	c, _ := chain.NewStraight(4)
	before := c.Points()

	cand, err := c.WithBead(3, lattice.Point{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("WithBead error: %v", err)
	}
	if cand.At(3) != (lattice.Point{X: 2, Y: 1}) {
		t.Errorf("candidate At(3) = %v; want (2,1)", cand.At(3))
	}
	after := c.Points()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("receiver mutated at bead %d: %v -> %v", i, before[i], after[i])
		}
	}
	// The candidate's occupancy must reflect the move, not the original.
	if _, ok := cand.Occupied(lattice.Point{X: 3, Y: 0}); ok {
		t.Error("candidate still reports the vacated site as occupied")
	}
}

// TestWithPair rebuilds two beads at once with a fresh occupancy index.
func TestWithPair(t *testing.T) {
	c, _ := chain.NewStraight(4)
	cand, err := c.WithPair(1, lattice.Point{X: 1, Y: 1}, lattice.Point{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("WithPair error: %v", err)
	}
	if !cand.IsConnected() || !cand.IsSelfAvoiding() {
		t.Error("crankshaft-shaped candidate should satisfy both invariants")
	}
	if i, ok := cand.Occupied(lattice.Point{X: 2, Y: 1}); !ok || i != 2 {
		t.Errorf("Occupied((2,1)) = %d,%v; want 2,true", i, ok)
	}
}

// TestWithBead_IndexGuard rejects out-of-range bead indices.
func TestWithBead_IndexGuard(t *testing.T) {
	c, _ := chain.NewStraight(4)
	if _, err := c.WithBead(4, lattice.Point{}); !errors.Is(err, chain.ErrIndex) {
		t.Errorf("WithBead(4) error = %v; want ErrIndex", err)
	}
	if _, err := c.WithPair(3, lattice.Point{}, lattice.Point{}); !errors.Is(err, chain.ErrIndex) {
		t.Errorf("WithPair(3) on len-4 chain error = %v; want ErrIndex", err)
	}
}

// TestValidityQueries covers broken configurations reachable only through
// candidate construction (constructors refuse them outright).
func TestValidityQueries(t *testing.T) {
	c, _ := chain.NewStraight(4)

	// Candidate with a torn bond: bead 3 teleported away.
	torn, _ := c.WithBead(3, lattice.Point{X: 9, Y: 9})
	if torn.IsConnected() {
		t.Error("torn candidate reported as connected")
	}
	if !torn.IsSelfAvoiding() {
		t.Error("torn candidate is still self-avoiding")
	}

	// Candidate folded onto an occupied site.
	folded, _ := c.WithBead(3, lattice.Point{X: 2, Y: 0})
	if folded.IsSelfAvoiding() {
		t.Error("folded candidate reported as self-avoiding")
	}
}

// TestTranslateAndEqual verifies rigid shifts preserve shape, not position.
func TestTranslateAndEqual(t *testing.T) {
	c, _ := chain.NewStraight(5)
	d := lattice.Point{X: -7, Y: 3}
	moved := c.Translate(d)

	if moved.Equal(c) {
		t.Error("translated chain compares equal to the original")
	}
	if !moved.IsConnected() || !moved.IsSelfAvoiding() {
		t.Error("rigid translation broke an invariant")
	}
	back := moved.Translate(lattice.Point{X: 7, Y: -3})
	if !back.Equal(c) {
		t.Error("round-trip translation did not restore the chain")
	}
}
