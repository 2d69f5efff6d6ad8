// Package saw_test - shared helpers: a scripted random source and chain
// builders used across the engine tests.
package saw_test

import (
	"testing"

	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/lattice"
)

// scriptRand replays a fixed list of draws, making every branch of the
// engine's state machine reachable on demand. It fails the test when the
// engine consumes more randomness than the script provides, which doubles
// as an assertion on how many draws a code path may take.
type scriptRand struct {
	t      *testing.T
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRand) Float64() float64 {
	if r.fi >= len(r.floats) {
		r.t.Fatalf("scriptRand: Float64 draw %d requested, only %d scripted", r.fi+1, len(r.floats))
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptRand) Intn(n int) int {
	if r.ii >= len(r.ints) {
		r.t.Fatalf("scriptRand: Intn draw %d requested, only %d scripted", r.ii+1, len(r.ints))
	}
	v := r.ints[r.ii] % n
	r.ii++
	return v
}

// mustChain builds a chain from points, failing the test on invalid input.
func mustChain(t *testing.T, pts []lattice.Point) *chain.Chain {
	t.Helper()
	c, err := chain.FromPoints(pts)
	if err != nil {
		t.Fatalf("FromPoints(%v): %v", pts, err)
	}
	return c
}

// pt is shorthand for a lattice point literal.
func pt(x, y int) lattice.Point {
	return lattice.Point{X: x, Y: y}
}
