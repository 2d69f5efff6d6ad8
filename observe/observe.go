package observe

import (
	"math"

	"github.com/ndehigampala97/sawmc/chain"
)

// Record is an immutable observable snapshot taken at one sampling point.
type Record struct {
	// Step is the Monte Carlo step index the snapshot was taken at.
	Step int
	// R is the end-to-end distance.
	R float64
	// Rg is the radius of gyration.
	Rg float64
	// Contacts is the non-bonded contact count.
	Contacts int
}

// Sample computes all observables of ch at the given step index.
// Complexity: O(N).
func Sample(step int, ch *chain.Chain) Record {
	return Record{
		Step:     step,
		R:        EndToEnd(ch),
		Rg:       RadiusOfGyration(ch),
		Contacts: Contacts(ch),
	}
}

// EndToEnd returns the Euclidean distance between bead 0 and bead N−1.
// Complexity: O(1).
func EndToEnd(ch *chain.Chain) float64 {
	d := ch.Tail().Sub(ch.Head())

	return math.Hypot(float64(d.X), float64(d.Y))
}

// RadiusOfGyration returns sqrt(mean squared bead distance from the
// centroid), the centroid being the arithmetic mean of all positions.
// Invariant under rigid translation of the whole chain.
// Complexity: O(N).
func RadiusOfGyration(ch *chain.Chain) float64 {
	n := ch.Len()
	var sx, sy float64
	for i := 0; i < n; i++ {
		p := ch.At(i)
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	cx, cy := sx/float64(n), sy/float64(n)

	var rg2 float64
	for i := 0; i < n; i++ {
		p := ch.At(i)
		dx, dy := float64(p.X)-cx, float64(p.Y)-cy
		rg2 += dx*dx + dy*dy
	}

	return math.Sqrt(rg2 / float64(n))
}

// Contacts counts unordered bead pairs (i, j) with |i−j| > 1 whose sites
// are lattice-adjacent. Bonded neighbors are excluded: they are always
// adjacent by the connectivity invariant and carry no folding signal.
// Each contact is seen from both sides of the occupancy index, hence the
// halving. Complexity: O(N).
func Contacts(ch *chain.Chain) int {
	n := ch.Len()
	twice := 0
	for i := 0; i < n; i++ {
		for _, p := range ch.At(i).Neighbors() {
			j, occ := ch.Occupied(p)
			if !occ {
				continue
			}
			if j-i > 1 || i-j > 1 {
				twice++
			}
		}
	}

	return twice / 2
}
