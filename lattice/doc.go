// Package lattice provides the integer geometry of the unbounded 2D
// square lattice used by the polymer sampler.
//
// What:
//
//   - Point is an (X, Y) lattice coordinate, a plain comparable value.
//   - Offsets lists the four unit directions; Point.Neighbors enumerates
//     the orthogonally adjacent sites.
//   - Adjacent reports nearest-neighbor relations (Manhattan distance 1),
//     the single geometric predicate behind chain connectivity and
//     contact counting.
//
// Why:
//
//   - Chain bonds: consecutive beads must occupy adjacent sites.
//   - Move geometry: corner flips and crankshaft rotations are pure
//     point arithmetic (Add/Sub) on anchor positions.
//   - Observables: non-bonded contacts are adjacency tests between
//     distant beads.
//
// All operations are O(1) with no allocation except Neighbors, which
// returns a fresh 4-element slice.
package lattice
