// Package sawmc is a Monte Carlo sampler for polymer chains on the 2D
// square lattice, built around the Self-Avoiding Walk (SAW) constraint.
//
// 🚀 What is sawmc?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Lattice primitives: integer points, unit offsets, adjacency tests
//		• Chain state: bead positions with connectivity & occupancy invariants
//		• Move engine: end moves, corner flips and crankshaft rotations with
//		  uniform validation and pluggable acceptance policies
//		• HP model: hydrophobic/polar bead typing with contact energy, ready
//		  for Metropolis sampling
//		• Observables: end-to-end distance, radius of gyration, non-bonded
//		  contact counts with burn-in averaging
//		• Export: multi-frame XYZ trajectories (VMD-ready) and CSV series
//
// ✨ Why choose sawmc?
//
//   - Reproducible – one seed controls the whole random stream
//   - Invariant-safe – every accepted state is connected and self-avoiding
//   - Extensible – acceptance policies plug in without touching the engine
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under flat subpackages:
//
//	lattice/ — square-lattice points and adjacency
//	chain/   — bead configuration state and validity queries
//	saw/     — move proposals, acceptance policies, the MC driver loop
//	hp/      — hydrophobic-polar typing and contact energy
//	observe/ — scalar observables and sampling records
//	export/  — XYZ trajectory and CSV observable writers
//
// Quick ASCII example of a 6-bead chain after a corner flip:
//
//	0─1─2─3          0─1─2─3
//	      │     ⇒          │
//	  5───4            5───4
//
// The cmd/sawmc runner wires the pieces into the classic workflow:
// seed a straight chain, drive the move engine, sample observables on a
// fixed cadence, and emit traj.xyz plus saw_observables.csv.
package sawmc
