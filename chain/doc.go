// Package chain holds the configuration state of a lattice polymer: an
// ordered sequence of bead positions with its two structural invariants.
//
// What:
//
//   - Chain stores N bead positions (index = order along the backbone)
//     together with an occupancy index for O(1) site lookups.
//   - NewStraight seeds the canonical straight horizontal configuration;
//     FromPoints builds and validates an arbitrary one.
//   - IsConnected / IsSelfAvoiding are the pure validity queries every
//     Monte Carlo proposal is checked against.
//   - WithBead / WithPair construct candidate configurations without
//     touching the current one, so a rejected proposal simply drops.
//
// Invariants (holding on every chain returned by this package's
// constructors, and re-checked by the move engine on candidates):
//
//   - consecutive beads occupy adjacent lattice sites (unit bonds);
//   - all bead positions are pairwise distinct (self-avoidance);
//   - the bead count never changes for the lifetime of a run.
//
// Errors:
//
//   - ErrTooShort: fewer than MinLen beads requested.
//   - ErrNotConnected: a consecutive pair is not lattice-adjacent.
//   - ErrOverlap: two beads share a lattice site.
//
// Complexity: constructors and validity queries are O(N); candidate
// construction is O(N) (full position copy plus occupancy rebuild).
package chain
