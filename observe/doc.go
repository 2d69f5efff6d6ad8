// Package observe computes scalar observables of a polymer configuration
// and packages them into immutable sampling records.
//
// What:
//
//   - EndToEnd: Euclidean distance between the two chain termini.
//   - RadiusOfGyration: RMS distance of beads from their centroid.
//   - Contacts: count of non-bonded bead pairs (backbone separation > 1)
//     sitting on adjacent lattice sites.
//   - Sample bundles all three with the step index into a Record.
//   - Mean averages a record series after discarding a burn-in fraction.
//
// All functions are pure queries over the chain; nothing is mutated.
//
// Complexity: EndToEnd O(1); RadiusOfGyration O(N); Contacts O(N) via the
// chain's occupancy index; Mean O(len(records)).
package observe
