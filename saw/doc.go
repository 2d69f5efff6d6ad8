// Package saw implements the Monte Carlo move engine for self-avoiding
// lattice polymers: proposal generation, uniform validation, pluggable
// acceptance, and the sequential driver loop.
//
// 🚀 What is saw?
//
//	Each Monte Carlo step runs a fixed state machine:
//
//	  SELECT_MOVE → PROPOSE → VALIDATE → DECIDE → {ACCEPT | REJECT}
//
//	Three local move types perturb the chain:
//	  • End move      — relocate a terminus to a free site next to its anchor
//	  • Corner flip   — reflect an interior bead to the fourth corner of the
//	    unit square spanned by its two neighbors
//	  • Crankshaft    — rotate an interior bead pair 180° about the axis
//	    through its flanking anchors
//
//	Every proposal is validated as a whole against both chain invariants
//	(connectivity and self-avoidance); a failed proposal is discarded and
//	the prior state is retained untouched. Rejection is normal operation,
//	never an error.
//
// ✨ Key features:
//
//   - Deterministic: one seed drives one sequential random stream shared
//     by move selection and acceptance; same seed ⇒ identical run.
//   - Injectable randomness: any Rand implementation can replace the
//     default math/rand stream for testing.
//   - Pluggable acceptance: AcceptancePolicy separates geometric validity
//     from thermodynamic acceptance. AcceptAll gives the athermal SAW
//     ensemble; Metropolis adds energy-based sampling (e.g. the HP model)
//     without restructuring the engine.
//
// ⚙️ Usage:
//
//	ch, _ := chain.NewStraight(12)
//	eng, _ := saw.NewEngine(ch, saw.DefaultOptions())
//	stats, _ := saw.Run(eng, saw.RunOptions{
//	  Steps:       20000,
//	  SampleEvery: 50,
//	  OnSample:    func(r observe.Record) { records = append(records, r) },
//	})
//
// Errors:
//
//   - ErrChainTooShort: fewer than MinChainLen beads (crankshaft needs 4).
//   - ErrBadWeights: negative or all-zero move weights.
//   - ErrNonPositiveSteps / ErrNonPositiveInterval: malformed run budget.
//
// Configuration problems are fatal before the first step; a malformed
// setup must never degrade into a run of permanently rejected moves.
//
// Complexity: one step costs O(N) (candidate copy + full validation);
// a run of S steps with sampling every k costs O(S·N).
package saw
