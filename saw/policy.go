// Package saw - acceptance policies applied after geometric validation.
package saw

import (
	"math"

	"github.com/ndehigampala97/sawmc/chain"
)

// AcceptancePolicy decides whether a geometrically valid candidate
// replaces the current configuration. The engine passes its own random
// stream, so acceptance draws stay on the single seeded sequence.
//
// Implementations must be pure apart from consuming rng: the engine
// handles all state replacement.
type AcceptancePolicy interface {
	Decide(rng Rand, old, candidate *chain.Chain) bool
}

// acceptAll is the athermal SAW policy: every valid candidate is taken.
type acceptAll struct{}

// Decide always accepts. The SAW ensemble has zero energy everywhere.
func (acceptAll) Decide(Rand, *chain.Chain, *chain.Chain) bool {
	return true
}

// AcceptAll returns the geometric SAW policy, the engine default.
func AcceptAll() AcceptancePolicy {
	return acceptAll{}
}

// metropolis implements the Metropolis criterion over an energy function:
// accept when ΔE ≤ 0, otherwise with probability exp(−ΔE/kT).
type metropolis struct {
	energy EnergyFunc
	kT     float64
}

// Metropolis returns an energy-based acceptance policy at temperature kT
// (in units of the energy function). kT ≤ 0 degenerates to strict
// downhill acceptance, the T→0 limit.
func Metropolis(energy EnergyFunc, kT float64) AcceptancePolicy {
	return &metropolis{energy: energy, kT: kT}
}

// Decide applies the Metropolis criterion, consuming one Float64 draw
// only on uphill candidates so downhill moves cost no randomness.
func (m *metropolis) Decide(rng Rand, old, candidate *chain.Chain) bool {
	dE := m.energy(candidate) - m.energy(old)
	if dE <= 0 {
		return true
	}
	if m.kT <= 0 {
		return false
	}

	return rng.Float64() < math.Exp(-dE/m.kT)
}
