// Package saw - option types, outcomes, and sentinel errors shared by the
// move engine and the driver loop.
package saw

import (
	"errors"

	"github.com/ndehigampala97/sawmc/chain"
)

// MinChainLen is the smallest chain the engine accepts. Corner flips need
// an interior bead and crankshafts need two flanked interior beads, so
// every move type is exercisable only from four beads up.
const MinChainLen = 4

// Sentinel errors for engine and driver configuration. All are fatal and
// reported before any simulation step runs.
var (
	// ErrChainTooShort indicates a chain shorter than MinChainLen.
	ErrChainTooShort = errors.New("saw: chain must have at least 4 beads")
	// ErrBadWeights indicates a negative move weight, or all weights zero.
	ErrBadWeights = errors.New("saw: move weights must be non-negative and not all zero")
	// ErrNonPositiveSteps indicates a run budget of zero or fewer steps.
	ErrNonPositiveSteps = errors.New("saw: step count must be positive")
	// ErrNonPositiveInterval indicates a sampling interval of zero or fewer steps.
	ErrNonPositiveInterval = errors.New("saw: sampling interval must be positive")
	// ErrNilEngine indicates a nil engine handed to the driver.
	ErrNilEngine = errors.New("saw: engine must not be nil")
)

// Rand is the sequential random source consumed by the engine. Exactly
// one stream drives move selection, target choice, and acceptance, so a
// single seed reproduces an entire run. *math/rand.Rand satisfies Rand;
// tests may substitute a scripted fake.
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// MoveKind identifies which local move generated a proposal.
type MoveKind int

const (
	// MoveEnd relocates one chain terminus around its anchor bead.
	MoveEnd MoveKind = iota
	// MoveCorner reflects an interior bead across its neighbor diagonal.
	MoveCorner
	// MoveCrankshaft rotates an interior bead pair about its flanking anchors.
	MoveCrankshaft
)

// String returns a short human-readable move name.
func (k MoveKind) String() string {
	switch k {
	case MoveEnd:
		return "end"
	case MoveCorner:
		return "corner"
	case MoveCrankshaft:
		return "crankshaft"
	default:
		return "unknown"
	}
}

// RejectReason classifies why a step did not advance the chain.
// Reasons are diagnostics, not errors: every rejection is a normal no-op
// step that leaves the prior state in place.
type RejectReason int

const (
	// ReasonNone marks an accepted step.
	ReasonNone RejectReason = iota
	// ReasonNoTarget: the chosen move/index combination has no candidate
	// (collinear corner triple, non-adjacent crankshaft anchors, boxed-in
	// terminus).
	ReasonNoTarget
	// ReasonInvalid: a generated candidate violates connectivity or
	// self-avoidance as a whole.
	ReasonInvalid
	// ReasonPolicy: the acceptance policy vetoed a geometrically valid
	// candidate (e.g. Metropolis at high energy).
	ReasonPolicy
)

// String returns a short reason label for logs and test failures.
func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "accepted"
	case ReasonNoTarget:
		return "no-target"
	case ReasonInvalid:
		return "invalid"
	case ReasonPolicy:
		return "policy"
	default:
		return "unknown"
	}
}

// Outcome reports what a single Monte Carlo step did. On a rejected step
// the engine's chain is bit-identical to its state before the step.
type Outcome struct {
	// Step is the 1-based step counter within this engine's lifetime.
	Step int
	// Move is the move type drawn for this step.
	Move MoveKind
	// Accepted reports whether the candidate replaced the chain state.
	Accepted bool
	// Reason classifies a rejection; ReasonNone when Accepted.
	Reason RejectReason
}

// Options configures an Engine.
//   - Seed: seed for the default random stream; 0 selects a fixed default
//     so the zero value is still deterministic.
//   - Rand: optional injected random source; when non-nil, Seed is ignored.
//   - EndWeight/CornerWeight/CrankWeight: relative selection weights of the
//     three move types. Defaults follow the classic 0.4/0.4/0.2 split;
//     equal weights give uniform selection.
//   - Policy: acceptance policy applied after geometric validation;
//     nil selects AcceptAll (athermal SAW).
type Options struct {
	Seed         int64
	Rand         Rand
	EndWeight    float64
	CornerWeight float64
	CrankWeight  float64
	Policy       AcceptancePolicy
}

// DefaultOptions returns the canonical SAW configuration: seeded default
// stream, 0.4/0.4/0.2 move weights, accept-all policy.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		EndWeight:    0.4,
		CornerWeight: 0.4,
		CrankWeight:  0.2,
	}
}

// Stats accumulates per-run step accounting. Every step increments
// exactly one of Accepted, NoTarget, Invalid, PolicyRejected.
type Stats struct {
	Steps          int
	Accepted       int
	NoTarget       int
	Invalid        int
	PolicyRejected int
}

// Rejected returns the total number of rejected steps.
func (s Stats) Rejected() int {
	return s.NoTarget + s.Invalid + s.PolicyRejected
}

// AcceptanceRatio returns Accepted/Steps, or 0 when no steps ran.
func (s Stats) AcceptanceRatio() float64 {
	if s.Steps == 0 {
		return 0
	}

	return float64(s.Accepted) / float64(s.Steps)
}

// EnergyFunc scores a configuration for energy-based acceptance policies.
// Lower is more favorable. The athermal SAW ensemble corresponds to a
// constant zero energy.
type EnergyFunc func(*chain.Chain) float64
