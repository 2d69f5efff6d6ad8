// Package saw - the sequential driver loop: advance, then periodically sample.
package saw

import (
	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/observe"
)

// RunOptions configures one driver run.
//   - Steps: total Monte Carlo steps; must be positive.
//   - SampleEvery: steps between sampling points; must be positive.
//     Sampling fires on every interval boundary regardless of that step's
//     outcome — the retained state is still the current configuration —
//     so sample counts are a pure function of Steps and SampleEvery.
//   - OnStep: called with every step outcome, accepted or not; nil to
//     skip. Meant for progress reporting and tracing.
//   - OnSample: called with each observable record; nil to skip.
//   - OnFrame: called with the configuration at each sampling point,
//     e.g. to emit a trajectory frame; nil to skip. The chain passed is
//     the live state and must be treated as read-only.
type RunOptions struct {
	Steps       int
	SampleEvery int
	OnStep      func(Outcome)
	OnSample    func(observe.Record)
	OnFrame     func(step int, ch *chain.Chain)
}

// Run executes the driver loop: Steps engine steps with sampling every
// SampleEvery steps. Configuration errors are fatal before the first
// step; per-step rejection is normal operation and only shows up in the
// returned Stats. Complexity: O(Steps·N).
func Run(e *Engine, ro RunOptions) (Stats, error) {
	if e == nil {
		return Stats{}, ErrNilEngine
	}
	if ro.Steps <= 0 {
		return Stats{}, ErrNonPositiveSteps
	}
	if ro.SampleEvery <= 0 {
		return Stats{}, ErrNonPositiveInterval
	}

	for i := 0; i < ro.Steps; i++ {
		// Outcome.Step counts the engine lifetime, so cadence stays
		// aligned even when the engine was stepped before this run.
		out := e.Step()
		if ro.OnStep != nil {
			ro.OnStep(out)
		}

		if out.Step%ro.SampleEvery != 0 {
			continue
		}
		if ro.OnSample != nil {
			ro.OnSample(observe.Sample(out.Step, e.Chain()))
		}
		if ro.OnFrame != nil {
			ro.OnFrame(out.Step, e.Chain())
		}
	}

	return e.Stats(), nil
}
