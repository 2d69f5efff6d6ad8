// Package saw - the move engine: per-step state machine and accounting.
//
// Contracts:
//   - The engine exclusively owns its chain reference between Step calls;
//     callers read it through Chain() and never mutate it.
//   - A rejected step leaves the chain reference untouched — candidates
//     are built as independent values and dropped on rejection.
//   - Validation is uniform: every proposal, regardless of move type, is
//     checked as a whole against both invariants before the acceptance
//     policy sees it.
package saw

import "github.com/ndehigampala97/sawmc/chain"

// Engine advances a chain by one Monte Carlo step at a time.
// Not safe for concurrent use; the sampler is strictly sequential.
type Engine struct {
	ch     *chain.Chain
	rng    Rand
	policy AcceptancePolicy

	// Normalized cumulative selection thresholds: a uniform draw below
	// endCut picks an end move, below cornerCut a corner flip, else a
	// crankshaft. Precomputed once in NewEngine.
	endCut    float64
	cornerCut float64

	step  int
	stats Stats
}

// NewEngine validates the configuration and builds an engine positioned
// on ch. Returns ErrChainTooShort for chains below MinChainLen and
// ErrBadWeights for unusable move weights; both are fatal before any
// stepping per the error contract.
func NewEngine(ch *chain.Chain, opts Options) (*Engine, error) {
	if ch == nil || ch.Len() < MinChainLen {
		return nil, ErrChainTooShort
	}
	if opts.EndWeight < 0 || opts.CornerWeight < 0 || opts.CrankWeight < 0 {
		return nil, ErrBadWeights
	}
	total := opts.EndWeight + opts.CornerWeight + opts.CrankWeight
	if total <= 0 {
		return nil, ErrBadWeights
	}

	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}
	policy := opts.Policy
	if policy == nil {
		policy = AcceptAll()
	}

	return &Engine{
		ch:        ch,
		rng:       rng,
		policy:    policy,
		endCut:    opts.EndWeight / total,
		cornerCut: (opts.EndWeight + opts.CornerWeight) / total,
	}, nil
}

// Chain returns the current accepted configuration. Callers must treat it
// as read-only; candidate states never alias it.
func (e *Engine) Chain() *chain.Chain {
	return e.ch
}

// Stats returns the accumulated step accounting.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Step runs one iteration of the SELECT_MOVE → PROPOSE → VALIDATE →
// DECIDE state machine and reports what happened. Rejection retains the
// prior chain unchanged; it is a normal no-op step, never an error.
// Complexity: O(N).
func (e *Engine) Step() Outcome {
	e.step++
	e.stats.Steps++

	kind := e.selectMove()
	out := Outcome{Step: e.step, Move: kind}

	cand, reason := e.propose(kind)
	if reason != ReasonNone {
		return e.reject(out, reason)
	}

	// Uniform geometric validation of the whole candidate.
	if !cand.IsConnected() || !cand.IsSelfAvoiding() {
		return e.reject(out, ReasonInvalid)
	}

	// Acceptance gate: extension point for energy-based sampling.
	if !e.policy.Decide(e.rng, e.ch, cand) {
		return e.reject(out, ReasonPolicy)
	}

	e.ch = cand
	e.stats.Accepted++
	out.Accepted = true

	return out
}

// selectMove draws the move type for this step from the weighted split.
func (e *Engine) selectMove() MoveKind {
	r := e.rng.Float64()
	switch {
	case r < e.endCut:
		return MoveEnd
	case r < e.cornerCut:
		return MoveCorner
	default:
		return MoveCrankshaft
	}
}

// propose dispatches to the generator for kind.
func (e *Engine) propose(kind MoveKind) (*chain.Chain, RejectReason) {
	switch kind {
	case MoveEnd:
		return e.proposeEnd()
	case MoveCorner:
		return e.proposeCorner()
	default:
		return e.proposeCrankshaft()
	}
}

// reject books the reason and returns the completed outcome.
func (e *Engine) reject(out Outcome, reason RejectReason) Outcome {
	out.Reason = reason
	switch reason {
	case ReasonNoTarget:
		e.stats.NoTarget++
	case ReasonInvalid:
		e.stats.Invalid++
	case ReasonPolicy:
		e.stats.PolicyRejected++
	}

	return out
}
