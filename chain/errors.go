package chain

import "errors"

var (
	// ErrTooShort indicates a requested chain length below MinLen.
	ErrTooShort = errors.New("chain: length must be at least 2")
	// ErrNotConnected indicates a consecutive bead pair that is not lattice-adjacent.
	ErrNotConnected = errors.New("chain: consecutive beads must be lattice-adjacent")
	// ErrOverlap indicates two beads occupying the same lattice site.
	ErrOverlap = errors.New("chain: bead positions must be pairwise distinct")
	// ErrIndex indicates a bead index outside [0, Len).
	ErrIndex = errors.New("chain: bead index out of range")
)
