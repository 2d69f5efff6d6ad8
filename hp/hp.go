package hp

import (
	"errors"

	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/saw"
)

// Sentinel errors for sequence parsing and binding.
var (
	// ErrEmptySequence indicates a sequence with no monomers.
	ErrEmptySequence = errors.New("hp: sequence must have at least one monomer")
	// ErrBadMonomer indicates a letter other than H or P in a sequence string.
	ErrBadMonomer = errors.New("hp: sequence letters must be H or P")
	// ErrLengthMismatch indicates a sequence bound to a chain of different length.
	ErrLengthMismatch = errors.New("hp: sequence length must equal chain length")
)

// Monomer is the bead type of the HP model.
type Monomer byte

const (
	// H marks a hydrophobic bead; H-H non-bonded contacts carry energy −ε.
	H Monomer = 'H'
	// P marks a polar bead; its contacts are athermal.
	P Monomer = 'P'
)

// Sequence assigns a Monomer to each bead index along the backbone.
type Sequence struct {
	monomers []Monomer
	epsilon  float64
}

// ParseSequence builds a Sequence from a string such as "HPPHHPHH".
// Letters are case-insensitive. Returns ErrEmptySequence or ErrBadMonomer.
// Complexity: O(len(s)).
func ParseSequence(s string) (Sequence, error) {
	if len(s) == 0 {
		return Sequence{}, ErrEmptySequence
	}
	ms := make([]Monomer, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'H', 'h':
			ms[i] = H
		case 'P', 'p':
			ms[i] = P
		default:
			return Sequence{}, ErrBadMonomer
		}
	}

	return Sequence{monomers: ms, epsilon: 1}, nil
}

// Len returns the number of monomers.
func (s Sequence) Len() int {
	return len(s.monomers)
}

// At returns the monomer type of bead i.
func (s Sequence) At(i int) Monomer {
	return s.monomers[i]
}

// WithEpsilon returns a copy of s with contact strength eps; each
// non-bonded H-H contact then contributes −eps to the energy.
func (s Sequence) WithEpsilon(eps float64) Sequence {
	return Sequence{monomers: s.monomers, epsilon: eps}
}

// Energy returns the HP contact energy of ch under sequence s:
// −ε per unordered non-bonded H-H pair on adjacent lattice sites.
// The caller guarantees matching lengths (see Bind). Complexity: O(N).
func (s Sequence) Energy(ch *chain.Chain) float64 {
	n := ch.Len()
	twice := 0
	for i := 0; i < n; i++ {
		if s.monomers[i] != H {
			continue
		}
		for _, p := range ch.At(i).Neighbors() {
			j, occ := ch.Occupied(p)
			if !occ || s.monomers[j] != H {
				continue
			}
			if j-i > 1 || i-j > 1 {
				twice++
			}
		}
	}

	return -s.epsilon * float64(twice) / 2
}

// Bind checks the sequence against a chain length and returns the energy
// function for the Metropolis policy. Returns ErrLengthMismatch when the
// sequence cannot type that chain.
func (s Sequence) Bind(chainLen int) (saw.EnergyFunc, error) {
	if len(s.monomers) != chainLen {
		return nil, ErrLengthMismatch
	}

	return s.Energy, nil
}
