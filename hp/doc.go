// Package hp implements the hydrophobic-polar (HP) lattice protein model:
// beads typed H or P, with energy −ε per non-bonded H-H contact.
//
// The package produces a saw.EnergyFunc, so the Metropolis acceptance
// policy can sample the HP ensemble through the same engine that runs the
// athermal SAW:
//
//	seq, _ := hp.ParseSequence("HPPHHPHH")
//	energy, _ := seq.Bind(chainLen)
//	opts := saw.DefaultOptions()
//	opts.Policy = saw.Metropolis(energy, 0.5)
//
// Conventions:
//
//   - Only H-H pairs contribute; H-P and P-P contacts are athermal.
//   - Bonded neighbors never contribute — they are contacts of the
//     backbone, not of the fold.
//   - ε defaults to 1 (energies in units of the contact strength);
//     WithEpsilon rescales.
//
// Errors:
//
//   - ErrEmptySequence: no monomers given.
//   - ErrBadMonomer: a sequence letter other than 'H'/'P' (case-insensitive).
//   - ErrLengthMismatch: sequence length differs from the chain length it
//     is bound to.
package hp
