// Package delay provides the delay-line building blocks of the reverb
// networks: the circular [Line], the [Comb] tuned by decay time, the
// Schroeder [Allpass], the [Lattice] allpass and its modulated variant
// [ModLattice].
//
// None of the types allocate after construction, and none are safe for
// concurrent use.
package delay
