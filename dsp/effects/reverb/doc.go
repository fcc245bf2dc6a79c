// Package reverb provides algorithmic reverberators built from delay lines,
// allpass diffusers and recirculating tanks.
//
// Included processors:
//   - JVRev: Schroeder/Moorer network of three series allpasses feeding four
//     parallel combs tuned to a common t60, in the tradition of the CCRMA
//     JCRev/NRev designs.
//   - Plate: Dattorro-style plate with a cross-coupled "figure-8" tank of
//     modulated lattices, mono input.
//   - PlateX2: the same plate fed from a stereo pair.
//
// Every unit follows the same lifecycle: construct for a sample rate (delay
// memory is allocated and tuned once), Reset to clear state before a run,
// then call Process or ProcessAdding once per block. Control values set with
// SetParams are clamped to the ranges published by the unit's port table and
// take effect at the start of the next block.
package reverb
