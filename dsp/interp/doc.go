// Package interp provides the fractional-read primitives used by modulated
// delay taps.
//
//   - [Split]:    truncating integer/fraction split of a read position
//   - [Linear2]:  2-point linear interpolation
package interp
