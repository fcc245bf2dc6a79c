// Package core holds small helpers shared by the reverb building blocks:
// processor configuration, control clamping, output write modes and the
// denormal guard.
package core
