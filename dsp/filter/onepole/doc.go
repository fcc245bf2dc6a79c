// Package onepole provides the single-coefficient low-pass used for input
// bandwidth limiting and tank damping in the reverbs.
package onepole
