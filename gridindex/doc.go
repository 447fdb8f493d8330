// Package gridindex converts between a flattened 1-D index and an
// n-dimensional point under arbitrary (non-power-of-two) per-axis bounds.
// Unlike the curves of the parent package it preserves no locality; it is a
// plain mixed-radix positional encoding, useful for ad hoc prototyping and
// for flattening small boolean hypercubes of any rank through one
// implementation instead of one constructor per arity.
package gridindex
