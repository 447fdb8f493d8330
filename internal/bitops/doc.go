// Package bitops provides the bit-level primitives behind the Hilbert curve
// transform: Gray-code encoding/decoding, rotations within a D-bit word, and
// the per-digit entry/direction step functions.
package bitops
