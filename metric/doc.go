// Package metric provides scalar distance metrics over integer coordinate
// vectors: Manhattan, Euclidean and Chebyshev. The curve engines never call
// these; they exist for callers (and tests) measuring locality of curve
// output.
package metric
