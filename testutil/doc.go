// Package testutil provides deterministic helpers for tests and sampling
// code exercising the curves. Curve logic never depends on it.
package testutil
