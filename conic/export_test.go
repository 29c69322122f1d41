package conic

// FromEntries exposes the raw-entry constructor to the external test
// package, so finite-difference checks can perturb a single entry of the
// 9-vector without the symmetrization applied by New.
func FromEntries(e [9]float64) DualConic { return fromEntries(e) }
