package core

import "errors"

// Sentinel errors for core constructions and local-coordinate operations.
var (
	// ErrInvalidCalibration indicates non-positive or non-finite focal lengths.
	ErrInvalidCalibration = errors.New("core: focal lengths must be positive and finite")
	// ErrBadDimension indicates a local-coordinate vector of the wrong length.
	ErrBadDimension = errors.New("core: local coordinate vector has wrong dimension")
	// ErrNonFinite indicates a NaN or ±Inf where a finite value is required.
	ErrNonFinite = errors.New("core: non-finite value")
)

// DefaultEqualTol is the default absolute tolerance for Equals comparisons
// across the module (matches the reference behavior of 1e-9).
const DefaultEqualTol = 1e-9

// DefaultFDStep is the central finite-difference step used by the numeric
// derivative paths throughout the module.
const DefaultFDStep = 1e-6
