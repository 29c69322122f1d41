package conic

import "errors"

// Sentinel errors for dual-conic construction and bounds extraction.
var (
	// ErrBadMatrix indicates a constructor input that is not 3×3 with finite entries.
	ErrBadMatrix = errors.New("conic: matrix must be 3x3 with finite entries")
	// ErrInvalidRadii indicates non-positive or non-finite ellipse radii.
	ErrInvalidRadii = errors.New("conic: radii must be strictly positive and finite")
	// ErrDegenerate indicates a singular conic, for which bounds are undefined.
	ErrDegenerate = errors.New("conic: conic is degenerate")
	// ErrNotEllipse indicates the conic's real points do not form a bounded ellipse.
	ErrNotEllipse = errors.New("conic: conic is not an ellipse")
	// ErrNoRealExtrema indicates the extremal-point solve produced no usable
	// real points inside the image.
	ErrNoRealExtrema = errors.New("conic: no real extremal points within the image")
)

// DefaultDegeneracyTol is the determinant magnitude below which a conic is
// classified as degenerate.
const DefaultDegeneracyTol = 1e-9
